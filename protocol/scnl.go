package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// WildcardLocation stands in for channels that carry no location code.
const WildcardLocation = "--"

var ErrBadScnl = errors.New("Scnl needs station, component and network parts")

// Scnl identifies one seismic data channel by its station, component,
// network and location codes.
type Scnl struct {
	Station   string
	Component string
	Network   string
	Location  string
}

func NewScnl(station, component, network, location string) Scnl {
	if location == "" {
		location = WildcardLocation
	}

	return Scnl{
		Station:   station,
		Component: component,
		Network:   network,
		Location:  location,
	}
}

// ParseScnl parses the dotted form used on the command line
// ("STA.CHA.NET" or "STA.CHA.NET.LOC") or the "$"-separated form that
// appears in server menu lines.
func ParseScnl(s string) (Scnl, error) {
	sep := "."
	if strings.Contains(s, "$") {
		sep = "$"
	}

	parts := strings.Split(s, sep)
	if len(parts) < 3 || len(parts) > 4 {
		return Scnl{}, fmt.Errorf("%w: %q", ErrBadScnl, s)
	}

	for _, part := range parts {
		if part == "" {
			return Scnl{}, fmt.Errorf("%w: %q", ErrBadScnl, s)
		}
	}

	location := ""
	if len(parts) == 4 {
		location = parts[3]
	}

	return NewScnl(parts[0], parts[1], parts[2], location), nil
}

// String renders the four codes joined by sep. An empty location renders
// as the wildcard marker so the rendering is always four fields.
func (s Scnl) String(sep string) string {
	location := s.Location
	if location == "" {
		location = WildcardLocation
	}

	return strings.Join([]string{s.Station, s.Component, s.Network, location}, sep)
}
