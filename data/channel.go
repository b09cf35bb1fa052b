package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/volcanolab/wws/protocol"
)

var ErrBadMenuLine = errors.New("Channel menu line is malformed")

// Channel is one entry of the server's channel menu: a channel identity
// plus the time extent of data the server holds for it.
type Channel struct {
	// SID is the server's numeric channel id.
	SID int

	Scnl protocol.Scnl

	// MinTime and MaxTime bound the available data, as J2kSec.
	MinTime float64
	MaxTime float64

	// Metadata is the raw trailing metadata text, present only when the
	// menu was requested with METADATA.
	Metadata string
}

// ParseChannel parses one menu line:
//
//	<sid> <STA$CHA$NET$LOC> <min> <max>[ <metadata>]
func ParseChannel(line string) (Channel, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Channel{}, fmt.Errorf("%w: %q", ErrBadMenuLine, line)
	}

	sid, err := strconv.Atoi(fields[0])
	if err != nil {
		return Channel{}, fmt.Errorf("%w: %q", ErrBadMenuLine, line)
	}

	scnl, err := protocol.ParseScnl(fields[1])
	if err != nil {
		return Channel{}, fmt.Errorf("%w: %q", ErrBadMenuLine, line)
	}

	min, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Channel{}, fmt.Errorf("%w: %q", ErrBadMenuLine, line)
	}

	max, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Channel{}, fmt.Errorf("%w: %q", ErrBadMenuLine, line)
	}

	return Channel{
		SID:      sid,
		Scnl:     scnl,
		MinTime:  min,
		MaxTime:  max,
		Metadata: strings.Join(fields[4:], " "),
	}, nil
}

// String renders the channel back into its menu line form.
func (c Channel) String() string {
	line := fmt.Sprintf("%d %s %.6f %.6f", c.SID, c.Scnl.String("$"), c.MinTime, c.MaxTime)
	if c.Metadata != "" {
		line += " " + c.Metadata
	}
	return line
}
