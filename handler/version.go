package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/volcanolab/wws/protocol"
)

// Version decodes the "PROTOCOL_VERSION: <n>" response line.
type Version struct {
	out  *int
	line protocol.LineBuffer
}

func NewVersion(out *int) *Version {
	return &Version{out: out}
}

func (h *Version) Accept(chunk []byte) (bool, error) {
	line, _, ok := h.line.Feed(chunk)
	if !ok {
		return false, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: %q", protocol.ErrBadHeader, line)
	}

	version, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return false, fmt.Errorf("%w: %q", protocol.ErrBadHeader, line)
	}

	*h.out = version
	return true, nil
}

func (h *Version) Disconnected() {}
