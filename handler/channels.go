package handler

import (
	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/protocol"
)

// Channels decodes a GETCHANNELS response: a header line carrying the
// entry count followed by that many menu lines. The holder is only
// written once every line has parsed, so a response that dies or fails
// mid-menu leaves the caller with an empty list rather than a torn one.
type Channels struct {
	out    *[]data.Channel
	line   protocol.LineBuffer
	want   int
	parsed []data.Channel
}

func NewChannels(out *[]data.Channel) *Channels {
	return &Channels{out: out, want: -1}
}

func (h *Channels) Accept(chunk []byte) (bool, error) {
	for {
		line, rest, ok := h.line.Feed(chunk)
		if !ok {
			return false, nil
		}
		chunk = rest

		if h.want < 0 {
			count, err := protocol.HeaderLength(line)
			if err != nil {
				return false, err
			}
			if count <= 0 {
				return true, nil
			}

			h.want = count
			h.parsed = make([]data.Channel, 0, count)
			continue
		}

		channel, err := data.ParseChannel(line)
		if err != nil {
			return false, err
		}

		h.parsed = append(h.parsed, channel)
		if len(h.parsed) == h.want {
			*h.out = h.parsed
			return true, nil
		}
	}
}

func (h *Channels) Disconnected() {}
