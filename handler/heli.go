package handler

import (
	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/protocol"
)

// Heli decodes a GETSCNLHELIRAW response: a double matrix of
// (time, min, max) rows.
type Heli struct {
	out        *data.Helicorder
	compressed bool
	body       bodyReader
}

func NewHeli(out *data.Helicorder, compressed bool) *Heli {
	return &Heli{out: out, compressed: compressed, body: newBodyReader()}
}

func (h *Heli) Accept(chunk []byte) (bool, error) {
	payload, done, err := h.body.feed(chunk)
	if err != nil || !done {
		return false, err
	}
	if payload == nil {
		return true, nil
	}

	payload, err = inflateIf(h.compressed, payload)
	if err != nil {
		return false, err
	}

	rows, cols, values, err := protocol.DecodeDoubleMatrix(payload)
	if err != nil {
		return false, err
	}

	heli, err := data.HelicorderFromMatrix(rows, cols, values)
	if err != nil {
		return false, err
	}

	*h.out = *heli
	return true, nil
}

func (h *Heli) Disconnected() {}
