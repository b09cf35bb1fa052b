package handler

import (
	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/protocol"
)

// Rsam decodes a GETSCNLRSAMRAW response: a double matrix of
// (time, value) rows.
type Rsam struct {
	out        *data.Rsam
	compressed bool
	body       bodyReader
}

func NewRsam(out *data.Rsam, compressed bool) *Rsam {
	return &Rsam{out: out, compressed: compressed, body: newBodyReader()}
}

func (h *Rsam) Accept(chunk []byte) (bool, error) {
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

	rsam, err := data.RsamFromMatrix(rows, cols, values)
	if err != nil {
		return false, err
	}

	*h.out = *rsam
	return true, nil
}

func (h *Rsam) Disconnected() {}
