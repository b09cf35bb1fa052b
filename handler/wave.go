package handler

import "github.com/volcanolab/wws/data"

// Wave decodes a GETWAVERAW response into the caller's Wave holder. A
// no-data response leaves the holder empty and still counts as done.
type Wave struct {
	out        *data.Wave
	compressed bool
	body       bodyReader
}

func NewWave(out *data.Wave, compressed bool) *Wave {
	return &Wave{out: out, compressed: compressed, body: newBodyReader()}
}

func (h *Wave) Accept(chunk []byte) (bool, error) {
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

	wave, err := data.DecodeWave(payload)
	if err != nil {
		return false, err
	}

	*h.out = *wave
	return true, nil
}

func (h *Wave) Disconnected() {}
