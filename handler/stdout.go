package handler

import "io"

// Stdout streams raw response bytes to a writer. It never reports done
// on its own; the request resolves when the server closes the connection
// or the idle timeout fires. Used for hand-written commands where the
// response shape is unknown.
type Stdout struct {
	w io.Writer
}

func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

func (h *Stdout) Accept(chunk []byte) (bool, error) {
	if _, err := h.w.Write(chunk); err != nil {
		return false, err
	}
	return false, nil
}

func (h *Stdout) Disconnected() {}
