// Package handler contains the response decoders, one per Winston
// command. Each handler owns the holder its result is written into and a
// parse state machine for its wire format; the connection feeds it bytes
// as they arrive and resolves the pending request once the handler
// reports done or fails. A handler whose request asked for compression
// inflates the payload before decoding it.
package handler

import (
	"bytes"
	"fmt"

	"github.com/volcanolab/wws/protocol"
)

// bodyReader implements the two-phase shape shared by the raw data
// responses: an ASCII header line whose trailing field is the payload
// byte count, followed by exactly that many payload bytes.
type bodyReader struct {
	line protocol.LineBuffer
	want int
	body bytes.Buffer
}

func newBodyReader() bodyReader {
	return bodyReader{want: -1}
}

// feed consumes the next chunk. Once the full payload has arrived it is
// returned with done=true; a header that declares no data returns
// done=true with a nil payload.
func (b *bodyReader) feed(chunk []byte) (payload []byte, done bool, err error) {
	if b.want < 0 {
		line, rest, ok := b.line.Feed(chunk)
		if !ok {
			return nil, false, nil
		}

		n, err := protocol.HeaderLength(line)
		if err != nil {
			return nil, false, err
		}
		if n <= 0 {
			// The server has no data for this request.
			return nil, true, nil
		}

		b.want = n
		chunk = rest
	}

	b.body.Write(chunk)
	if b.body.Len() < b.want {
		return nil, false, nil
	}
	if b.body.Len() > b.want {
		return nil, false, fmt.Errorf("%w: %d bytes past the declared %d",
			protocol.ErrBadHeader, b.body.Len()-b.want, b.want)
	}

	return b.body.Bytes(), true, nil
}

// inflateIf unwraps the payload when the request asked for compression.
func inflateIf(compressed bool, payload []byte) ([]byte, error) {
	if !compressed {
		return payload, nil
	}
	return protocol.Inflate(payload)
}
