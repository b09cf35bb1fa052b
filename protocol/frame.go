package protocol

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrBadHeader    = errors.New("Response header line is malformed")
	ErrShortPayload = errors.New("Payload is too short for its declared size")
)

// A LineBuffer accumulates incoming bytes until a full LF-terminated
// line is available. Bytes past the newline are handed back to the
// caller untouched.
type LineBuffer struct {
	buf bytes.Buffer
}

// Feed appends chunk to the buffer. When a newline is reached it returns
// the completed line without its LF, the unconsumed remainder of chunk,
// and ok=true; the buffer resets for the next line.
func (l *LineBuffer) Feed(chunk []byte) (line string, rest []byte, ok bool) {
	i := bytes.IndexByte(chunk, '\n')
	if i < 0 {
		l.buf.Write(chunk)
		return "", nil, false
	}

	l.buf.Write(chunk[:i])
	line = l.buf.String()
	l.buf.Reset()

	return line, chunk[i+1:], true
}

// HeaderLength extracts the trailing numeric field from a response
// header line such as "GETWAVERAW: GS 2044". Zero or negative means the
// server has no data for the request.
func HeaderLength(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}

	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}

	return n, nil
}

// Inflate unwraps a zlib-compressed response payload.
func Inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// Deflate zlib-compresses a payload the way the server does when a
// request carries the compression flag.
func Deflate(data []byte) []byte {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()

	return buf.Bytes()
}

// DecodeDoubleMatrix parses the payload shape shared by helicorder and
// RSAM responses: two big-endian int32 dimensions followed by rows*cols
// big-endian float64 values.
func DecodeDoubleMatrix(data []byte) (rows, cols int, values []float64, err error) {
	if len(data) < 8 {
		return 0, 0, nil, fmt.Errorf("%w: %d bytes", ErrShortPayload, len(data))
	}

	rows = int(int32(binary.BigEndian.Uint32(data)))
	cols = int(int32(binary.BigEndian.Uint32(data[4:])))

	// Dividing the available cell count keeps hostile dimensions from
	// overflowing rows*cols.
	cells := (len(data) - 8) / 8
	if rows < 0 || cols < 0 || (cols > 0 && rows > cells/cols) {
		return 0, 0, nil, fmt.Errorf("%w: %dx%d matrix in %d bytes", ErrShortPayload, rows, cols, len(data))
	}

	values = make([]float64, rows*cols)
	for i := range values {
		bits := binary.BigEndian.Uint64(data[8+i*8:])
		values[i] = math.Float64frombits(bits)
	}

	return rows, cols, values, nil
}

// EncodeDoubleMatrix is the inverse of DecodeDoubleMatrix.
func EncodeDoubleMatrix(rows, cols int, values []float64) []byte {
	out := make([]byte, 8+len(values)*8)
	binary.BigEndian.PutUint32(out, uint32(rows))
	binary.BigEndian.PutUint32(out[4:], uint32(cols))

	for i, v := range values {
		binary.BigEndian.PutUint64(out[8+i*8:], math.Float64bits(v))
	}

	return out
}
