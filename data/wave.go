// Package data holds the typed results produced by the response
// handlers: raw waveforms, helicorder extrema, RSAM envelopes and the
// server channel menu. Times inside these types stay in J2kSec, the
// protocol's native representation.
package data

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/volcanolab/wws/protocol"
)

// Wave holds one channel's raw samples for a stretch of time.
type Wave struct {
	// StartTime of the first sample, as J2kSec.
	StartTime float64

	// SampleRate in samples per second.
	SampleRate float64

	// RegistrationOffset carried through from the server, unused by this
	// client but preserved for file output.
	RegistrationOffset float64

	Samples []int32
}

// DecodeWave parses a waveform payload: three big-endian float64 header
// fields (start time, sample rate, registration offset) followed by
// big-endian int32 samples.
func DecodeWave(payload []byte) (*Wave, error) {
	if len(payload) < 24 {
		return nil, fmt.Errorf("%w: waveform in %d bytes", protocol.ErrShortPayload, len(payload))
	}

	w := &Wave{
		StartTime:          math.Float64frombits(binary.BigEndian.Uint64(payload)),
		SampleRate:         math.Float64frombits(binary.BigEndian.Uint64(payload[8:])),
		RegistrationOffset: math.Float64frombits(binary.BigEndian.Uint64(payload[16:])),
	}

	body := payload[24:]
	w.Samples = make([]int32, len(body)/4)
	for i := range w.Samples {
		w.Samples[i] = int32(binary.BigEndian.Uint32(body[i*4:]))
	}

	return w, nil
}

// EncodeWave is the inverse of DecodeWave.
func EncodeWave(w *Wave) []byte {
	out := make([]byte, 24+len(w.Samples)*4)
	binary.BigEndian.PutUint64(out, math.Float64bits(w.StartTime))
	binary.BigEndian.PutUint64(out[8:], math.Float64bits(w.SampleRate))
	binary.BigEndian.PutUint64(out[16:], math.Float64bits(w.RegistrationOffset))

	for i, s := range w.Samples {
		binary.BigEndian.PutUint32(out[24+i*4:], uint32(s))
	}

	return out
}

// IsEmpty reports whether the wave carries no samples, the shape every
// failed or data-less request leaves behind.
func (w *Wave) IsEmpty() bool {
	return len(w.Samples) == 0
}

// EndTime is the J2kSec instant one sample period past the last sample.
func (w *Wave) EndTime() float64 {
	if w.SampleRate == 0 {
		return w.StartTime
	}
	return w.StartTime + float64(len(w.Samples))/w.SampleRate
}

// ToText renders one sample per line, the format of the classic text
// dump output.
func (w *Wave) ToText() string {
	var b strings.Builder
	for _, s := range w.Samples {
		b.WriteString(strconv.Itoa(int(s)))
		b.WriteByte('\n')
	}
	return b.String()
}
