package data

import (
	"encoding/binary"
	"errors"
	"math"
	"os"

	"github.com/volcanolab/wws/protocol"
)

// SAC header geometry: 70 float words, 40 int words (the last five are
// logicals), 192 bytes of character fields, then float32 samples. All
// big-endian. Unset fields carry the SAC undefined marker.
const (
	sacHeaderBytes = 632
	sacUndef       = -12345
	sacVersion     = 6
	sacITime       = 1
)

var ErrEmptyWave = errors.New("Refusing to write a SAC file for an empty wave")

// WriteSac writes the wave as a single-trace SAC binary file. The
// channel identity lands in the kstnm/kcmpnm/knetwk/khole fields.
func WriteSac(path string, scnl protocol.Scnl, w *Wave) error {
	if w.IsEmpty() {
		return ErrEmptyWave
	}

	buf := make([]byte, sacHeaderBytes+len(w.Samples)*4)

	putF := func(word int, v float64) {
		binary.BigEndian.PutUint32(buf[word*4:], math.Float32bits(float32(v)))
	}
	putI := func(word int, v int32) {
		binary.BigEndian.PutUint32(buf[word*4:], uint32(v))
	}
	putK := func(offset, width int, s string) {
		field := buf[440+offset : 440+offset+width]
		for i := range field {
			field[i] = ' '
		}
		copy(field, s)
	}

	for word := 0; word < 70; word++ {
		putF(word, sacUndef)
	}
	for word := 70; word < 110; word++ {
		putI(word, sacUndef)
	}
	for offset := 0; offset < 192; offset += 8 {
		putK(offset, 8, "-12345")
	}

	delta := 0.0
	if w.SampleRate > 0 {
		delta = 1 / w.SampleRate
	}
	putF(0, delta)                           // delta
	putF(5, 0)                               // b, relative to the reference time
	putF(6, float64(len(w.Samples)-1)*delta) // e

	start := protocol.TimeFromJ2k(w.StartTime)
	putI(70, int32(start.Year()))           // nzyear
	putI(71, int32(start.YearDay()))        // nzjday
	putI(72, int32(start.Hour()))           // nzhour
	putI(73, int32(start.Minute()))         // nzmin
	putI(74, int32(start.Second()))         // nzsec
	putI(75, int32(start.Nanosecond()/1e6)) // nzmsec
	putI(76, sacVersion)                    // nvhdr
	putI(79, int32(len(w.Samples)))         // npts
	putI(85, sacITime)                      // iftype
	putI(105, 1)                            // leven

	putK(0, 8, scnl.Station)     // kstnm
	putK(8, 16, "-12345")        // kevnm
	putK(24, 8, scnl.Location)   // khole
	putK(160, 8, scnl.Component) // kcmpnm
	putK(168, 8, scnl.Network)   // knetwk

	for i, s := range w.Samples {
		binary.BigEndian.PutUint32(buf[sacHeaderBytes+i*4:], math.Float32bits(float32(s)))
	}

	return os.WriteFile(path, buf, 0644)
}
