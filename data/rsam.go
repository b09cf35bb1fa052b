package data

import (
	"fmt"
	"strings"

	"github.com/volcanolab/wws/protocol"
)

// RsamRow is one periodic amplitude value.
type RsamRow struct {
	Time  float64 // J2kSec
	Value float64
}

// Rsam holds a Real-time Seismic Amplitude Measurement envelope.
type Rsam struct {
	Rows []RsamRow
}

// RsamFromMatrix builds an Rsam from a decoded double matrix. The wire
// layout is two columns: time, value.
func RsamFromMatrix(rows, cols int, values []float64) (*Rsam, error) {
	if cols != 2 {
		return nil, fmt.Errorf("%w: RSAM matrix has %d columns", protocol.ErrBadHeader, cols)
	}

	r := &Rsam{Rows: make([]RsamRow, rows)}
	for i := 0; i < rows; i++ {
		r.Rows[i] = RsamRow{Time: values[i*2], Value: values[i*2+1]}
	}

	return r, nil
}

// ToMatrix renders the rows back into the wire's matrix layout.
func (r *Rsam) ToMatrix() (rows, cols int, values []float64) {
	values = make([]float64, 0, len(r.Rows)*2)
	for _, row := range r.Rows {
		values = append(values, row.Time, row.Value)
	}
	return len(r.Rows), 2, values
}

func (r *Rsam) IsEmpty() bool {
	return len(r.Rows) == 0
}

// ToCSV renders "time,value" lines with a header row.
func (r *Rsam) ToCSV() string {
	var b strings.Builder
	b.WriteString("time,value\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%.6f,%.2f\n", row.Time, row.Value)
	}
	return b.String()
}
