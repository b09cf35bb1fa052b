package data

import (
	"fmt"
	"strings"

	"github.com/volcanolab/wws/protocol"
)

// HelicorderRow is the min/max sample pair for one fixed interval.
type HelicorderRow struct {
	Time float64 // J2kSec of the interval start
	Min  float64
	Max  float64
}

// Helicorder holds per-interval extrema used for continuous-monitoring
// displays.
type Helicorder struct {
	Rows []HelicorderRow
}

// HelicorderFromMatrix builds a Helicorder from a decoded double matrix.
// The wire layout is three columns: time, min, max.
func HelicorderFromMatrix(rows, cols int, values []float64) (*Helicorder, error) {
	if cols != 3 {
		return nil, fmt.Errorf("%w: helicorder matrix has %d columns", protocol.ErrBadHeader, cols)
	}

	h := &Helicorder{Rows: make([]HelicorderRow, rows)}
	for i := 0; i < rows; i++ {
		h.Rows[i] = HelicorderRow{
			Time: values[i*3],
			Min:  values[i*3+1],
			Max:  values[i*3+2],
		}
	}

	return h, nil
}

// ToMatrix renders the rows back into the wire's matrix layout.
func (h *Helicorder) ToMatrix() (rows, cols int, values []float64) {
	values = make([]float64, 0, len(h.Rows)*3)
	for _, row := range h.Rows {
		values = append(values, row.Time, row.Min, row.Max)
	}
	return len(h.Rows), 3, values
}

func (h *Helicorder) IsEmpty() bool {
	return len(h.Rows) == 0
}

// ToCSV renders "time,min,max" lines with a header row.
func (h *Helicorder) ToCSV() string {
	var b strings.Builder
	b.WriteString("time,min,max\n")
	for _, row := range h.Rows {
		fmt.Fprintf(&b, "%.6f,%.0f,%.0f\n", row.Time, row.Min, row.Max)
	}
	return b.String()
}
