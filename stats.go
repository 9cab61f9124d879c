package turbolz

import "fmt"

// Stats counts the bytes a session consumed and produced.
type Stats struct {
	In  int64 // Bytes consumed.
	Out int64 // Bytes produced.
}

// Ratio returns Out/In, or 0 when nothing was consumed.
func (s Stats) Ratio() float64 {
	if s.In == 0 {
		return 0
	}

	return float64(s.Out) / float64(s.In)
}

// Percent returns the ratio as a percentage, or 0 when nothing was consumed.
func (s Stats) Percent() float64 {
	return 100 * s.Ratio()
}

func (s Stats) String() string {
	return fmt.Sprintf("%d input bytes to %d output bytes (%.0f%%)", s.In, s.Out, s.Percent())
}
