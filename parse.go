package intr

import (
	"strconv"
	"strings"
)

// ParseLine parses "ox,oy,dx,dy" into a float64 line with origin (ox, oy)
// and direction (dx, dy). Whitespace around values is ignored.
func ParseLine(s string) (Line[float64], error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Line[float64]{}, &ParseError{Input: s, Err: ErrFieldCount}
	}
	var v [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Line[float64]{}, &ParseError{Input: s, Err: err}
		}
		v[i] = x
	}
	return NewLine(Pt(v[0], v[1]), V2(v[2], v[3])), nil
}
