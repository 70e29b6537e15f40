package intr

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Line[float64]
	}{
		{"plain", "0,1,2,3", NewLine(Pt(0.0, 1), V2(2.0, 3))},
		{"spaces", " -1.5 , 2e3,0 , -4 ", NewLine(Pt(-1.5, 2000), V2(0.0, -4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	_, err := ParseLine("1,2,3")
	if !errors.Is(err, ErrFieldCount) {
		t.Errorf("ParseLine(3 fields) = %v, want ErrFieldCount", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Input != "1,2,3" {
		t.Errorf("ParseLine(3 fields) error = %#v, want *ParseError with input", err)
	}

	_, err = ParseLine("1,x,3,4")
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		t.Errorf("ParseLine(bad number) = %v, want wrapped *strconv.NumError", err)
	}
	if err != nil && err.Error() == "" {
		t.Error("ParseError.Error() is empty")
	}
}
