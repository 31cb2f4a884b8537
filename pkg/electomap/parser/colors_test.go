package parser

import (
	"errors"
	"testing"

	"github.com/okondo/electomap/pkg/electomap/models"
)

func TestColorFor(t *testing.T) {
	p := models.DefaultPalette()

	tests := []struct {
		value    float64
		expected string
	}{
		{-65.7, "#4389E3"},
		{51.3, "#E27F90"},
		{-51.3, "#86B6F2"},
		{65.7, "#CC2F4A"},
		// Band edges are exclusive-low, inclusive-high.
		{60.0, "#E27F90"},
		{60.01, "#CC2F4A"},
		{-60.0, "#86B6F2"},
		{-60.01, "#4389E3"},
		{100.0, "#800000"},
		{-100.0, "#002B84"},
		// Beyond the last band clamps to the darkest color.
		{120.0, "#800000"},
		{-120.0, "#002B84"},
	}

	for _, tt := range tests {
		got, err := ColorFor(tt.value, p)
		if err != nil {
			t.Errorf("ColorFor(%v) returned error: %v", tt.value, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ColorFor(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestColorForSideSelection(t *testing.T) {
	p := models.DefaultPalette()

	inRamp := func(color string, ramp []string) bool {
		for _, c := range ramp {
			if c == color {
				return true
			}
		}
		return false
	}

	// Every magnitude in (50, 100] must land on exactly one ramp color,
	// with the ramp chosen by the sign.
	for v := 50.5; v <= 100; v += 0.5 {
		neg, err := ColorFor(-v, p)
		if err != nil {
			t.Fatalf("ColorFor(%v) returned error: %v", -v, err)
		}
		if !inRamp(neg, p.SideA) {
			t.Errorf("ColorFor(%v) = %q, not in side-A ramp", -v, neg)
		}
		pos, err := ColorFor(v, p)
		if err != nil {
			t.Fatalf("ColorFor(%v) returned error: %v", v, err)
		}
		if !inRamp(pos, p.SideB) {
			t.Errorf("ColorFor(%v) = %q, not in side-B ramp", v, pos)
		}
	}
}

func TestColorForBelowScale(t *testing.T) {
	p := models.DefaultPalette()

	for _, v := range []float64{0, 25, 50, -50, -12.5} {
		if _, err := ColorFor(v, p); !errors.Is(err, ErrMarginBelowScale) {
			t.Errorf("ColorFor(%v) error = %v, want ErrMarginBelowScale", v, err)
		}
	}
}

func TestHighlight(t *testing.T) {
	const grey = "#D6D6D6"

	if got := Highlight("Gulfland", "#D40000", "Gulfland", grey); got != "#D40000" {
		t.Errorf("matching owner: got %q, want original color", got)
	}
	if got := Highlight("Trinity", "#D40000", "Gulfland", grey); got != grey {
		t.Errorf("non-matching owner: got %q, want neutral", got)
	}
	// Idempotent for any color when the owner matches.
	for _, color := range []string{"#86B6F2", "#800000", grey} {
		if got := Highlight("X", color, "X", grey); got != color {
			t.Errorf("Highlight(X, %q, X) = %q, want unchanged", color, got)
		}
	}
}
