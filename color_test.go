package plot

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#fff", RGBA{1, 1, 1, 1}},
		{"#000", RGBA{0, 0, 0, 1}},
		{"#f00", RGBA{1, 0, 0, 1}},
		{"#ff0000", RGBA{1, 0, 0, 1}},
		{"#00ff00", RGBA{0, 1, 0, 1}},
		{"#0000ff", RGBA{0, 0, 1, 1}},
		{"ff0000", RGBA{1, 0, 0, 1}},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"#f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"bogus", RGBA{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		got := Hex(tt.hex)
		if math.Abs(got.R-tt.want.R) > 0.01 ||
			math.Abs(got.G-tt.want.G) > 0.01 ||
			math.Abs(got.B-tt.want.B) > 0.01 ||
			math.Abs(got.A-tt.want.A) > 0.01 {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Red, "#ff0000"},
		{White, "#ffffff"},
		{Black, "#000000"},
		{RGB(0.5, 0.5, 0.5), "#808080"},
	}
	for _, tt := range tests {
		if got := tt.c.HexString(); got != tt.want {
			t.Errorf("%+v.HexString() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHexStringRoundTrip(t *testing.T) {
	for _, s := range []string{"#4682b4", "#ff4500", "#228b22"} {
		if got := Hex(s).HexString(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA{0.25, 0.5, 0.75, 1.0}
	back := FromColor(orig)
	if math.Abs(back.R-orig.R) > 0.01 ||
		math.Abs(back.G-orig.G) > 0.01 ||
		math.Abs(back.B-orig.B) > 0.01 ||
		math.Abs(back.A-orig.A) > 0.01 {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}

	if got := FromColor(Transparent); got != (RGBA{}) {
		t.Errorf("FromColor(transparent) = %+v, want zero", got)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("midpoint = %+v", mid)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp(0) = %+v, want start", got)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("Lerp(1) = %+v, want end", got)
	}
}

func TestPaletteColorCycles(t *testing.T) {
	n := len(DefaultPalette)
	for i := 0; i < n; i++ {
		if PaletteColor(i) != PaletteColor(i+n) {
			t.Errorf("palette does not cycle at %d", i)
		}
	}
	if PaletteColor(-1) != PaletteColor(1) {
		t.Error("negative index not mirrored")
	}
	// Adjacent palette entries must differ.
	for i := 1; i < n; i++ {
		if DefaultPalette[i] == DefaultPalette[i-1] {
			t.Errorf("palette entries %d and %d identical", i-1, i)
		}
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("steelblue")
	if !ok {
		t.Fatal("steelblue not found")
	}
	if c.HexString() != "#4682b4" {
		t.Errorf("steelblue = %s, want #4682b4", c.HexString())
	}
	if _, ok := Named("notacolor"); ok {
		t.Error("unknown name reported found")
	}
}
