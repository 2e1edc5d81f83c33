package core

import "testing"

func TestColorZeroValueIsUnset(t *testing.T) {
	var c Color
	if c.IsSet() {
		t.Error("zero Color should be unset")
	}
	if c.Hex() != "" {
		t.Errorf("unset Hex() = %q, expected empty", c.Hex())
	}
}

func TestBlackIsDistinctFromUnset(t *testing.T) {
	black := RGB(0, 0, 0)
	if !black.IsSet() {
		t.Error("explicit black should be set")
	}
	if black.Hex() != "#000000" {
		t.Errorf("black Hex() = %q", black.Hex())
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGB(0x12, 0xab, 0xff)
	r, g, b := c.RGB()
	if r != 0x12 || g != 0xab || b != 0xff {
		t.Errorf("RGB round trip: got (%x, %x, %x)", r, g, b)
	}
	if c.Hex() != "#12abff" {
		t.Errorf("Hex() = %q, expected #12abff", c.Hex())
	}
}

func TestBlendColor(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(100, 200, 50)

	if got := BlendColor(a, b, 0); got != a {
		t.Errorf("t=0 should return the first color, got %v", got)
	}
	if got := BlendColor(a, b, 1); got != b {
		t.Errorf("t=1 should return the second color, got %v", got)
	}

	mid := BlendColor(a, b, 0.5)
	r, g, _ := mid.RGB()
	if r != 50 || g != 100 {
		t.Errorf("midpoint = (%d, %d, _), expected (50, 100, _)", r, g)
	}

	// Unset colors defer to the set one
	var unset Color
	if got := BlendColor(unset, b, 0.5); got != b {
		t.Error("blending with unset should return the set color")
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(7, 0, 5) != 5 || Clamp(-1, 0, 5) != 0 || Clamp(3, 0, 5) != 3 {
		t.Error("Clamp misbehaves")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF misbehaves")
	}
	if Lerp(0, 10, 0.3) != 3 {
		t.Errorf("Lerp(0, 10, 0.3) = %v", Lerp(0, 10, 0.3))
	}
}
