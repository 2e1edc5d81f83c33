package garden

import (
	"math"

	"github.com/quietbloom/garden/internal/core"
)

// MaxStage is the growth-stage ceiling. The preset generator clamps to it
// and the L-system iteration count never exceeds it.
const MaxStage = 5

// Rule is a single L-system rewrite rule. A zero Prob means the rule always
// applies; otherwise it applies only when a PRNG draw falls below Prob.
type Rule struct {
	Pred byte    // Predecessor symbol
	Succ string  // Successor string
	Prob float64 // Application probability in (0, 1]; 0 = unconditional
}

// HSL is a hue/saturation/lightness color triple.
// H in [0, 360), S and L in [0, 1].
type HSL struct {
	H, S, L float64
}

// RGB converts the triple to a screen color.
func (c HSL) RGB() core.Color {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := core.ClampF(c.S, 0, 1)
	l := core.ClampF(c.L, 0, 1)

	cc := (1 - math.Abs(2*l-1)) * s
	x := cc * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - cc/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = cc, x, 0
	case h < 120:
		r, g, b = x, cc, 0
	case h < 180:
		r, g, b = 0, cc, x
	case h < 240:
		r, g, b = 0, x, cc
	case h < 300:
		r, g, b = x, 0, cc
	default:
		r, g, b = cc, 0, x
	}
	return core.RGB(
		uint8(math.Round((r+m)*255)),
		uint8(math.Round((g+m)*255)),
		uint8(math.Round((b+m)*255)),
	)
}

// Preset is the full parameter set for one plant at one growth stage.
// Produced once per (seed, stage) and treated as immutable until the stage
// changes.
type Preset struct {
	Archetype   string
	Axiom       string
	Rules       []Rule
	Angle       float64 // Turn angle in degrees
	Iterations  int     // L-system depth = clamped growth stage
	Length      float64 // Base segment length
	LengthDecay float64 // Per-branch length factor
	Width       float64 // Base stroke width
	WidthDecay  float64 // Per-branch width factor
	LeafSize    float64
	LeafColor   HSL
	StemColor   HSL
}

// archetype holds the base constants one plant family is jittered around.
type archetype struct {
	name  string
	axiom string
	rules []Rule

	angle, angleJitter   float64
	length, lengthJitter float64
	decay, decayJitter   float64
	width                float64
	widthDecay           float64
	leafMin, leafMax     float64
	leafHue, leafHueJit  float64
	stemHue, stemHueJit  float64
}

// The archetype table is ordered; the PRNG's first draw indexes into it, so
// entries must not be reordered or every seed's plant changes.
var archetypes = []archetype{
	{
		name:  "fern",
		axiom: "X",
		rules: []Rule{
			{Pred: 'X', Succ: "F[+X][-X]FX"},
			{Pred: 'F', Succ: "FF"},
		},
		angle: 25.7, angleJitter: 3.0,
		length: 10, lengthJitter: 2.5,
		decay: 0.62, decayJitter: 0.06,
		width: 3.2, widthDecay: 0.72,
		leafMin: 2, leafMax: 5,
		leafHue: 110, leafHueJit: 30,
		stemHue: 95, stemHueJit: 15,
	},
	{
		name:  "bush",
		axiom: "F",
		rules: []Rule{
			{Pred: 'F', Succ: "FF+[+F-F-F]-[-F+F+F]"},
		},
		angle: 22.5, angleJitter: 4.0,
		length: 7, lengthJitter: 2.0,
		decay: 0.70, decayJitter: 0.05,
		width: 2.6, widthDecay: 0.78,
		leafMin: 3, leafMax: 7,
		leafHue: 130, leafHueJit: 40,
		stemHue: 85, stemHueJit: 20,
	},
	{
		name:  "tree",
		axiom: "X",
		rules: []Rule{
			{Pred: 'X', Succ: "F[+X]F[-X]+X"},
			{Pred: 'F', Succ: "FF"},
		},
		angle: 20.0, angleJitter: 5.0,
		length: 11, lengthJitter: 3.0,
		decay: 0.58, decayJitter: 0.07,
		width: 3.8, widthDecay: 0.68,
		leafMin: 2, leafMax: 6,
		leafHue: 100, leafHueJit: 25,
		stemHue: 30, stemHueJit: 12,
	},
	{
		name:  "wild",
		axiom: "X",
		rules: []Rule{
			{Pred: 'X', Succ: "F[+X][-X]FX", Prob: 0.85},
			{Pred: 'F', Succ: "FF"},
		},
		angle: 25.0, angleJitter: 8.0,
		length: 9, lengthJitter: 3.5,
		decay: 0.64, decayJitter: 0.09,
		width: 3.0, widthDecay: 0.74,
		leafMin: 2, leafMax: 8,
		leafHue: 150, leafHueJit: 80,
		stemHue: 90, stemHueJit: 30,
	},
}

// GeneratePreset maps a seed and growth stage to a concrete parameter set.
// It derives a fresh PRNG stream from the seed, so the result is independent
// of any other draws in the program. The draw order below (archetype, angle,
// length terms, width terms, leaf size, leaf color, stem color) is fixed:
// changing it would change every derived plant's appearance for a given seed.
func GeneratePreset(seed uint32, stage int) Preset {
	stage = core.Clamp(stage, 0, MaxStage)
	rng := NewRand(seed)

	a := archetypes[rng.NextInt(0, len(archetypes)-1)]

	angle := a.angle + rng.NextFloat(-a.angleJitter, a.angleJitter)
	length := a.length + rng.NextFloat(-a.lengthJitter, a.lengthJitter)
	decay := a.decay + rng.NextFloat(-a.decayJitter, a.decayJitter)
	width := a.width * rng.NextFloat(0.85, 1.15)
	widthDecay := a.widthDecay * rng.NextFloat(0.92, 1.08)
	leafSize := rng.NextFloat(a.leafMin, a.leafMax)
	leaf := HSL{
		H: a.leafHue + rng.NextFloat(-a.leafHueJit, a.leafHueJit),
		S: rng.NextFloat(0.55, 0.9),
		L: rng.NextFloat(0.35, 0.6),
	}
	stem := HSL{
		H: a.stemHue + rng.NextFloat(-a.stemHueJit, a.stemHueJit),
		S: rng.NextFloat(0.3, 0.6),
		L: rng.NextFloat(0.25, 0.45),
	}

	return Preset{
		Archetype:   a.name,
		Axiom:       a.axiom,
		Rules:       a.rules,
		Angle:       angle,
		Iterations:  stage,
		Length:      length,
		LengthDecay: decay,
		Width:       width,
		WidthDecay:  widthDecay,
		LeafSize:    leafSize,
		LeafColor:   leaf,
		StemColor:   stem,
	}
}
