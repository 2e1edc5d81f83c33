package garden

import "testing"

// fernRules is the deterministic rule pair used by several tests.
var fernRules = []Rule{
	{Pred: 'X', Succ: "F[+X][-X]FX"},
	{Pred: 'F', Succ: "FF"},
}

func TestRewriteZeroIterations(t *testing.T) {
	p := Preset{Axiom: "X", Rules: fernRules, Iterations: 0}
	got := Rewrite(p, NewRand(1))
	if got != "X" {
		t.Errorf("zero iterations: got %q, want the axiom %q", got, "X")
	}
}

func TestRewriteThreeIterationsFixture(t *testing.T) {
	// Exact expansion of axiom "X" under {X->F[+X][-X]FX, F->FF} after
	// three iterations. Both rules are unconditional, so the PRNG is never
	// consulted and the output is a fixed string.
	const want = "FFFF[+FF[+F[+X][-X]FX][-F[+X][-X]FX]FFF[+X][-X]FX]" +
		"[-FF[+F[+X][-X]FX][-F[+X][-X]FX]FFF[+X][-X]FX]" +
		"FFFFFF[+F[+X][-X]FX][-F[+X][-X]FX]FFF[+X][-X]FX"

	p := Preset{Axiom: "X", Rules: fernRules, Iterations: 3}
	got := Rewrite(p, NewRand(12345))
	if got != want {
		t.Errorf("expansion mismatch:\ngot  %q (len %d)\nwant %q (len %d)",
			got, len(got), want, len(want))
	}
	if len(got) != 143 {
		t.Errorf("expansion length = %d, want 143", len(got))
	}
}

func TestRewriteGrowthBound(t *testing.T) {
	// With no empty successors, output length is non-decreasing in the
	// iteration count.
	prevLen := 0
	for k := 0; k <= MaxStage; k++ {
		p := Preset{Axiom: "X", Rules: fernRules, Iterations: k}
		got := Rewrite(p, NewRand(1))
		if len(got) < prevLen {
			t.Fatalf("iterations %d: length %d < previous %d", k, len(got), prevLen)
		}
		prevLen = len(got)
	}
}

func TestRewriteUnmatchedSymbolsPassThrough(t *testing.T) {
	p := Preset{Axiom: "A+B[C]", Rules: fernRules, Iterations: 2}
	got := Rewrite(p, NewRand(1))
	if got != "A+B[C]" {
		t.Errorf("unmatched symbols changed: got %q", got)
	}
}

func TestRewriteFirstMatchWins(t *testing.T) {
	// When the first matching rule's probability draw fails, the symbol
	// passes through unchanged; later rules for the same predecessor are
	// never consulted. Seed 12345's first draw is ~0.98, which fails the
	// 0.5 gate.
	rules := []Rule{
		{Pred: 'X', Succ: "A", Prob: 0.5},
		{Pred: 'X', Succ: "B"},
	}
	p := Preset{Axiom: "X", Rules: rules, Iterations: 1}
	got := Rewrite(p, NewRand(12345))
	if got != "X" {
		t.Errorf("failed draw should pass symbol through, got %q", got)
	}
}

func TestRewriteStochasticDeterminism(t *testing.T) {
	// A shared PRNG stream makes stochastic rewrites reproducible for a
	// given seed.
	rules := []Rule{
		{Pred: 'X', Succ: "F[+X][-X]FX", Prob: 0.85},
		{Pred: 'F', Succ: "FF"},
	}
	p := Preset{Axiom: "X", Rules: rules, Iterations: 4}

	a := Rewrite(p, NewRand(777))
	b := Rewrite(p, NewRand(777))
	if a != b {
		t.Errorf("same seed produced different expansions:\n%q\n%q", a, b)
	}
}
