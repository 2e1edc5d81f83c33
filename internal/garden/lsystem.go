package garden

import "strings"

// Rewrite expands the preset's axiom through Iterations rounds of rule
// substitution. Each round scans the current string strictly left to right
// and consults the first rule whose predecessor matches the symbol: an
// unconditional rule always applies; a probabilistic rule applies only when
// a draw from rng falls below its probability, otherwise the symbol passes
// through unchanged and no further rule is tried for it. Symbols produced
// within a round are not reprocessed until the next round.
//
// The rng is a single shared stream for the whole rewrite, so results depend
// on scan order. Callers wanting reproducible output seed it from the
// plant's seed. Zero iterations returns the axiom itself.
func Rewrite(p Preset, rng *Rand) string {
	current := p.Axiom
	for i := 0; i < p.Iterations; i++ {
		current = expandOnce(current, p.Rules, rng)
	}
	return current
}

// expandOnce applies one round of substitution.
func expandOnce(s string, rules []Rule, rng *Rand) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)

	// The alphabet is single-byte symbols, so byte scanning is exact.
	for i := 0; i < len(s); i++ {
		sym := s[i]
		rule, ok := matchRule(rules, sym)
		if !ok {
			sb.WriteByte(sym)
			continue
		}
		if rule.Prob > 0 && rng.Next() >= rule.Prob {
			sb.WriteByte(sym)
			continue
		}
		sb.WriteString(rule.Succ)
	}
	return sb.String()
}

// matchRule returns the first rule whose predecessor equals sym.
func matchRule(rules []Rule, sym byte) (Rule, bool) {
	for _, r := range rules {
		if r.Pred == sym {
			return r, true
		}
	}
	return Rule{}, false
}
