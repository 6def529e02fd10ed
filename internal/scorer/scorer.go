// Package scorer turns per-field candidates into calibrated confidence
// scores.
//
// The formula is:
//
//	score = min(1, 0.35 + 0.45*strength + 0.15*position + 0.10*(agreement-1))
//
// where strength is the winning candidate's pattern tightness, position
// is its positional prior and agreement counts the distinct strategies
// that produced the same value. The winner is the candidate the
// assembler stores (Candidate.Preference resolves both), so a field's
// score always describes its assembled value. All three terms are
// non-negative, so the score is monotonic in each signal; agreement
// across independent strategies strictly increases the score over any
// single strategy's base, capped at 1.0. Fields with no candidate get
// no entry.
package scorer

import (
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
)

const (
	base           = 0.35
	agreementBonus = 0.10
)

// Score computes the confidence map for a document's candidates.
// List-valued fields are scored from their strongest element, with
// cross-strategy agreement measured on matching values.
func Score(candidates []meta.Candidate) meta.ConfidenceMap {
	byField := make(map[string][]meta.Candidate)
	for _, c := range candidates {
		byField[c.Field] = append(byField[c.Field], c)
	}

	conf := make(meta.ConfidenceMap, len(byField))
	for field, cands := range byField {
		conf[field] = scoreField(cands)
	}
	return conf
}

func scoreField(cands []meta.Candidate) float64 {
	// Strictly-greater replacement mirrors the assembler's tie-break:
	// on equal preference the earlier candidate wins.
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Preference() > best.Preference() {
			best = c
		}
	}

	// Distinct strategies proposing the winning value.
	strategies := make(map[string]bool)
	winKey := valueKey(best)
	for _, c := range cands {
		if valueKey(c) == winKey {
			strategies[c.Strategy] = true
		}
	}

	score := base + best.Preference() + agreementBonus*float64(len(strategies)-1)
	return clamp01(score)
}

func valueKey(c meta.Candidate) string {
	return strings.ToLower(strings.TrimSpace(c.Value))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
