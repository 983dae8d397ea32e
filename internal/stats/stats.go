// Package stats computes per-player analytics over merged match histories:
// the global summary, streak/clutch/opponent/evolution breakdowns, and the
// composite 1-10 score that folds them together.
//
// Every entry point takes one player's records, copies and sorts them
// chronologically, and folds precomputed sequences into an immutable result
// struct. Nothing here mutates its input and nothing is shared between
// players, so AnalyzeAll fans out freely.
package stats

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 { return &v }

// mean returns the 2-decimal mean of vals, nil for an empty slice. Nil, not
// zero: every "no sample" aggregate in this package reports absence.
func mean(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return ptr(round2(sum / float64(len(vals))))
}

// stddev returns the 2-decimal sample standard deviation, nil when fewer
// than two values exist.
func stddev(vals []float64) *float64 {
	n := len(vals)
	if n < 2 {
		return nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	m := sum / float64(n)
	var sq float64
	for _, v := range vals {
		d := v - m
		sq += d * d
	}
	return ptr(round2(math.Sqrt(sq / float64(n-1))))
}

// pct returns part/total as a 2-decimal percentage, nil when total is zero.
func pct(part, total int) *float64 {
	if total == 0 {
		return nil
	}
	return ptr(round2(100 * float64(part) / float64(total)))
}
