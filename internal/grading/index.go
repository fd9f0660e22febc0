package grading

import (
	"math"
	"strconv"
	"strings"
)

// parseIndex accepts "2", " 2 " and "2.0"; fractions and negatives are rejected.
func parseIndex(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, i >= 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func matchOption(s string, options []string, fold bool) (int, bool) {
	for i, o := range options {
		if o == s {
			return i, true
		}
	}
	if !fold {
		return 0, false
	}
	ns := foldOption(s)
	for i, o := range options {
		if foldOption(o) == ns {
			return i, true
		}
	}
	return 0, false
}
