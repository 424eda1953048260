package extraction

import (
	"regexp"
	"strings"
)

// rule pairs a compiled pattern with an optional cleanup step and local
// acceptance filter. All four field extractors share the same evaluation
// shape: try patterns in order, first candidate passing its filter wins.
type rule struct {
	pattern *regexp.Regexp
	group   int                 // submatch index holding the candidate; 0 means whole match
	clean   func(string) string // optional normalization before filtering
	accept  func(string) bool   // optional local filter; nil accepts anything
}

// firstMatch evaluates rules in order and returns the first candidate value
// that passes its rule's filter, or empty string when no rule yields one.
func firstMatch(text string, rules []rule) string {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil || r.group >= len(m) {
			continue
		}
		candidate := strings.TrimSpace(m[r.group])
		if r.clean != nil {
			candidate = r.clean(candidate)
		}
		if candidate == "" {
			continue
		}
		if r.accept == nil || r.accept(candidate) {
			return candidate
		}
	}
	return ""
}
