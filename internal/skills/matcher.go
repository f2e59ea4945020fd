package skills

import "strings"

// Match reports whether a required skill and a candidate skill name the same
// technology. Checks run in order and the first positive wins:
//
//  1. normalized equality,
//  2. membership in the same synonym group,
//  3. asymmetric substring heuristics that catch abbreviation and suffix
//     variants ("react" vs "reactjs") while the length gates keep short
//     fragments ("r" inside "react") from matching everything.
//
// The heuristic is approximate at the boundary ratios; it is total and never
// fails on empty or malformed input.
func Match(required, candidate string) bool {
	req := Normalize(required)
	cand := Normalize(candidate)
	if req == "" || cand == "" {
		return false
	}

	if req == cand {
		return true
	}

	if sameSynonymGroup(req, cand) {
		return true
	}

	if strings.Contains(cand, req) {
		if len(req) >= 4 && (strings.HasPrefix(cand, req) || strings.HasSuffix(cand, req)) {
			return true
		}
		if len(req) >= 5 && float64(len(req))/float64(len(cand)) >= 0.6 {
			return true
		}
	}

	if strings.Contains(req, cand) {
		if len(cand) >= 4 && float64(len(cand))/float64(len(req)) >= 0.75 {
			return true
		}
	}

	return false
}
