package engine

import "strings"

// NewCommandsFromSuggestions locates the first position in argv equal
// to tokenToReplace and, for each trimmed non-empty suggestion, returns
// a Parts Correction with that position replaced by the suggestion.
// Returns false if tokenToReplace is not present in argv at all.
func NewCommandsFromSuggestions(suggestions []string, argv []string, tokenToReplace string) ([]Correction, bool) {
	pos := -1
	for i, p := range argv {
		if p == tokenToReplace {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil, false
	}

	var corrections []Correction
	for _, s := range suggestions {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		replaced := make([]string, len(argv))
		copy(replaced, argv)
		replaced[pos] = s
		corrections = append(corrections, PartsCorrection(replaced))
	}
	return corrections, true
}
