package engine

import "strings"

// correctionKind tags which variant a Correction holds.
type correctionKind int

const (
	kindCommand correctionKind = iota
	kindParts
	kindAnd
)

// Correction is a proposed alternative command. It is either a fully
// rendered command string, an argv to be shell-joined, or the AND of
// two further Corrections. Render turns any variant into the final
// string for a given shell.
//
// Unlike the Rust original this carries no borrow/lifetime annotation:
// Go's garbage collector makes the Cow<str> distinction moot, so every
// slot is a plain string.
type Correction struct {
	kind  correctionKind
	parts []string
	and   [2]*Correction
}

// CommandCorrection builds a Correction that is already a full command
// line, used verbatim (still subject to trimming by the dispatcher).
func CommandCorrection(command string) Correction {
	return Correction{kind: kindCommand, parts: []string{command}}
}

// PartsCorrection builds a Correction from argv parts to be shell-joined.
func PartsCorrection(parts []string) Correction {
	cp := make([]string, len(parts))
	copy(cp, parts)
	return Correction{kind: kindParts, parts: cp}
}

// AndCorrection composes two Corrections with the shell's AND token,
// rendered first && second.
func AndCorrection(first, second Correction) Correction {
	f, s := first, second
	return Correction{kind: kindAnd, and: [2]*Correction{&f, &s}}
}

// AndCommand is a convenience for the common case of AND-ing a
// synthesized command with the original input.
func AndCommand(synthesized []string, original string) Correction {
	return AndCorrection(PartsCorrection(synthesized), CommandCorrection(original))
}

// Render renders a Correction to a final command string for shell.
// It is a pure, deterministic post-order traversal: Parts are joined
// with shell escaping, Command is trimmed of surrounding whitespace,
// And joins its two
// rendered children with the shell's AND token.
//
// Fish escaping is a known, documented gap: the join token is " and "
// with no further re-escaping of the already-rendered children, matching
// the admitted deficiency in the source this engine is grounded on.
func (c Correction) Render(shell Shell) string {
	switch c.kind {
	case kindCommand:
		return strings.TrimSpace(c.parts[0])
	case kindParts:
		return ShlexJoin(c.parts)
	case kindAnd:
		left := c.and[0].Render(shell)
		right := c.and[1].Render(shell)
		return left + " " + shell.AndToken() + " " + right
	default:
		return ""
	}
}

// PublicCorrection is the value emitted to callers of Correct: a
// rendered command string and the id of the rule that produced it.
type PublicCorrection struct {
	Command      string
	RuleApplied  string
}
