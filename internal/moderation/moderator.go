// Package moderation classifies review justification text as acceptable or
// not. The check is deterministic and never fails: it always yields a
// verdict.
package moderation

import (
	"strings"
)

// Verdict is the outcome of moderating a piece of text.
type Verdict int

const (
	// VerdictAccept means the text contains no blocked terms.
	VerdictAccept Verdict = iota
	// VerdictReject means at least one blocked term was found.
	VerdictReject
)

// String returns a human-readable form of the verdict.
func (v Verdict) String() string {
	if v == VerdictReject {
		return "reject"
	}
	return "accept"
}

// defaultBlocklist holds the terms that cause rejection. Matching is
// case-insensitive and substring-based: partial-word matches count.
var defaultBlocklist = []string{
	"idiota",
	"estúpido",
	"inutil",
	"mierda",
	"basura",
}

// Moderator screens free text against a fixed blocklist.
type Moderator struct {
	blocklist []string
}

// NewModerator creates a moderator with the default blocklist.
func NewModerator() *Moderator {
	return NewModeratorWithBlocklist(defaultBlocklist)
}

// NewModeratorWithBlocklist creates a moderator with a custom blocklist.
// Terms are lowercased once at construction.
func NewModeratorWithBlocklist(terms []string) *Moderator {
	blocklist := make([]string, len(terms))
	for i, t := range terms {
		blocklist[i] = strings.ToLower(t)
	}
	return &Moderator{blocklist: blocklist}
}

// Moderate returns VerdictReject when the text contains any blocked term as
// a substring, VerdictAccept otherwise.
func (m *Moderator) Moderate(text string) Verdict {
	lowered := strings.ToLower(text)
	for _, term := range m.blocklist {
		if strings.Contains(lowered, term) {
			return VerdictReject
		}
	}
	return VerdictAccept
}
