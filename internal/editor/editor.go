// Package editor implements the expression completion model behind the
// node expression fields: finding the token under the cursor, ranking
// catalog suggestions for it, and splicing a chosen completion back into the
// text. It has no dependency on any UI toolkit.
package editor

import (
	"strings"

	"github.com/rxtech-lab/argo-board/internal/catalog"
)

// isWordRune reports whether r belongs to an expression token. Matches
// [A-Za-z0-9_()].
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '(' || r == ')':
		return true
	default:
		return false
	}
}

// clampOffset clamps a cursor offset to [0, length].
func clampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}

	if offset > length {
		return length
	}

	return offset
}

// wordSpan returns the half-open rune span [start, end) of the token under
// the cursor, scanning left and right from offset while characters match
// isWordRune. An empty span has start == end.
func wordSpan(runes []rune, offset int) (int, int) {
	offset = clampOffset(offset, len(runes))

	start := offset
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}

	end := offset
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}

	return start, end
}

// WordAt returns the token under the cursor. Offsets are code-point indexes
// and are clamped to the text boundaries, so any offset is safe.
func WordAt(text string, offset int) string {
	runes := []rune(text)
	start, end := wordSpan(runes, offset)

	return string(runes[start:end])
}

// Suggest returns ranked completions for the token under the cursor. An
// empty token yields no suggestions (the suggestion panel stays hidden).
func Suggest(cat *catalog.Catalog, text string, offset int) []catalog.Entry {
	word := WordAt(text, offset)
	if word == "" {
		return nil
	}

	return cat.Lookup(word)
}

// ApplyCompletion replaces the token under the cursor with the catalog
// expansion for the chosen token (falling back to the literal token when the
// catalog does not know it), trims whitespace around the replaced span,
// appends a single trailing space, and returns the new text together with
// the cursor offset just past the insertion.
func ApplyCompletion(cat *catalog.Catalog, text string, offset int, token string) (string, int) {
	runes := []rune(text)
	start, end := wordSpan(runes, offset)

	expansion, ok := cat.Expansion(token)
	if !ok {
		expansion = token
	}

	before := strings.TrimRight(string(runes[:start]), " \t")
	after := strings.TrimLeft(string(runes[end:]), " \t")

	newText := before + expansion + " " + after
	newCursor := len([]rune(before)) + len([]rune(expansion)) + 1

	return newText, newCursor
}
