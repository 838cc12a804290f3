package editor

import "github.com/rxtech-lab/argo-board/internal/catalog"

// Key is a keyboard input relevant to the completion session. The hosting
// editor widget translates its native key events into these values.
type Key string

const (
	KeyTab   Key = "tab"
	KeyEnter Key = "enter"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
)

// Session tracks one editable expression field: its raw text, the cursor
// offset, and the currently visible suggestions. All offsets are code-point
// indexes.
type Session struct {
	catalog     *catalog.Catalog
	text        string
	cursor      int
	suggestions []catalog.Entry
	visible     bool
}

// NewSession creates a session over the given catalog with empty text.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		catalog:     cat,
		text:        "",
		cursor:      0,
		suggestions: nil,
		visible:     false,
	}
}

// Text returns the current field text.
func (s *Session) Text() string {
	return s.text
}

// Cursor returns the current cursor offset.
func (s *Session) Cursor() int {
	return s.cursor
}

// Suggestions returns the currently visible suggestions, or nil when the
// panel is hidden.
func (s *Session) Suggestions() []catalog.Entry {
	if !s.visible {
		return nil
	}

	return s.suggestions
}

// SetText replaces the field text and cursor (clamped to the text bounds)
// and recomputes suggestions. Called by the host on every text change.
func (s *Session) SetText(text string, cursor int) {
	s.text = text
	s.cursor = clampOffset(cursor, len([]rune(text)))
	s.refresh()
}

// Click repositions the cursor (pointer click or programmatic move) and
// recomputes suggestions before the next query.
func (s *Session) Click(cursor int) {
	s.cursor = clampOffset(cursor, len([]rune(s.text)))
	s.refresh()
}

// HandleKey processes a keystroke. The return value reports whether the host
// must suppress the field's default behavior for that keystroke: Tab and
// Enter commit the first-ranked suggestion while the panel is visible, and
// must not insert a tab stop or newline.
func (s *Session) HandleKey(key Key) bool {
	switch key {
	case KeyTab, KeyEnter:
		if !s.visible || len(s.suggestions) == 0 {
			return false
		}

		s.commit(s.suggestions[0])

		return true
	case KeyLeft:
		s.Click(s.cursor - 1)

		return false
	case KeyRight:
		s.Click(s.cursor + 1)

		return false
	case KeyUp, KeyDown:
		// Single-line fields: the cursor does not move, but the offset is
		// still recomputed before the next suggestion query.
		s.refresh()

		return false
	default:
		return false
	}
}

// Blur hides the suggestion panel without altering the text.
func (s *Session) Blur() {
	s.visible = false
	s.suggestions = nil
}

// commit applies the chosen entry at the current cursor.
func (s *Session) commit(entry catalog.Entry) {
	s.text, s.cursor = ApplyCompletion(s.catalog, s.text, s.cursor, entry.Token)
	s.refresh()
}

// refresh recomputes the suggestion list for the word under the cursor.
func (s *Session) refresh() {
	s.suggestions = Suggest(s.catalog, s.text, s.cursor)
	s.visible = len(s.suggestions) > 0
}
