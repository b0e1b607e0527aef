// Package messagelog provides the narration side channel of the game:
// a sink interface the action core emits (text, style) pairs into, an
// in-memory log that stacks repeated messages, and a repository for
// persisting narration history per session.
package messagelog

import "fmt"

//go:generate mockgen -destination=mock/mock_sink.go -package=messagelogmock github.com/KirkDiggler/roguelike-api/internal/messagelog Sink

// Style tags a narration message for presentation. The core only
// produces styles; how they render is the presentation layer's concern.
type Style string

// Narration styles
const (
	StyleDefault         Style = "default"
	StyleWelcome         Style = "welcome"
	StylePlayerAttack    Style = "player_atk"
	StyleEnemyAttack     Style = "enemy_atk"
	StylePlayerDie       Style = "player_die"
	StyleEnemyDie        Style = "enemy_die"
	StyleItemUsed        Style = "item_used"
	StyleHealthRecovered Style = "health_recovered"
	StyleDescend         Style = "descend"
	StyleInvalid         Style = "invalid"
	StyleImpossible      Style = "impossible"
)

// Sink accepts narration events. Emitting never fails and never drives
// control flow in the caller.
type Sink interface {
	Emit(text string, style Style)
}

// Message is a single narration entry. Count is how many times the
// same text was emitted consecutively.
type Message struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
	Count int    `json:"count"`
}

// FullText returns the display text including the stack count
func (m *Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// Log is an in-memory message log implementing Sink. Consecutive
// identical messages stack instead of appending.
type Log struct {
	messages []*Message
}

// NewLog creates an empty message log
func NewLog() *Log {
	return &Log{}
}

// Emit appends a narration message, stacking it onto the previous
// entry when text and style match
func (l *Log) Emit(text string, style Style) {
	if n := len(l.messages); n > 0 {
		last := l.messages[n-1]
		if last.Text == text && last.Style == style {
			last.Count++
			return
		}
	}
	l.messages = append(l.messages, &Message{Text: text, Style: style, Count: 1})
}

// Messages returns all entries in emission order
func (l *Log) Messages() []*Message {
	return l.messages
}

// Len returns the number of entries in the log
func (l *Log) Len() int {
	return len(l.messages)
}

// Since returns the entries from the given index onward. Used by the
// turn boundary to collect what a single resolution narrated.
func (l *Log) Since(index int) []*Message {
	if index < 0 || index > len(l.messages) {
		return nil
	}
	return l.messages[index:]
}
