// Package conversation defines chat session models.
package conversation

import "time"

// Role identifies the author of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Turn is one message in a chat session.
type Turn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// Transcript holds the ordered turns of one session plus the most recently
// delivered news briefing, which follow-up questions are answered from.
// It is owned by a single UI session and lives in memory only.
type Transcript struct {
	turns        []Turn
	lastBriefing string
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return new(Transcript{})
}

// Append adds a turn to the transcript.
func (t *Transcript) Append(role Role, text string, at time.Time) {
	t.turns = append(t.turns, Turn{Role: role, Text: text, CreatedAt: at})
}

// Turns returns a copy of all turns in order.
func (t *Transcript) Turns() []Turn {
	return append([]Turn(nil), t.turns...)
}

// Recent returns up to n of the most recent turns in order.
func (t *Transcript) Recent(n int) []Turn {
	if n <= 0 || len(t.turns) == 0 {
		return nil
	}
	if n > len(t.turns) {
		n = len(t.turns)
	}
	return append([]Turn(nil), t.turns[len(t.turns)-n:]...)
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// SetBriefing records the briefing delivered by the most recent news request.
func (t *Transcript) SetBriefing(text string) {
	t.lastBriefing = text
}

// ClearBriefing forgets the last briefing so stale context cannot leak into
// follow-up answers.
func (t *Transcript) ClearBriefing() {
	t.lastBriefing = ""
}

// Briefing returns the last delivered briefing and whether one exists.
func (t *Transcript) Briefing() (string, bool) {
	return t.lastBriefing, t.lastBriefing != ""
}

// Clear resets the transcript to its initial state.
func (t *Transcript) Clear() {
	t.turns = nil
	t.lastBriefing = ""
}
