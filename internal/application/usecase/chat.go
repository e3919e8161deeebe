package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yuto-t/kawaraban/internal/domain/conversation"
	"github.com/yuto-t/kawaraban/internal/domain/news"
)

// recentChatTurns bounds how much transcript context a general chat prompt
// carries.
const recentChatTurns = 12

// TextGenerator abstracts plain prompt -> text completion.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService routes one user message to the right behavior: assembling a
// fresh news briefing, answering a follow-up from the last briefing, or
// plain conversation. It owns the session transcript.
type ChatService struct {
	Generator  TextGenerator
	Briefings  *BriefingService
	Feeds      []string
	Transcript *conversation.Transcript
	Now        func() time.Time
	Location   func() *time.Location
}

// NewChatService constructs a ChatService.
func NewChatService(generator TextGenerator, briefings *BriefingService, feeds []string) *ChatService {
	return new(ChatService{
		Generator:  generator,
		Briefings:  briefings,
		Feeds:      append([]string(nil), feeds...),
		Transcript: conversation.NewTranscript(),
	})
}

// Respond processes one user message and returns the agent's reply.
//
// On generator failure the user's turn stays in the transcript so the
// message can be retried; the error is surfaced to the caller.
func (s *ChatService) Respond(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("message is empty")
	}
	if s.Generator == nil {
		return "", errors.New("ai client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.appendUserTurn(text)

	var reply string
	var err error
	switch {
	case IsNewsRequest(text):
		reply, err = s.respondWithBriefing(ctx, text)
	default:
		if briefing, ok := s.Transcript.Briefing(); ok {
			reply, err = s.Generator.Generate(ctx, buildFollowUpPrompt(text, briefing))
		} else {
			reply, err = s.Generator.Generate(ctx, buildChatPrompt(text, s.Transcript.Recent(recentChatTurns)))
		}
	}
	if err != nil {
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("model returned empty reply")
	}
	s.Transcript.Append(conversation.RoleAgent, reply, s.now())
	return reply, nil
}

// appendUserTurn records the user's message. Retrying a message whose
// previous attempt failed must not duplicate the turn, so an identical
// unanswered user turn at the tail is left as is.
func (s *ChatService) appendUserTurn(text string) {
	turns := s.Transcript.Turns()
	if n := len(turns); n > 0 {
		last := turns[n-1]
		if last.Role == conversation.RoleUser && last.Text == text {
			return
		}
	}
	s.Transcript.Append(conversation.RoleUser, text, s.now())
}

func (s *ChatService) respondWithBriefing(ctx context.Context, text string) (string, error) {
	r := news.ParseRequest(text, s.now(), s.location())
	briefing := s.Briefings.Assemble(ctx, s.Feeds, r)

	if briefing.Empty() {
		// An empty result clears the remembered briefing so follow-ups
		// cannot be answered from stale context.
		s.Transcript.ClearBriefing()
		return briefing.Text, nil
	}

	reply, err := s.Generator.Generate(ctx, buildBriefingPrompt(briefing.Text))
	if err != nil {
		return "", err
	}
	s.Transcript.SetBriefing(briefing.Text)
	return reply, nil
}

func (s *ChatService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ChatService) location() *time.Location {
	if s != nil && s.Location != nil {
		if loc := s.Location(); loc != nil {
			return loc
		}
	}
	return time.Local
}

var newsRequestMarkers = []string{
	"news",
	"headline",
	"briefing",
	"what happened",
	"latest",
}

// IsNewsRequest reports whether the message asks for a fresh briefing
// rather than a follow-up or general chat.
func IsNewsRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range newsRequestMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func buildBriefingPrompt(briefing string) string {
	return strings.Join([]string{
		"You are a news and chat assistant.",
		"Present the following news briefing to the user.",
		"Keep every item, identify each source clearly, and format with Markdown.",
		"Do not invent items that are not in the briefing.",
		"Briefing:",
		briefing,
	}, "\n")
}

func buildFollowUpPrompt(question, briefing string) string {
	return strings.Join([]string{
		"You are a news and chat assistant.",
		"Answer the user's question using ONLY the news briefing below.",
		"If the briefing does not contain the requested detail, say you don't have it from the last briefing.",
		"Do not invent information.",
		"Briefing:",
		briefing,
		"Question:",
		question,
	}, "\n")
}

func buildChatPrompt(text string, recent []conversation.Turn) string {
	lines := []string{
		"You are a friendly news and chat assistant.",
		"Respond conversationally to the user's message.",
	}
	if len(recent) > 1 {
		lines = append(lines, "Recent conversation:")
		// The last turn is the message itself; include only what precedes it.
		for _, turn := range recent[:len(recent)-1] {
			lines = append(lines, string(turn.Role)+": "+turn.Text)
		}
	}
	lines = append(lines, "Message:", text)
	return strings.Join(lines, "\n")
}
