package tools

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/mail"
)

const (
	// transcriptTurns bounds how many recent conversation turns the
	// notification email embeds.
	transcriptTurns = 10

	// transcriptTurnMaxChars truncates each embedded turn.
	transcriptTurnMaxChars = 500
)

// sendResult is the JSON shape of every send_message outcome.
type sendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// sender implements the send_message tool: it relays a visitor's message to
// the owner's contact address, embedding a trimmed transcript for context.
type sender struct {
	content *content.Content
	mailer  mail.Mailer
	logger  log.Logger
}

func (s *sender) send(ctx context.Context, args Args, inv Invocation) string {
	message := strings.TrimSpace(args["message"])
	if message == "" {
		return mustJSON(sendResult{Success: false, Error: "Message cannot be empty."})
	}

	msg := mail.Message{
		Subject: fmt.Sprintf("New message from your portfolio site (%s)", s.content.Site.Name),
		HTML:    buildNotificationHTML(message, args["sender_name"], args["sender_email"], inv.Conversation),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("send_message delivery failed", "error", err)
		return mustJSON(sendResult{Success: false, Error: "Failed to send the message. Please try again later."})
	}

	s.logger.Info("visitor message relayed to owner")
	return mustJSON(sendResult{Success: true, Message: "Message sent successfully."})
}

// buildNotificationHTML renders the outbound email body. Every interpolated
// string is escaped to neutralize markup injection from visitor input.
func buildNotificationHTML(message, senderName, senderEmail string, conversation []Turn) string {
	var b strings.Builder

	b.WriteString("<h2>New message from a portfolio visitor</h2>")
	b.WriteString("<p>" + html.EscapeString(message) + "</p>")

	if senderName != "" || senderEmail != "" {
		b.WriteString("<p>")
		if senderName != "" {
			b.WriteString("From: <strong>" + html.EscapeString(senderName) + "</strong>")
		}
		if senderEmail != "" {
			if senderName != "" {
				b.WriteString(" &lt;" + html.EscapeString(senderEmail) + "&gt;")
			} else {
				b.WriteString("From: " + html.EscapeString(senderEmail))
			}
		}
		b.WriteString("</p>")
	}

	if transcript := buildTranscript(conversation); transcript != "" {
		b.WriteString("<hr><h3>Recent conversation</h3>")
		b.WriteString(transcript)
	}

	return b.String()
}

// buildTranscript renders the most recent turns, each truncated with an
// ellipsis marker.
func buildTranscript(conversation []Turn) string {
	if len(conversation) == 0 {
		return ""
	}

	turns := conversation
	if len(turns) > transcriptTurns {
		turns = turns[len(turns)-transcriptTurns:]
	}

	var b strings.Builder
	for _, turn := range turns {
		text := turn.Content
		if runes := []rune(text); len(runes) > transcriptTurnMaxChars {
			text = string(runes[:transcriptTurnMaxChars]) + "..."
		}
		b.WriteString(fmt.Sprintf("<p><strong>%s:</strong> %s</p>",
			html.EscapeString(turn.Role),
			html.EscapeString(text),
		))
	}
	return b.String()
}
