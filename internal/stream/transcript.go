package stream

// Message is one entry in the visible conversation transcript.
type Message struct {
	Role        string
	Content     string
	StatusSteps []string
}

// Transcript folds a stream of events into conversation state, mirroring
// what the browser client renders: status labels accumulate against the
// in-progress assistant turn, text events append to the trailing assistant
// message, errors become their own assistant message.
type Transcript struct {
	Messages []Message

	pending []string
	done    bool
}

// Done reports whether the current turn has completed.
func (t *Transcript) Done() bool { return t.done }

// PendingStatuses returns the status labels of the in-progress turn.
func (t *Transcript) PendingStatuses() []string { return t.pending }

// Apply folds one event into the transcript.
func (t *Transcript) Apply(ev Event) {
	switch ev.Type {
	case TypeStatus:
		if ev.Text != "" {
			t.pending = append(t.pending, ev.Text)
		}

	case TypeText:
		if ev.Content == "" {
			return
		}
		steps := append([]string(nil), t.pending...)
		if n := len(t.Messages); n > 0 && t.Messages[n-1].Role == "assistant" {
			last := &t.Messages[n-1]
			last.Content += ev.Content
			last.StatusSteps = steps
			return
		}
		t.Messages = append(t.Messages, Message{
			Role:        "assistant",
			Content:     ev.Content,
			StatusSteps: steps,
		})

	case TypeError:
		if ev.Content == "" {
			return
		}
		t.Messages = append(t.Messages, Message{
			Role:    "assistant",
			Content: "Error: " + ev.Content,
		})

	case TypeDone:
		t.done = true
		t.pending = nil
	}
}
