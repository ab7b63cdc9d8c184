// Package stream defines the chat event wire format: one JSON object per
// line. The encoder serializes orchestrator events onto an HTTP response;
// the decoder is the client-side counterpart that incrementally parses the
// byte stream back into typed events, and Transcript folds those events into
// visible message state.
package stream

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// Event types.
const (
	TypeStatus = "status"
	TypeText   = "text"
	TypeDone   = "done"
	TypeError  = "error"
)

// Event is one streamed chat event. Exactly one stream is produced per
// request and events are consumed in the order emitted.
type Event struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// Status announces a tool about to run, carrying its friendly label.
func Status(label string) Event { return Event{Type: TypeStatus, Text: label} }

// Text carries a chunk of the assistant's answer. Content is additive.
func Text(content string) Event { return Event{Type: TypeText, Content: content} }

// Done signals that no further events follow for this turn.
func Done() Event { return Event{Type: TypeDone} }

// Error carries a human-readable failure message.
func Error(content string) Event { return Event{Type: TypeError, Content: content} }

// Encoder writes events as newline-delimited JSON, flushing after each event
// when the underlying writer supports it. No buffering beyond one event.
type Encoder struct {
	w       io.Writer
	flusher http.Flusher
}

// NewEncoder creates an encoder over w. If w implements http.Flusher each
// event is flushed to the client immediately.
func NewEncoder(w io.Writer) *Encoder {
	e := &Encoder{w: w}
	if f, ok := w.(http.Flusher); ok {
		e.flusher = f
	}
	return e
}

// Encode writes one event followed by a newline.
func (e *Encoder) Encode(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(append(data, '\n')); err != nil {
		return err
	}
	if e.flusher != nil {
		e.flusher.Flush()
	}
	return nil
}

// Decoder incrementally parses a byte stream of newline-delimited events.
// Malformed lines are silently skipped; a trailing incomplete line is
// retained until the next chunk arrives.
type Decoder struct {
	buf []byte
}

// Feed appends a chunk and returns every complete event it unlocked.
func (d *Decoder) Feed(p []byte) []Event {
	d.buf = append(d.buf, p...)

	var events []Event
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return events
		}
		line := bytes.TrimSpace(d.buf[:i])
		d.buf = d.buf[i+1:]
		if len(line) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
}
