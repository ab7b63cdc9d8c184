package stream

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncoder_OneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	events := []Event{
		Status("Looking up profile..."),
		Text("Hello"),
		Done(),
	}
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode(%v) error = %v", ev, err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("encoded %d lines, want 3: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if strings.Contains(line, "\n") {
			t.Errorf("line contains embedded newline: %q", line)
		}
	}

	want := `{"type":"status","text":"Looking up profile..."}`
	if lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if lines[2] != `{"type":"done"}` {
		t.Errorf("done line = %q, want %q", lines[2], `{"type":"done"}`)
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	sent := []Event{
		Status("Checking work experience..."),
		Status("Sending your message..."),
		Text("All done."),
		Done(),
	}
	for _, ev := range sent {
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
	}

	var dec Decoder
	got := dec.Feed(buf.Bytes())

	if !reflect.DeepEqual(got, sent) {
		t.Errorf("decoded events = %v, want %v", got, sent)
	}
}

func TestDecoder_TwoEventsInOneChunk(t *testing.T) {
	var dec Decoder
	got := dec.Feed([]byte(`{"type":"text","content":"a"}` + "\n" + `{"type":"done"}` + "\n"))

	want := []Event{Text("a"), Done()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Feed() = %v, want %v", got, want)
	}
}

func TestDecoder_EventSplitAcrossChunks(t *testing.T) {
	var dec Decoder

	if got := dec.Feed([]byte(`{"type":"text","con`)); len(got) != 0 {
		t.Fatalf("Feed(partial) = %v, want no events", got)
	}
	got := dec.Feed([]byte(`tent":"hello"}` + "\n"))

	want := []Event{Text("hello")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Feed(rest) = %v, want %v", got, want)
	}
}

func TestDecoder_SkipsMalformedLines(t *testing.T) {
	var dec Decoder
	input := "not json\n" + `{"type":"text","content":"ok"}` + "\n" + "\n" + "{broken\n"
	got := dec.Feed([]byte(input))

	want := []Event{Text("ok")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Feed() = %v, want %v", got, want)
	}
}

func TestTranscript_StatusesAccumulateUntilText(t *testing.T) {
	var tr Transcript
	tr.Apply(Status("Looking up profile..."))
	tr.Apply(Status("Browsing projects..."))

	if got := tr.PendingStatuses(); len(got) != 2 {
		t.Fatalf("PendingStatuses() = %v, want 2 labels", got)
	}

	tr.Apply(Text("Here is what I found."))

	if len(tr.Messages) != 1 {
		t.Fatalf("Messages = %v, want one assistant message", tr.Messages)
	}
	msg := tr.Messages[0]
	if msg.Role != "assistant" {
		t.Errorf("Role = %q, want %q", msg.Role, "assistant")
	}
	if !reflect.DeepEqual(msg.StatusSteps, []string{"Looking up profile...", "Browsing projects..."}) {
		t.Errorf("StatusSteps = %v, want both labels in order", msg.StatusSteps)
	}
}

func TestTranscript_TextAppendsToTrailingAssistantMessage(t *testing.T) {
	var tr Transcript
	tr.Apply(Text("Hello"))
	tr.Apply(Text(", world"))

	if len(tr.Messages) != 1 {
		t.Fatalf("Messages = %d entries, want 1", len(tr.Messages))
	}
	if got := tr.Messages[0].Content; got != "Hello, world" {
		t.Errorf("Content = %q, want %q", got, "Hello, world")
	}
}

func TestTranscript_ErrorBecomesOwnMessage(t *testing.T) {
	var tr Transcript
	tr.Apply(Text("partial"))
	tr.Apply(Error("Something went wrong."))

	if len(tr.Messages) != 2 {
		t.Fatalf("Messages = %d entries, want 2", len(tr.Messages))
	}
	if got := tr.Messages[1].Content; got != "Error: Something went wrong." {
		t.Errorf("error message = %q, want %q", got, "Error: Something went wrong.")
	}
}

func TestTranscript_DoneClearsPending(t *testing.T) {
	var tr Transcript
	tr.Apply(Status("Thinking..."))
	tr.Apply(Done())

	if !tr.Done() {
		t.Error("Done() = false after done event, want true")
	}
	if got := tr.PendingStatuses(); len(got) != 0 {
		t.Errorf("PendingStatuses() = %v, want empty after done", got)
	}
}
