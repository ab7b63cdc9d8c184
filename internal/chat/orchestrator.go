// Package chat drives the assistant's request pipeline: request validation,
// a bounded tool-calling loop against the model, and an ordered event stream
// back to the transport layer.
//
// The orchestrator is a single producer: it writes typed events into a
// channel and a transport adapter drains the channel onto the wire, keeping
// orchestration logic independent of the wire format. The channel is closed
// exactly once regardless of how the loop exits.
package chat

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/mustafameh/portfolio/internal/config"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/ratelimit"
	"github.com/mustafameh/portfolio/internal/stream"
	"github.com/mustafameh/portfolio/internal/tools"
)

// Orchestrator runs the ReAct loop for one request at a time. It holds no
// per-request state and is safe for concurrent use.
type Orchestrator struct {
	cfg         *config.Config
	client      Client
	registry    *tools.Registry
	sendLimiter *ratelimit.Store
	logger      log.Logger
}

// New creates an orchestrator. sendLimiter gates the send_message tool per
// client IP; when it denies, the tool handler is never invoked.
func New(cfg *config.Config, client Client, registry *tools.Registry, sendLimiter *ratelimit.Store, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		client:      client,
		registry:    registry,
		sendLimiter: sendLimiter,
		logger:      logger,
	}
}

// Available reports whether the model credential is present. The handler
// checks this before opening the response stream so credential absence can
// surface as a plain 503.
func (o *Orchestrator) Available() bool {
	return o.client.Available()
}

// Stream runs the loop for a validated request and returns the event
// channel. Events arrive in causal order: each tool's status precedes its
// result being folded back into the conversation, and text/done are always
// last. On any failure a single error event is emitted instead. The channel
// is closed when the turn ends; if ctx is canceled the producer stops
// without emitting further events.
func (o *Orchestrator) Stream(ctx context.Context, req *Request, ip string) <-chan stream.Event {
	ch := make(chan stream.Event)

	go func() {
		defer close(ch)
		if err := o.run(ctx, req, ip, ch); err != nil {
			o.logger.Warn("chat turn failed", "error", err)
			emit(ctx, ch, stream.Error(err.Error()))
		}
	}()

	return ch
}

// run executes one conversation turn. Returning an error yields exactly one
// error event; returning nil means text and done were already emitted.
func (o *Orchestrator) run(ctx context.Context, req *Request, ip string, ch chan<- stream.Event) error {
	session, err := o.client.StartChat(ctx, o.generateConfig(), toModelHistory(req.History))
	if err != nil {
		return err
	}

	resp, err := session.SendMessage(ctx, genai.Part{Text: req.Message})
	if err != nil {
		return err
	}

	// Resolve function calls until the model answers in text or the
	// iteration cap is reached. The cap is a hard stop: the model is never
	// called more than cap+1 times.
	for iterations := 0; iterations < o.cfg.Limits.MaxReactIterations; iterations++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		responses := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			// Announce the tool before executing it so the client can
			// show progress before latency is incurred.
			if !emit(ctx, ch, stream.Status(o.cfg.FriendlyLabel(call.Name))) {
				return nil
			}

			responses = append(responses, genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     call.Name,
					Response: map[string]any{"content": o.resolveCall(ctx, call, req, ip)},
				},
			})
		}

		resp, err = session.SendMessage(ctx, responses...)
		if err != nil {
			return err
		}
	}

	if !emit(ctx, ch, stream.Text(finalText(resp))) {
		return nil
	}
	emit(ctx, ch, stream.Done())
	return nil
}

// resolveCall executes one requested tool and returns the JSON result fed
// back to the model. Failures degrade to generic payloads; the conversation
// continues either way.
func (o *Orchestrator) resolveCall(ctx context.Context, call *genai.FunctionCall, req *Request, ip string) string {
	if call.Name == tools.SendMessageName && !o.sendLimiter.Allow(ip) {
		o.logger.Info("send_message throttled", "ip", ip)
		return tools.RateLimitedResult
	}

	var inv tools.Invocation
	if call.Name == tools.SendMessageName {
		inv.Conversation = conversationFor(req)
	}

	result, ok := o.registry.Execute(ctx, call.Name, stringArgs(call.Args), inv)
	if !ok {
		o.logger.Warn("model requested unknown tool", "tool", call.Name)
		return tools.UnknownToolResult
	}
	return result
}

// generateConfig builds the model session parameters from the config
// snapshot: system prompt, generation knobs, and tool declarations.
func (o *Orchestrator) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: o.cfg.SystemPrompt}},
		},
		Temperature:     genai.Ptr(o.cfg.Model.Temperature),
		TopP:            genai.Ptr(o.cfg.Model.TopP),
		MaxOutputTokens: o.cfg.Model.MaxOutputTokens,
		Tools: []*genai.Tool{
			{FunctionDeclarations: o.cfg.FunctionDeclarations()},
		},
	}
}

// toModelHistory translates sanitized client history into the model's role
// vocabulary (assistant becomes "model").
func toModelHistory(history []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return out
}

// conversationFor builds the transcript context for send_message: the
// sanitized history plus the message that triggered the send.
func conversationFor(req *Request) []tools.Turn {
	turns := make([]tools.Turn, 0, len(req.History)+1)
	for _, m := range req.History {
		turns = append(turns, tools.Turn{Role: m.Role, Content: m.Content})
	}
	return append(turns, tools.Turn{Role: RoleUser, Content: req.Message})
}

// functionCalls extracts the function-call parts of the first candidate.
func functionCalls(resp *genai.GenerateContentResponse) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, part := range candidateParts(resp) {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

// finalText concatenates the text parts of the last response in order. Text
// alongside function calls is discarded on non-terminal iterations; only the
// terminal response's text is the answer.
func finalText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, part := range candidateParts(resp) {
		b.WriteString(part.Text)
	}
	return b.String()
}

func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

// stringArgs narrows the model's argument map to the string-typed shape the
// registry accepts. Non-string values are dropped rather than coerced.
func stringArgs(args map[string]any) tools.Args {
	out := make(tools.Args, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// emit delivers one event unless the consumer is gone.
func emit(ctx context.Context, ch chan<- stream.Event, ev stream.Event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
