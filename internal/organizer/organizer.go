// Package organizer turns free-form brain dump text into task drafts through
// an external generative-language service.
package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/focusflow/internal/error_values"
)

const SystemInstruction = "You are an ADHD productivity assistant. Your goal is to take messy 'brain dump' text " +
	"and extract clear, actionable tasks. Keep it simple and minimalist."

type Draft struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type Result struct {
	Tasks   []Draft `json:"tasks"`
	Summary string  `json:"summary"`
}

// Generator sends one prompt and returns the raw JSON text of the reply.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type Organizer struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Organizer)

// WithTimeout bounds each call. Zero, the default, waits as long as ctx allows.
func WithTimeout(d time.Duration) Option {
	return func(o *Organizer) {
		o.timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Organizer) {
		o.logger = logger
	}
}

func New(gen Generator, opts ...Option) *Organizer {
	o := &Organizer{
		gen:    gen,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func BuildPrompt(raw string) string {
	return "Organize the following raw thoughts into potential tasks and categories.\nInput: " + raw
}

// Organize makes exactly one request. Every failure is returned wrapped in
// ErrOrganizeFailed; nothing is retried.
func (o *Organizer) Organize(ctx context.Context, raw string) (*Result, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	body, err := o.gen.GenerateJSON(ctx, BuildPrompt(raw))
	if err != nil {
		o.logger.Error("organizer request error", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrOrganizeFailed, err)
	}
	result, err := ParseResult(body)
	if err != nil {
		o.logger.Error("organizer response error", slog.String("error", err.Error()), slog.Int("body_len", len(body)))
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrOrganizeFailed, err)
	}
	o.logger.Info("brain dump organized", slog.Int("drafts", len(result.Tasks)))
	return result, nil
}

type rawDraft struct {
	Text     *string `json:"text"`
	Category *string `json:"category"`
}

type rawResult struct {
	Tasks   *[]rawDraft `json:"tasks"`
	Summary *string     `json:"summary"`
}

// ParseResult accepts only {tasks: [{text, category}], summary} with every
// field present.
func ParseResult(body string) (*Result, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: empty body", errorvalues.ErrMalformedResponse)
	}
	var raw rawResult
	if err := sonic.ConfigStd.UnmarshalFromString(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrMalformedResponse, err)
	}
	if raw.Tasks == nil || raw.Summary == nil {
		return nil, fmt.Errorf("%w: tasks and summary are required", errorvalues.ErrMalformedResponse)
	}
	result := &Result{
		Tasks:   make([]Draft, 0, len(*raw.Tasks)),
		Summary: *raw.Summary,
	}
	for i, d := range *raw.Tasks {
		if d.Text == nil || d.Category == nil {
			return nil, fmt.Errorf("%w: task %d lacks text or category", errorvalues.ErrMalformedResponse, i)
		}
		result.Tasks = append(result.Tasks, Draft{Text: *d.Text, Category: *d.Category})
	}
	return result, nil
}
