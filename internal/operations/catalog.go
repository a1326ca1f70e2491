// Package operations exposes the analysis functions as named, schema-checked
// operations that a hosting layer can list and call in-process.
package operations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	operr "github.com/baditaflorin/go_text_quality/internal/errors"
	"github.com/baditaflorin/go_text_quality/internal/ports"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xeipuuv/gojsonschema"
)

// Backend provides the functions behind each operation.
type Backend interface {
	Greet(name string) string
	CalculateReadability(text string) domain.ReadabilityScore
	CheckForWeaselWords(text string) domain.WeaselMatches
	GenerateReviewPrompt(text string) domain.ReviewPrompt
	SearchByName(name string) (domain.Record, bool)
}

// GreetOutput is the output of the greet operation.
type GreetOutput struct {
	Greeting string `json:"greeting"`
}

// ReadabilityOutput is the output of calculateReadability.
type ReadabilityOutput struct {
	Score float64 `json:"score"`
}

// WeaselOutput is the output of checkForWeaselWords. Words are sorted for
// stable rendering; callers should treat them as a set.
type WeaselOutput struct {
	Words []string `json:"words"`
}

// SearchOutput is the output of searchByName. Record is nil when not found.
type SearchOutput struct {
	Found  bool           `json:"found"`
	Record *domain.Record `json:"record,omitempty"`
}

// Invocation is the envelope returned by Call.
type Invocation struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	Output    interface{}   `json:"output"`
	Duration  time.Duration `json:"duration"`
}

// input holds the string arguments of an operation after validation.
type input struct {
	Name string
	Text string
}

type handler func(in input) interface{}

type operation struct {
	descriptor Descriptor
	schema     *gojsonschema.Schema
	handle     handler
}

// Catalog holds the registered operations.
type Catalog struct {
	operations map[string]*operation
	order      []string
	logger     ports.Logger
	metrics    *Metrics
}

// Option configures a Catalog.
type Option func(*catalogConfig)

type catalogConfig struct {
	registerer prometheus.Registerer
}

// WithRegisterer registers the catalog metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *catalogConfig) {
		cfg.registerer = reg
	}
}

// NewCatalog registers the five analysis operations against backend.
func NewCatalog(backend Backend, logger ports.Logger, opts ...Option) (*Catalog, error) {
	cfg := &catalogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.registerer == nil {
		cfg.registerer = prometheus.NewRegistry()
	}

	metrics, err := NewMetrics(cfg.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	handlers := map[string]handler{
		domain.OpGreet: func(in input) interface{} {
			return GreetOutput{Greeting: backend.Greet(in.Name)}
		},
		domain.OpCalculateReadability: func(in input) interface{} {
			return ReadabilityOutput{Score: float64(backend.CalculateReadability(in.Text))}
		},
		domain.OpCheckForWeaselWords: func(in input) interface{} {
			return WeaselOutput{Words: backend.CheckForWeaselWords(in.Text).Words()}
		},
		domain.OpGenerateReviewPrompt: func(in input) interface{} {
			return backend.GenerateReviewPrompt(in.Text)
		},
		domain.OpSearchByName: func(in input) interface{} {
			r, ok := backend.SearchByName(in.Name)
			if !ok {
				return SearchOutput{Found: false}
			}
			return SearchOutput{Found: true, Record: &r}
		},
	}

	c := &Catalog{
		operations: make(map[string]*operation, len(descriptors)),
		logger:     logger,
		metrics:    metrics,
	}
	for _, d := range descriptors {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(d.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", d.Name, err)
		}
		c.operations[d.Name] = &operation{
			descriptor: d,
			schema:     schema,
			handle:     handlers[d.Name],
		}
		c.order = append(c.order, d.Name)
	}

	logger.Info("Registered operations", "operations", c.order)
	return c, nil
}

// Descriptors returns the registered operations in registration order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.operations[name].descriptor)
	}
	return out
}

// Descriptor returns the descriptor registered under name.
func (c *Catalog) Descriptor(name string) (Descriptor, bool) {
	op, ok := c.operations[name]
	if !ok {
		return Descriptor{}, false
	}
	return op.descriptor, true
}

// Call validates args against the operation's input schema and runs it.
func (c *Catalog) Call(ctx context.Context, name string, args map[string]interface{}) (*Invocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, ok := c.operations[name]
	if !ok {
		c.logger.Warn("Unknown operation requested", "operation", name)
		c.metrics.Calls.WithLabelValues("unknown", "not_found").Inc()
		return nil, operr.NotFound(name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := op.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		c.metrics.Calls.WithLabelValues(name, "error").Inc()
		return nil, operr.Internal(name, fmt.Errorf("validation error: %w", err))
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		c.logger.Warn("Rejected operation input", "operation", name, "errors", details)
		c.metrics.Calls.WithLabelValues(name, "invalid").Inc()
		return nil, operr.InvalidInput(name, details)
	}

	// The schema loader marshals args to JSON first, so a []byte or a named
	// string type passes the "string" check. Only plain strings are accepted.
	in, problems := decodeInput(args)
	if len(problems) > 0 {
		c.logger.Warn("Rejected operation input", "operation", name, "errors", problems)
		c.metrics.Calls.WithLabelValues(name, "invalid").Inc()
		return nil, operr.InvalidInput(name, problems)
	}

	id := uuid.NewString()
	start := time.Now()
	output := op.handle(in)
	elapsed := time.Since(start)

	c.metrics.Calls.WithLabelValues(name, "ok").Inc()
	c.metrics.Duration.WithLabelValues(name).Observe(elapsed.Seconds())
	c.logger.Debug("Operation completed",
		"id", id,
		"operation", name,
		"duration", elapsed,
	)

	return &Invocation{
		ID:        id,
		Operation: name,
		Output:    output,
		Duration:  elapsed,
	}, nil
}

func decodeInput(args map[string]interface{}) (input, []string) {
	var in input
	var problems []string
	for key, value := range args {
		str, ok := value.(string)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: Invalid type. Expected: string, given: %T", key, value))
			continue
		}
		switch key {
		case "name":
			in.Name = str
		case "text":
			in.Text = str
		}
	}
	sort.Strings(problems)
	return in, problems
}
