package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/log"
)

// Generator turns goals into breakdowns. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	logger    *log.Logger
	newID     func() string
	customize func([]catalog.Archetype, string, string, int) ([]TaskDraft, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for classification and fallback events.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRequestIDs overrides how per-call request identifiers are minted.
func WithRequestIDs(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:    log.DefaultLogger(),
		newID:     uuid.NewString,
		customize: Customize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a breakdown for req. It never fails: any error or panic
// raised by the pipeline is replaced by the fallback plan.
func (g *Generator) Generate(ctx context.Context, req Request) *Breakdown {
	requestID := g.newID()
	logger := g.logger.With("request_id", requestID)

	b, err := g.run(ctx, logger, req)
	if err != nil {
		logger.WithError(err).WarnContext(ctx, "breakdown failed, using fallback plan")
		b = Fallback(req.Goal, err)
	}

	b.RequestID = requestID
	b.Fingerprint = b.ComputeFingerprint()
	return b
}

func (g *Generator) run(ctx context.Context, logger *log.Logger, req Request) (b *Breakdown, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered panic in breakdown pipeline", "panic", fmt.Sprint(r))
			b, err = nil, fmt.Errorf("breakdown panicked: %v", r)
		}
	}()

	goalType := Classify(req.Goal, req.Context)
	logger.DebugContext(ctx, "classified goal", "goal_type", goalType.String())

	drafts, err := g.customize(catalog.ArchetypesFor(goalType), req.Goal, req.Context, req.TimelineWeeks)
	if err != nil {
		return nil, fmt.Errorf("customize tasks: %w", err)
	}
	drafts = InferDependencies(drafts)

	b = &Breakdown{
		Reasoning:             ComposeReasoning(req.Goal, goalType, len(drafts), req.TimelineWeeks),
		EstimatedDurationDays: EstimateDays(drafts),
		Tasks:                 drafts,
		GoalType:              goalType,
	}

	logger.InfoContext(ctx, "generated breakdown",
		"goal_type", goalType.String(),
		"tasks", len(drafts),
		"estimated_days", b.EstimatedDurationDays,
	)
	return b, nil
}

// Generate builds a breakdown with a default Generator.
func Generate(ctx context.Context, req Request) *Breakdown {
	return NewGenerator().Generate(ctx, req)
}
