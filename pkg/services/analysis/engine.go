package analysis

import (
	"context"
	"time"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/de-tools/entity-atlas/pkg/services/auditlog"
	"github.com/de-tools/entity-atlas/pkg/services/hierarchy"
	"github.com/de-tools/entity-atlas/pkg/services/reconciliation"
	"github.com/de-tools/entity-atlas/pkg/services/risk"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Input is one snapshot of parsed records. It is read, never modified.
type Input struct {
	Entities     []domain.Entity
	Transactions []domain.TransactionRow
}

type Runner interface {
	Run(ctx context.Context, in Input) domain.Analysis
}

// Engine runs the validator and matcher, then the scorer, then the log builder.
type Engine struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Engine)

// WithClock replaces the wall clock used to stamp a run.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces the run id generator.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Run(ctx context.Context, in Input) domain.Analysis {
	at := e.now()

	issues := hierarchy.Validate(in.Entities)
	pairs := reconciliation.Reconcile(in.Transactions)
	risks := risk.Score(in.Entities, in.Transactions, pairs)
	log := auditlog.Build(at, in.Entities, pairs, issues)

	a := domain.Analysis{
		RunID:        e.newID(),
		GeneratedAt:  at,
		Entities:     in.Entities,
		Transactions: in.Transactions,
		Issues:       issues,
		Pairs:        pairs,
		Risks:        risks,
		Log:          log,
	}

	summary := a.Summary()
	zerolog.Ctx(ctx).Info().
		Str("run_id", a.RunID).
		Int("entities", summary.Entities).
		Int("transactions", summary.Transactions).
		Int("issues", summary.Issues).
		Int("pairs", summary.Pairs).
		Int("reconciled", summary.ReconciledPairs).
		Msg("analysis completed")

	return a
}
