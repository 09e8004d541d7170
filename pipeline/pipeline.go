// Package pipeline runs the ordered pre-persistence transformations on
// a message. It owns stage ordering, the freshness gate, and the
// concurrent validation group; the stages themselves live in their own
// packages and carry no ordering knowledge.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-pipeline/domain"
	"chat-pipeline/settings"
)

// freshnessTolerance is how far a creation timestamp may lie from the
// processing time for a message to still count as fresh.
const freshnessTolerance = 60 * time.Second

// Run is the per-message context handed to every stage and check. The
// snapshot is dereferenced once when the run starts; a settings change
// mid-run is never observed.
type Run struct {
	Room   domain.Room
	Actor  domain.ActingUser
	Config *settings.Snapshot
	Log    *slog.Logger
}

// Stage is one transform applied to a message. Stages never fail: every
// failure mode inside a stage is a silent skip and the message moves on
// unchanged (or partially enriched).
type Stage interface {
	Name() string
	Apply(ctx context.Context, msg domain.Message, run Run) domain.Message
}

// Check is one validation from the concurrent group. A non-nil error
// must be a *errors.VetoError and aborts persistence.
type Check interface {
	Name() string
	Validate(ctx context.Context, msg domain.Message, run Run) error
}

// Pipeline applies its stages in the fixed order they were given, then
// runs the validation group when the freshness gate allows it.
type Pipeline struct {
	log    *slog.Logger
	store  *settings.Store
	stages []Stage
	checks []Check
	now    func() time.Time
}

func New(log *slog.Logger, store *settings.Store, stages []Stage, checks []Check) *Pipeline {
	return &Pipeline{
		log:    log,
		store:  store,
		stages: stages,
		checks: checks,
		now:    time.Now,
	}
}

// Process transforms and validates one message. On a veto the
// transformed message is still returned alongside the error: stage
// mutations are retained, and whether to surface them is the caller's
// decision. Persistence must only happen on a nil error.
func (p *Pipeline) Process(ctx context.Context, msg domain.Message, room domain.Room, actor domain.ActingUser) (domain.Message, error) {
	run := Run{
		Room:   room,
		Actor:  actor,
		Config: p.store.Current(),
		Log:    p.log,
	}

	for _, stage := range p.stages {
		msg = stage.Apply(ctx, msg, run)
	}

	if p.shouldValidate(msg, run.Config) {
		if err := p.validate(ctx, msg, run); err != nil {
			return msg, err
		}
	}
	return msg, nil
}

// shouldValidate implements the freshness gate: edited or stale
// messages skip validation entirely unless the snapshot opts every
// message in via ValidateEdited.
func (p *Pipeline) shouldValidate(msg domain.Message, cfg *settings.Snapshot) bool {
	if cfg.ValidateEdited {
		return true
	}
	if msg.IsEdited() {
		return false
	}
	if msg.CreatedAt.IsZero() {
		return true
	}
	age := p.now().Sub(msg.CreatedAt)
	if age < 0 {
		age = -age
	}
	return age <= freshnessTolerance
}

// validate fans the checks out, one goroutine each, and joins on all of
// them. Checks have no side effects, so a veto does not cancel the
// others; the first veto observed is the one reported.
func (p *Pipeline) validate(ctx context.Context, msg domain.Message, run Run) error {
	vetoes := make(chan error, len(p.checks))
	var wg sync.WaitGroup
	for _, check := range p.checks {
		wg.Add(1)
		go func(c Check) {
			defer wg.Done()
			if err := c.Validate(ctx, msg, run); err != nil {
				p.log.Debug("Validation check vetoed message",
					"check", c.Name(), "message", msg.ID, "error", err)
				vetoes <- err
			}
		}(check)
	}
	wg.Wait()
	close(vetoes)

	return <-vetoes // nil when the channel is empty and closed
}
