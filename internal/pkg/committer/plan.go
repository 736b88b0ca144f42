// Package committer runs a multi-store write as an ordered list of steps with
// compensating actions.
//
// The stores behind a checkout (catalog, prescriptions, ledger) are separate
// files with no shared transaction. A Plan collects the writes in the order
// they must happen; each step may carry an Undo. When a step fails, the
// Committer undoes every step that already completed, newest first, and
// reports the original failure together with any rollback failures.
//
//	plan := committer.NewPlan()
//	plan.Add(committer.Step{
//	    Name: "decrement " + code,
//	    Do:   func(ctx context.Context) error { return catalog.AdjustQuantity(ctx, code, -qty) },
//	    Undo: func(ctx context.Context) error { return catalog.AdjustQuantity(ctx, code, qty) },
//	})
//	plan.Add(committer.Step{Name: "append sales", Do: appendSales})
//	return c.Apply(ctx, plan)
//
// A step without Undo should be the last durable write of the plan: once it
// succeeds nothing after it can fail in a way that needs compensating it.
package committer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Step is one write of a plan.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Plan is an ordered list of steps.
type Plan struct {
	steps []Step
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{
		steps: make([]Step, 0),
	}
}

// Add appends a step. Steps without a Do func are ignored.
func (p *Plan) Add(step Step) {
	if step.Do != nil {
		p.steps = append(p.steps, step)
	}
}

// Steps returns the collected steps.
func (p *Plan) Steps() []Step {
	return p.steps
}

// IsEmpty returns true if the plan has no steps.
func (p *Plan) IsEmpty() bool {
	return len(p.steps) == 0
}

// Count returns the number of steps in the plan.
func (p *Plan) Count() int {
	return len(p.steps)
}

// CommitError reports the step that failed and whatever went wrong while
// compensating the steps before it.
type CommitError struct {
	Step        string
	Err         error
	RollbackErr error
}

func (e *CommitError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("step %q failed: %v (rollback incomplete: %v)", e.Step, e.Err, e.RollbackErr)
	}
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// RolledBack reports whether every completed step was compensated.
func (e *CommitError) RolledBack() bool {
	return e.RollbackErr == nil
}

// Committer executes plans.
type Committer struct {
	logger *zap.Logger
}

// NewCommitter creates a new Committer.
func NewCommitter(logger *zap.Logger) *Committer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Committer{logger: logger}
}

// Apply runs the plan's steps in order. On the first failure the completed
// steps are undone in reverse order and a *CommitError is returned.
func (c *Committer) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}

	done := make([]Step, 0, plan.Count())
	for _, step := range plan.Steps() {
		err := ctx.Err()
		if err == nil {
			err = step.Do(ctx)
		}
		if err != nil {
			c.logger.Warn("commit step failed, rolling back",
				zap.String("step", step.Name),
				zap.Int("completed", len(done)),
				zap.Error(err),
			)
			return &CommitError{
				Step:        step.Name,
				Err:         err,
				RollbackErr: c.rollback(context.WithoutCancel(ctx), done),
			}
		}
		done = append(done, step)
	}

	return nil
}

// rollback compensates steps newest first.
func (c *Committer) rollback(ctx context.Context, done []Step) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Undo == nil {
			continue
		}
		if err := step.Undo(ctx); err != nil {
			c.logger.Error("rollback step failed", zap.String("step", step.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("undo %q: %w", step.Name, err))
		}
	}
	return errors.Join(errs...)
}
