package flagkit

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

// Task is one unit of work in a Group. It returns the bits it completed.
type Task func(ctx context.Context) (Flags, error)

// DefaultOperationDelays are the short/medium/long waits used by RunOperations.
var DefaultOperationDelays = [3]time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second}

// ErrGroupDone is reported for tasks handed to a Group after Wait.
var ErrGroupDone = errors.New("task group already waited")

type result struct {
	flags Flags
	err   error
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithTimeout bounds the whole group. Zero means no timeout.
func WithTimeout(d time.Duration) GroupOption {
	return func(g *Group) { g.timeout = d }
}

// Group spawns independent tasks and joins them in Wait.
// Every task reports through its own channel, so no flag word is shared
// between goroutines.
type Group struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	futures []chan result
	done    bool
}

func NewGroup(ctx context.Context, opts ...GroupOption) *Group {
	g := &Group{}
	for _, opt := range opts {
		opt(g)
	}
	if g.timeout > 0 {
		g.ctx, g.cancel = context.WithTimeout(ctx, g.timeout)
	} else {
		g.ctx, g.cancel = context.WithCancel(ctx)
	}
	return g
}

// Go starts task in its own goroutine. A Group is single-use: tasks
// added after Wait are not run and fail the next Wait with ErrGroupDone.
func (g *Group) Go(task Task) {
	future := make(chan result, 1)
	g.futures = append(g.futures, future)
	if g.done {
		future <- result{err: ErrGroupDone}
		return
	}
	go func() {
		flags, err := task(g.ctx)
		future <- result{flags, err}
	}()
}

// Cancel stops all pending tasks. Wait still returns what finished.
func (g *Group) Cancel() { g.cancel() }

// Wait blocks until every task has returned and combines their bits.
// The first task error, if any, is returned along with the bits of the
// tasks that succeeded. A failing task cancels the rest.
func (g *Group) Wait() (Flags, error) {
	defer g.cancel()
	g.done = true
	var flags Flags
	var firstErr error
	for i, future := range g.futures {
		r := <-future
		if r.err != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(r.err, "task %d", i)
				g.cancel()
			}
			continue
		}
		flags |= r.flags
	}
	g.futures = nil
	return flags, firstErr
}

// Delay returns a task that sleeps for d and then reports bit.
func Delay(d time.Duration, bit Flags) Task {
	return func(ctx context.Context) (Flags, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			log.WithFields(log.Fields{"bit": bit, "delay": d}).Debug("task done")
			return bit, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// RunOperations runs the three background operations concurrently and
// returns once all of them finished. Zero delays fall back to
// DefaultOperationDelays.
func RunOperations(ctx context.Context, delays [3]time.Duration, opts ...GroupOption) (Flags, error) {
	bits := [3]Flags{Operation1, Operation2, Operation3}
	g := NewGroup(ctx, opts...)
	for i, bit := range bits {
		d := delays[i]
		if d == 0 {
			d = DefaultOperationDelays[i]
		}
		g.Go(Delay(d, bit))
	}
	flags, err := g.Wait()
	if err != nil {
		return flags, errors.Wrap(err, "run operations")
	}
	return flags, nil
}
