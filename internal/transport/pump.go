// Package transport moves messages between the outside world and the survey
// machine. The pump fans inbound messages out to a fixed set of workers,
// routing by user ID so one user's messages are handled in arrival order
// while distinct users run concurrently.
package transport

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cactus-tim/ml-project/internal/survey"
)

// #region types

// Handler processes one inbound message and returns the replies to send.
type Handler func(survey.Inbound) []survey.Reply

// SendFunc delivers replies back to a user.
type SendFunc func(userID int64, replies []survey.Reply)

// #endregion types

// #region pump-struct

// Pump is the worker fan-out. Messages for the same user always land on the
// same worker queue, which preserves their order.
type Pump struct {
	handle Handler
	send   SendFunc
	queues []chan survey.Inbound
}

// NewPump creates a pump with the given worker count.
func NewPump(workers int, handle Handler, send SendFunc) *Pump {
	queues := make([]chan survey.Inbound, workers)
	for i := range queues {
		queues[i] = make(chan survey.Inbound, 64)
	}
	return &Pump{handle: handle, send: send, queues: queues}
}

// #endregion pump-struct

// #region dispatch

// Dispatch routes a message to its user's worker queue. Blocks if the queue
// is full; returns early if ctx is cancelled.
func (p *Pump) Dispatch(ctx context.Context, in survey.Inbound) error {
	q := p.queues[uint64(in.UserID)%uint64(len(p.queues))]
	select {
	case q <- in:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes every worker queue. Run returns once the queues drain.
// No Dispatch may follow Close.
func (p *Pump) Close() {
	for _, q := range p.queues {
		close(q)
	}
}

// #endregion dispatch

// #region run

// Run starts the workers and blocks until the queues are closed and drained
// or ctx is cancelled.
func (p *Pump) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, q := range p.queues {
		q := q
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case in, ok := <-q:
					if !ok {
						return nil
					}
					p.send(in.UserID, p.handle(in))
				}
			}
		})
	}
	return g.Wait()
}

// #endregion run
