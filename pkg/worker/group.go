package worker

import (
	"context"
	"sync"
)

type ContextJob func(context.Context) error

type Group interface {
	Do(ContextJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	wg        *sync.WaitGroup

	onceCloser *sync.Once
}

// NewFailFastGroup runs jobs concurrently and cancels the group context
// after the first job error.
func NewFailFastGroup(ctx context.Context) Group {
	var ctxCancel context.CancelFunc
	ctx, ctxCancel = context.WithCancel(ctx)
	return &group{
		ctx:        ctx,
		ctxCancel:  ctxCancel,
		errChan:    make(chan error, 1),
		errResult:  nil,
		wg:         &sync.WaitGroup{},
		onceCloser: &sync.Once{},
	}
}

func (g *group) Do(job ContextJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	}

	g.wg.Add(1)
	go func() {
		handleErr(job(g.ctx))
		g.wg.Done()
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
