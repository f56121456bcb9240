package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharmanet/pharmacy-console/pkg/log"
	"github.com/pharmanet/pharmacy-console/pkg/sig"
	"github.com/pharmanet/pharmacy-console/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, job ...worker.ContextJob) {
	if err := Run(ctx, logger, job...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

func Run(ctx context.Context, logger log.Logger, job ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.ContextJob, logger log.Logger) worker.ContextJob {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	group := worker.NewFailFastGroup(ctx)
	for _, j := range job {
		group.Do(loggingAdapter(j, logger))
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}

// TermSignalAwaiter completes when the process receives SIGTERM or SIGINT.
func TermSignalAwaiter(ctx context.Context) error {
	select {
	case <-sig.TermSignals():
	case <-ctx.Done():
	}
	return ctx.Err()
}
