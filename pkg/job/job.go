package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered functions on fixed intervals until the context
// passed to Start is cancelled.
type Service struct {
	l    *slog.Logger
	jobs []job
	wg   *sync.WaitGroup
}

func NewService(l *slog.Logger) *Service {
	return &Service{
		l:  l.WithGroup("job"),
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when isEnabled is true and interval
// is positive.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, j job) {
	defer s.wg.Done()

	l := s.l.With("name", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := s.withRecover(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

// Stop waits for running jobs to return. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
