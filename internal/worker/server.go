package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// ServerConfig collects the dependencies of the background worker.
type ServerConfig struct {
	RedisAddr   string
	Concurrency int
	InvoiceCron string
	Invoicing   *InvoicingHandler
	Logger      *slog.Logger
}

// Server wraps the Asynq server plus the cron scheduler for recurring runs.
type Server struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
	logger    *slog.Logger
}

// NewServer builds the worker with all task handlers registered.
func NewServer(cfg ServerConfig) (*Server, error) {
	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueDefault: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeGenerateInvoices, cfg.Invoicing.HandleGenerateInvoices)

	var scheduler *asynq.Scheduler
	if cfg.InvoiceCron != "" {
		scheduler = asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
		task, err := NewGenerateInvoicesTask(GenerateInvoicesPayload{ActorUserID: SystemActorID})
		if err != nil {
			return nil, err
		}
		if _, err := scheduler.Register(cfg.InvoiceCron, task, asynq.Queue(QueueDefault)); err != nil {
			return nil, err
		}
	}

	return &Server{server: srv, mux: mux, scheduler: scheduler, logger: cfg.Logger}, nil
}

// Run processes jobs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if s.scheduler != nil {
		if err := s.scheduler.Start(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Run(s.mux)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Worker shutting down")
		if s.scheduler != nil {
			s.scheduler.Shutdown()
		}
		s.server.Shutdown()
		return ctx.Err()
	case err := <-errCh:
		if s.scheduler != nil {
			s.scheduler.Shutdown()
		}
		return err
	}
}
