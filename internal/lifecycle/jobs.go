package lifecycle

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobStatus string

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID          string
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobBus struct {
	ctx       context.Context
	generator Generator
	logger    *slog.Logger
}

func newJobBus(ctx context.Context, generator Generator, logger *slog.Logger) *jobBus {
	return &jobBus{ctx: ctx, generator: generator, logger: logger}
}

// Start returns a command that performs exactly one generation call and
// reports it as a responseMsg tagged with generation.
func (b *jobBus) Start(generation uint64, id, url string) tea.Cmd {
	started := time.Now()
	b.logger.Debug("[jobs] generate started", "request_id", id, "status", jobStatusRunning)

	return func() tea.Msg {
		var (
			email string
			err   error
		)
		if b.generator == nil {
			err = errNoGenerator
		} else {
			email, err = b.generator.Generate(b.ctx, url)
		}
		snapshot := jobSnapshot{
			ID:          id,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		b.logger.Info("[jobs] generate finished",
			"request_id", id,
			"status", snapshot.Status,
			"duration", snapshot.Duration,
			"error", snapshot.Err,
		)
		return responseMsg{generation: generation, snapshot: snapshot, email: email, err: err}
	}
}
