// Package report is the abuse-report audit sink. It sits outside the
// session broker: the broker composes a record, hands it over, and never
// hears back. Sink failures are logged and swallowed, so report submission
// always succeeds from the client's point of view.
package report

import (
	"context"
	"log/slog"

	"thecorner/backend/internal/models"
)

// Sink persists or forwards one report record.
type Sink interface {
	Save(ctx context.Context, rep *models.Report) error
}

// Service fans a report out to every configured sink.
type Service struct {
	sinks []Sink
	log   *slog.Logger
}

func NewService(log *slog.Logger, sinks ...Sink) *Service {
	return &Service{sinks: sinks, log: log}
}

// Submit delivers the record to all sinks. Errors are logged per sink and
// never propagated.
func (s *Service) Submit(ctx context.Context, rep *models.Report) {
	for _, sink := range s.sinks {
		if err := sink.Save(ctx, rep); err != nil {
			s.log.Error("unable to save report",
				"report", rep.ID, "sink", sinkName(sink), "error", err)
		}
	}
}

func sinkName(s Sink) string {
	switch s.(type) {
	case *FileSink:
		return "file"
	case *StoreSink:
		return "postgres"
	case *Publisher:
		return "redis"
	default:
		return "unknown"
	}
}
