package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fusionprintdesign/fusionsite/internal/config"
	siteerrors "github.com/fusionprintdesign/fusionsite/internal/errors"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

// Sink receives submitted quote requests.
type Sink interface {
	Deliver(ctx context.Context, req Request) error
	Close() error
}

// LogSink writes each request as a structured log line. Contact details are
// redacted.
type LogSink struct {
	logger logging.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logger.WithComponent("quote_sink")}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(ctx context.Context, req Request) error {
	s.logger.Info(ctx, "Quote request received",
		"quote_id", req.ID,
		"session_id", req.SessionID,
		"name", req.Draft.Name,
		"email", logging.Redact(req.Draft.Email),
		"phone", logging.Redact(req.Draft.Phone),
		"services", strings.Join(req.Draft.Services, ", "),
		"timeline", req.Draft.Timeline,
		"budget", req.Draft.Budget,
	)

	return nil
}

// Close implements Sink.
func (s *LogSink) Close() error { return nil }

// MultiSink fans a request out to several sinks, collecting every failure.
type MultiSink []Sink

// Deliver implements Sink.
func (m MultiSink) Deliver(ctx context.Context, req Request) error {
	var errs []error
	for _, s := range m {
		if err := s.Deliver(ctx, req); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close implements Sink.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}

	return errors.Join(errs...)
}

// MemorySink keeps requests in memory. The test environment uses it so no
// files are written.
type MemorySink struct {
	mu       sync.Mutex
	requests []Request
	fail     error
}

// Deliver implements Sink.
func (m *MemorySink) Deliver(_ context.Context, req Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}
	m.requests = append(m.requests, req)

	return nil
}

// FailWith makes subsequent deliveries return err (nil restores success).
func (m *MemorySink) FailWith(err error) {
	m.mu.Lock()
	m.fail = err
	m.mu.Unlock()
}

// Requests returns the delivered requests.
func (m *MemorySink) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Request(nil), m.requests...)
}

// Close implements Sink.
func (m *MemorySink) Close() error { return nil }

// NewSink builds the sink selected by cfg.Quotes.Sink.
func NewSink(cfg *config.Config, logger logging.Logger) (Sink, error) {
	if cfg.Server.Environment == config.EnvTest {
		return &MemorySink{}, nil
	}

	switch cfg.Quotes.Sink {
	case config.SinkLog, "":
		return NewLogSink(logger), nil
	case config.SinkSQLite, config.SinkBoth:
		db, err := OpenSQLiteSink(cfg.Quotes.SQLitePath, DefaultSQLiteConfig())
		if err != nil {
			return nil, siteerrors.NewIOError("QUOTE_SINK_OPEN", "failed to open quote database", err).
				WithContext("path", cfg.Quotes.SQLitePath)
		}
		if cfg.Quotes.Sink == config.SinkBoth {
			return MultiSink{NewLogSink(logger), db}, nil
		}

		return db, nil
	default:
		return nil, siteerrors.NewConfigError("QUOTE_SINK_UNKNOWN", fmt.Sprintf("unknown quote sink %q", cfg.Quotes.Sink))
	}
}
