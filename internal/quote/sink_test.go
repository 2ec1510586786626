package quote

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/config"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

func sampleRequest() Request {
	req := NewRequest("session-1", wizard.Draft{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "(123) 456-7890",
		Services: []string{"Logo", "Brochure"},
		Timeline: "1 Week",
	}, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))
	req.RemoteAddr = "203.0.113.7"
	req.UserAgent = "test-agent"

	return req
}

func TestNewRequest(t *testing.T) {
	draft := wizard.Draft{Services: []string{"Logo"}}
	req := NewRequest("s", draft, time.Now())

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "s", req.SessionID)
	draft.Services[0] = "changed"
	assert.Equal(t, []string{"Logo"}, req.Draft.Services, "request owns its services slice")
}

func TestLogSinkRedactsContactDetails(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(logging.NewLogger(&logging.LoggerConfig{Output: &buf, Format: "json"}))

	require.NoError(t, sink.Deliver(context.Background(), sampleRequest()))

	out := buf.String()
	assert.Contains(t, out, "Quote request received")
	assert.Contains(t, out, "Logo, Brochure")
	assert.Contains(t, out, "j***@x.com")
	assert.NotContains(t, out, "jane@x.com")
	assert.NotContains(t, out, "456-7890")
}

func TestMultiSink(t *testing.T) {
	ok := &MemorySink{}
	broken := &MemorySink{}
	broken.FailWith(errors.New("disk full"))

	err := MultiSink{ok, broken}.Deliver(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, ok.Requests(), 1, "healthy sinks still receive the request")
	assert.NoError(t, MultiSink{ok, broken}.Close())
}

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quotes.db")
	sink, err := OpenSQLiteSink(path, DefaultSQLiteConfig())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	ctx := context.Background()
	first := sampleRequest()
	second := sampleRequest()
	second.SubmittedAt = first.SubmittedAt.Add(time.Hour)
	second.Draft.Services = []string{"Banner printing"}

	require.NoError(t, sink.Deliver(ctx, first))
	require.NoError(t, sink.Deliver(ctx, second))
	assert.Error(t, sink.Deliver(ctx, first), "duplicate id is rejected")

	got, err := sink.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, []string{"Logo", "Brochure"}, got[1].Draft.Services)
	assert.Equal(t, "1 Week", got[1].Draft.Timeline)
	assert.Equal(t, "203.0.113.7", got[1].RemoteAddr)
	assert.True(t, first.SubmittedAt.Equal(got[1].SubmittedAt))
}

func TestSQLiteSinkReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")

	sink, err := OpenSQLiteSink(path, DefaultSQLiteConfig())
	require.NoError(t, err)
	require.NoError(t, sink.Deliver(context.Background(), sampleRequest()))
	require.NoError(t, sink.Close())

	sink, err = OpenSQLiteSink(path, DefaultSQLiteConfig())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	got, err := sink.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteSinkOrdersWithinOneSecond(t *testing.T) {
	sink, err := OpenSQLiteSink(filepath.Join(t.TempDir(), "quotes.db"), DefaultSQLiteConfig())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	base := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	older := sampleRequest()
	older.SubmittedAt = base.Add(100 * time.Millisecond)
	newer := sampleRequest()
	newer.SubmittedAt = base.Add(150 * time.Millisecond)
	whole := sampleRequest()
	whole.SubmittedAt = base

	ctx := context.Background()
	require.NoError(t, sink.Deliver(ctx, newer))
	require.NoError(t, sink.Deliver(ctx, whole))
	require.NoError(t, sink.Deliver(ctx, older))

	got, err := sink.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{newer.ID, older.ID, whole.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.True(t, newer.SubmittedAt.Equal(got[0].SubmittedAt))
}

func TestSQLiteSinkUpgradesVersionOneTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`
	CREATE TABLE quote_requests (
		id TEXT PRIMARY KEY, session_id TEXT NOT NULL, submitted_at TEXT NOT NULL,
		name TEXT NOT NULL, email TEXT NOT NULL, phone TEXT, services TEXT NOT NULL,
		project_details TEXT, personal_note TEXT, timeline TEXT, budget TEXT,
		remote_addr TEXT, user_agent TEXT
	);
	INSERT INTO quote_requests (id, session_id, submitted_at, name, email, services)
	VALUES ('older', 's', '2024-03-01T09:30:00.1Z', 'A', 'a@x.com', '[]'),
		('newer', 's', '2024-03-01T09:30:00.15Z', 'B', 'b@x.com', '[]');
	PRAGMA user_version = 1;`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	sink, err := OpenSQLiteSink(path, DefaultSQLiteConfig())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	got, err := sink.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].ID)
	assert.Equal(t, 50*time.Millisecond, got[0].SubmittedAt.Sub(got[1].SubmittedAt))
}

func TestSQLiteDSNEscapesPath(t *testing.T) {
	dsn := sqliteDSN("data/q?a#b.db", DefaultSQLiteConfig())

	assert.True(t, strings.HasPrefix(dsn, "file:data/q%3Fa%23b.db?"), dsn)
	assert.Contains(t, dsn, "busy_timeout%285000%29")
	assert.Equal(t, 1, strings.Count(dsn, "?"))
	assert.NotContains(t, dsn, "#")
}

func TestSQLiteSinkPathWithQueryCharacters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q?a#b.db")

	sink, err := OpenSQLiteSink(path, DefaultSQLiteConfig())
	require.NoError(t, err)
	require.NoError(t, sink.Deliver(context.Background(), sampleRequest()))
	require.NoError(t, sink.Close())

	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(dir, "q"))
}

func TestNewSink(t *testing.T) {
	load := func(t *testing.T, values map[string]interface{}) *config.Config {
		t.Helper()
		v := viper.New()
		for k, val := range values {
			v.Set(k, val)
		}
		cfg, err := config.LoadFrom(v)
		require.NoError(t, err)

		return cfg
	}

	sink, err := NewSink(load(t, nil), logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &LogSink{}, sink)

	sink, err = NewSink(load(t, map[string]interface{}{"server.environment": "test"}), logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &MemorySink{}, sink)

	cfg := load(t, nil)
	cfg.Quotes.Sink = config.SinkBoth
	cfg.Quotes.SQLitePath = filepath.Join(t.TempDir(), "q.db")
	sink, err = NewSink(cfg, logging.Nop())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()
	assert.IsType(t, MultiSink{}, sink)

	cfg.Quotes.Sink = "kafka"
	_, err = NewSink(cfg, logging.Nop())
	assert.Error(t, err)
}
