package session

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

func newTestStore(t *testing.T, cfg Config) (*MemoryStore, *time.Time) {
	t.Helper()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(cfg, func() *wizard.Wizard { return wizard.New(wizard.Options{}) }, nil)
	s.now = func() time.Time { return now }
	t.Cleanup(func() { _ = s.Close() })

	return s, &now
}

func TestUpdateKeepsStateBetweenCalls(t *testing.T) {
	s, _ := newTestStore(t, Config{TTL: time.Minute})

	require.NoError(t, s.Update("a", func(w *wizard.Wizard) error {
		w.Advance()
		return w.Set(wizard.FieldName, "Jane Doe")
	}))

	var step wizard.Step
	var name string
	require.NoError(t, s.Update("a", func(w *wizard.Wizard) error {
		step = w.Step()
		name = w.Draft().Name
		return nil
	}))

	assert.Equal(t, wizard.StepProject, step)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t, Config{TTL: time.Minute})

	require.NoError(t, s.Update("a", func(w *wizard.Wizard) error { w.Advance(); return nil }))

	var step wizard.Step
	require.NoError(t, s.Update("b", func(w *wizard.Wizard) error { step = w.Step(); return nil }))
	assert.Equal(t, wizard.StepContact, step)
}

func TestLookup(t *testing.T) {
	s, _ := newTestStore(t, Config{TTL: time.Minute})

	found, err := s.Lookup("missing", func(*wizard.Wizard) error {
		t.Fatal("fn must not run for unknown sessions")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Update("a", func(*wizard.Wizard) error { return nil }))
	found, err = s.Lookup("a", func(*wizard.Wizard) error { return nil })
	require.NoError(t, err)
	assert.True(t, found)
}

func TestExpiredSessionStartsOver(t *testing.T) {
	s, now := newTestStore(t, Config{TTL: time.Minute})

	require.NoError(t, s.Update("a", func(w *wizard.Wizard) error { w.Advance(); return nil }))

	*now = now.Add(2 * time.Minute)

	found, err := s.Lookup("a", func(*wizard.Wizard) error { return nil })
	require.NoError(t, err)
	assert.False(t, found)

	var step wizard.Step
	require.NoError(t, s.Update("a", func(w *wizard.Wizard) error { step = w.Step(); return nil }))
	assert.Equal(t, wizard.StepContact, step)
}

func TestSweep(t *testing.T) {
	s, now := newTestStore(t, Config{TTL: time.Minute})

	require.NoError(t, s.Update("old", func(*wizard.Wizard) error { return nil }))
	*now = now.Add(90 * time.Second)
	require.NoError(t, s.Update("fresh", func(*wizard.Wizard) error { return nil }))

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	found, _ := s.Lookup("fresh", func(*wizard.Wizard) error { return nil })
	assert.True(t, found)
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	s, now := newTestStore(t, Config{TTL: time.Hour, MaxEntries: 2})

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Update(id, func(*wizard.Wizard) error { return nil }))
		*now = now.Add(time.Second)
	}

	assert.Equal(t, 2, s.Len())
	found, _ := s.Lookup("a", func(*wizard.Wizard) error { return nil })
	assert.False(t, found)
}

func TestSlowUpdateDoesNotBlockStore(t *testing.T) {
	s, now := newTestStore(t, Config{TTL: time.Hour, MaxEntries: 2})

	entered := make(chan struct{})
	release := make(chan struct{})
	updated := make(chan error, 1)
	go func() {
		updated <- s.Update("busy", func(*wizard.Wizard) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered
	defer func() {
		close(release)
		require.NoError(t, <-updated)
	}()

	*now = now.Add(time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Sweep()
		_ = s.Update("idle", func(*wizard.Wizard) error { return nil })
		// at capacity: the idle entry goes, the busy one is skipped
		_ = s.Update("new", func(*wizard.Wizard) error { return nil })
		s.Len()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("store operations waited on an in-flight update")
	}

	assert.Equal(t, 2, s.Len())
	found, _ := s.Lookup("idle", func(*wizard.Wizard) error { return nil })
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t, Config{})

	require.NoError(t, s.Update("a", func(*wizard.Wizard) error { return nil }))
	s.Delete("a")
	assert.Equal(t, 0, s.Len())
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	s, _ := newTestStore(t, Config{TTL: time.Minute})
	labels := []string{"Logo", "Brochure"}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Update("shared", func(w *wizard.Wizard) error {
				_, err := w.Toggle(labels[i%2])
				return err
			})
		}(i)
	}
	wg.Wait()

	// 50 toggles each: both labels end up deselected
	require.NoError(t, s.Update("shared", func(w *wizard.Wizard) error {
		assert.Empty(t, w.Draft().Services)
		return nil
	}))
}

func TestCloseStopsJanitor(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewMemoryStore(Config{CleanupInterval: time.Millisecond}, func() *wizard.Wizard { return wizard.New(wizard.Options{}) }, nil)
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")
}

func TestCookieRoundTrip(t *testing.T) {
	cfg := CookieConfig{Name: "fpd_session", TTL: 30 * time.Minute}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	id := Ensure(rec, req, cfg)
	require.NotEmpty(t, id)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "fpd_session", c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 1800, c.MaxAge)

	req2 := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req2.AddCookie(c)
	got, ok := IDFromRequest(req2, cfg)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, id, Ensure(httptest.NewRecorder(), req2, cfg))
}

func TestIDFromRequestRejectsGarbage(t *testing.T) {
	cfg := CookieConfig{Name: "fpd_session"}
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(&http.Cookie{Name: "fpd_session", Value: "<script>"})

	_, ok := IDFromRequest(req, cfg)
	assert.False(t, ok)
}
