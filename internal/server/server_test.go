package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fusionprintdesign/fusionsite/internal/accessibility"
	"github.com/fusionprintdesign/fusionsite/internal/config"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
	"github.com/fusionprintdesign/fusionsite/internal/quote"
	"github.com/fusionprintdesign/fusionsite/internal/session"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(viper.New())
	require.NoError(t, err)
	cfg.Server.Environment = config.EnvTest
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Site.Preloader = false

	return cfg
}

type testSite struct {
	server *Server
	sink   *quote.MemorySink
	http   *httptest.Server
	client *http.Client
}

func newTestSite(t *testing.T, mutate func(*config.Config)) *testSite {
	t.Helper()

	cfg := testConfig(t)
	if mutate != nil {
		mutate(cfg)
	}

	sink := &quote.MemorySink{}
	srv, err := New(cfg, logging.Nop(), Options{
		Sink: sink,
		Now:  func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		ts.Close()
		assert.NoError(t, srv.Shutdown(context.Background()))
	})

	return &testSite{server: srv, sink: sink, http: ts, client: &http.Client{Jar: jar}}
}

func (s *testSite) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := s.client.Get(s.http.URL + path)
	require.NoError(t, err)

	return resp, readBody(t, resp)
}

// post submits a form from the site's own origin unless origin is set.
func (s *testSite) post(t *testing.T, path string, form url.Values, origin ...string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, s.http.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", s.http.URL)
	if len(origin) > 0 {
		req.Header.Set("Origin", origin[0])
	}

	resp, err := s.client.Do(req)
	require.NoError(t, err)

	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func TestPageRoutes(t *testing.T) {
	site := newTestSite(t, nil)

	for _, route := range pages.Routes() {
		t.Run(route.Path, func(t *testing.T) {
			resp, body := site.get(t, route.Path)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
			assert.NotEmpty(t, resp.Header.Get("Content-Security-Policy"))

			h1, err := accessibility.Headings(strings.NewReader(body), "h1")
			require.NoError(t, err)
			assert.Equal(t, []string{route.Heading}, h1)
		})
	}
}

func TestTrailingSlash(t *testing.T) {
	site := newTestSite(t, nil)

	resp, _ := site.get(t, "/about/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	site := newTestSite(t, nil)

	resp, body := site.get(t, "/pricing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "/pricing")
	h1, err := accessibility.Headings(strings.NewReader(body), "h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Page Not Found"}, h1)
}

func TestWizardFlow(t *testing.T) {
	site := newTestSite(t, nil)

	resp, body := site.get(t, "/contact")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Contact Information")
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	resp, body = site.post(t, "/contact", url.Values{
		"step":   {"1"},
		"action": {"next"},
		"name":   {"Jane Doe"},
		"email":  {"jane@x.com"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/contact", resp.Request.URL.Path, "post/redirect/get lands on the contact page")
	assert.Contains(t, body, `<legend>Project Details</legend>`)

	resp, body = site.post(t, "/contact", url.Values{
		"step":     {"2"},
		"action":   {"next"},
		"services": {"Logo", "Brochure"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<legend>Additional Information</legend>`)

	resp, body = site.post(t, "/contact", url.Values{
		"step":     {"3"},
		"action":   {"submit"},
		"timeline": {"1 Week"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Thank you for your inquiry!")
	assert.Contains(t, body, "Services requested: Logo, Brochure")
	assert.Contains(t, body, `data-autodismiss="5000"`)

	requests := site.sink.Requests()
	require.Len(t, requests, 1)
	got := requests[0]
	assert.Equal(t, "Jane Doe", got.Draft.Name)
	assert.Equal(t, "jane@x.com", got.Draft.Email)
	assert.Equal(t, []string{"Logo", "Brochure"}, got.Draft.Services)
	assert.Equal(t, "1 Week", got.Draft.Timeline)
	assert.Equal(t, "127.0.0.1", got.RemoteAddr)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), got.SubmittedAt)

	// The banner is shown once; the next visit starts over.
	_, body = site.get(t, "/contact")
	assert.NotContains(t, body, "Thank you for your inquiry!")
	assert.Contains(t, body, `<legend>Contact Information</legend>`)
	assert.NotContains(t, body, "Jane Doe")
}

func TestWizardBackKeepsAnswers(t *testing.T) {
	site := newTestSite(t, nil)

	site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Jane Doe"}, "email": {"jane@x.com"}})
	_, body := site.post(t, "/contact", url.Values{"step": {"2"}, "action": {"back"}, "services": {"Logo"}})

	assert.Contains(t, body, `<legend>Contact Information</legend>`)
	assert.Contains(t, body, `value="Jane Doe"`)

	_, body = site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}})
	assert.Contains(t, body, `<input type="checkbox" id="svc-design-logo" name="services" value="Logo" checked>`)
}

func TestWizardStalePostIgnored(t *testing.T) {
	site := newTestSite(t, nil)

	site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Jane Doe"}})
	_, body := site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Someone Else"}})

	assert.Contains(t, body, `<legend>Project Details</legend>`)
	assert.Empty(t, site.sink.Requests())
}

func TestWizardRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "unknown service",
			form:    url.Values{"step": {"2"}, "action": {"next"}, "services": {"Time travel"}},
			message: "not something we offer",
		},
		{
			name:    "unknown action",
			form:    url.Values{"step": {"2"}, "action": {"jump"}},
			message: "action isn",
		},
		{
			name:    "submit before last step",
			form:    url.Values{"step": {"2"}, "action": {"submit"}},
			message: "complete every step",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			site := newTestSite(t, nil)
			site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}})

			resp, body := site.post(t, "/contact", tc.form)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body, `role="alert"`)
			assert.Contains(t, body, tc.message)
			assert.Contains(t, body, `<legend>Project Details</legend>`)
		})
	}
}

func TestWizardSinkFailureKeepsDraft(t *testing.T) {
	site := newTestSite(t, nil)
	site.sink.FailWith(errors.New("smtp down"))

	site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Jane Doe"}, "email": {"jane@x.com"}})
	site.post(t, "/contact", url.Values{"step": {"2"}, "action": {"next"}, "services": {"Logo"}})
	resp, body := site.post(t, "/contact", url.Values{"step": {"3"}, "action": {"submit"}, "timeline": {"Flexible"}})

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Your answers are saved")
	assert.Contains(t, body, `<legend>Additional Information</legend>`)

	site.sink.FailWith(nil)
	_, body = site.post(t, "/contact", url.Values{"step": {"3"}, "action": {"submit"}})
	assert.Contains(t, body, "Thank you for your inquiry!")

	requests := site.sink.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "Jane Doe", requests[0].Draft.Name)
	assert.Equal(t, "Flexible", requests[0].Draft.Timeline)
}

func TestWizardReset(t *testing.T) {
	site := newTestSite(t, nil)

	site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Jane Doe"}})
	_, body := site.post(t, "/contact", url.Values{"action": {"reset"}})

	assert.Contains(t, body, `<legend>Contact Information</legend>`)
	assert.NotContains(t, body, "Jane Doe")
}

func TestCrossOriginPostForbidden(t *testing.T) {
	site := newTestSite(t, nil)

	resp, _ := site.post(t, "/contact", url.Values{"action": {"next"}}, "https://evil.example")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = site.post(t, "/contact/services/toggle", url.Values{"service": {"Logo"}}, "https://evil.example")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestContactRateLimit(t *testing.T) {
	site := newTestSite(t, func(cfg *config.Config) {
		cfg.Contact.RequestsPerMin = 2
	})

	for i := 0; i < 2; i++ {
		resp, _ := site.post(t, "/contact", url.Values{"action": {"reset"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := site.post(t, "/contact", url.Values{"action": {"reset"}})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))

	// Pages are not limited.
	resp, _ = site.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestContactRateLimitDisabled(t *testing.T) {
	site := newTestSite(t, func(cfg *config.Config) {
		cfg.Contact.RequestsPerMin = 0
	})

	site.get(t, "/contact")
	resp, body := site.post(t, "/contact", url.Values{
		"action": {"next"},
		"step":   {"1"},
		"name":   {"A"},
		"email":  {"a@b.c"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, `<legend>Project Details</legend>`)

	for i := 0; i < 5; i++ {
		resp, _ = site.post(t, "/contact/services/toggle", url.Values{"service": {"Logo"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Retry-After"))
	}
}

func TestServiceToggle(t *testing.T) {
	site := newTestSite(t, nil)

	toggle := func(label string) (int, map[string]interface{}) {
		resp, body := site.post(t, "/contact/services/toggle", url.Values{"service": {label}})
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &out))

		return resp.StatusCode, out
	}

	status, out := toggle("Logo")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, out["selected"])
	assert.Equal(t, []interface{}{"Logo"}, out["services"])

	status, out = toggle("Logo")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, out["selected"])
	assert.Equal(t, []interface{}{}, out["services"])

	status, out = toggle("Time travel")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, out["error"], "not something we offer")
}

func TestHealth(t *testing.T) {
	site := newTestSite(t, nil)
	site.post(t, "/contact/services/toggle", url.Values{"service": {"Logo"}})

	resp, body := site.get(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, config.EnvTest, health.Environment)
	assert.Equal(t, 1, health.Sessions)
	assert.NotEmpty(t, health.Version)
}

func TestStaticAssets(t *testing.T) {
	site := newTestSite(t, nil)

	resp, body := site.get(t, "/static/site.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, "--gradient")

	resp, body = site.get(t, "/static/motion.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, `[data-animate="fade-in-up"]`)

	resp, _ = site.get(t, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{color:red}"), 0o600))

	site := newTestSite(t, func(cfg *config.Config) {
		cfg.Site.StaticDir = dir
	})

	_, body := site.get(t, "/static/site.css")
	assert.Equal(t, "body{color:red}", body)
}

func TestMetricsEndpoint(t *testing.T) {
	site := newTestSite(t, nil)

	site.post(t, "/contact", url.Values{"step": {"1"}, "action": {"next"}})
	site.get(t, "/about")

	resp, body := site.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `fusionsite_wizard_transitions_total{action="next",result="ok"} 1`)
	assert.Contains(t, body, `fusionsite_http_request_duration_seconds_count{method="GET",path="/about",status="200"} 1`)
	assert.Contains(t, body, "fusionsite_sessions_active 1")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsDisabled(t *testing.T) {
	site := newTestSite(t, func(cfg *config.Config) {
		cfg.Metrics.Enabled = false
	})

	resp, _ := site.get(t, "/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveReloadRouteOnlyInDevelopment(t *testing.T) {
	site := newTestSite(t, nil)

	resp, _ := site.get(t, "/livereload")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVisitorMessage(t *testing.T) {
	assert.Contains(t, visitorMessage(errors.New("boom")), "Something went wrong")
	assert.Equal(t, "unknown", actionLabel("<script>"))
	assert.Equal(t, "next", actionLabel("next"))
}

func serve(t *testing.T, srv *Server) (string, context.CancelFunc, <-chan error) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	return ln.Addr().String(), cancel, done
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, err := New(testConfig(t), logging.Nop(), Options{})
	require.NoError(t, err)

	addr, cancel, done := serve(t, srv)

	transport := &http.Transport{}
	client := &http.Client{Transport: transport}
	resp, err := client.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
}

func TestShutdownStopsServe(t *testing.T) {
	srv, err := New(testConfig(t), logging.Nop(), Options{})
	require.NoError(t, err)

	_, cancel, done := serve(t, srv)
	defer cancel()

	require.Eventually(t, func() bool {
		srv.serverMutex.RLock()
		defer srv.serverMutex.RUnlock()

		return srv.httpServer != nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

type closeCountingStore struct {
	session.Store
	closes int
}

func (c *closeCountingStore) Close() error {
	c.closes++

	return c.Store.Close()
}

type closeCountingSink struct {
	quote.MemorySink
	closes int
}

func (c *closeCountingSink) Close() error {
	c.closes++

	return nil
}

func TestShutdownLeavesInjectedCollaboratorsOpen(t *testing.T) {
	store := &closeCountingStore{Store: session.NewMemoryStore(session.Config{}, pages.NewWizard, logging.Nop())}
	defer func() { _ = store.Store.Close() }()
	sink := &closeCountingSink{}

	srv, err := New(testConfig(t), logging.Nop(), Options{Store: store, Sink: sink})
	require.NoError(t, err)
	require.NoError(t, srv.Shutdown(context.Background()))

	assert.Zero(t, store.closes)
	assert.Zero(t, sink.closes)

	// still usable by its owner
	require.NoError(t, store.Update("visitor", func(*wizard.Wizard) error { return nil }))
	assert.Equal(t, 1, store.Len())
}

func TestShutdownClosesOwnedCollaborators(t *testing.T) {
	srv, err := New(testConfig(t), logging.Nop(), Options{})
	require.NoError(t, err)

	assert.True(t, srv.ownStore)
	assert.True(t, srv.ownSink)
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestLiveReload(t *testing.T) {
	dir := t.TempDir()

	cfg := testConfig(t)
	cfg.Server.Environment = config.EnvDevelopment
	cfg.Development.LiveReload = true
	cfg.Development.WatchPaths = []string{dir}

	srv, err := New(cfg, logging.Nop(), Options{Sink: &quote.MemorySink{}})
	require.NoError(t, err)

	addr, cancel, done := serve(t, srv)
	defer func() {
		cancel()
		<-done
	}()

	ctx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	conn, _, err := websocket.Dial(ctx, "ws://"+addr+"/livereload", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return srv.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Ignored by the asset filter.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o600))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "reload", msg.Type)
	assert.Contains(t, msg.Paths, filepath.Join(dir, "site.css"))
	assert.NotContains(t, msg.Paths, filepath.Join(dir, "notes.txt"))

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.True(t, bytes.Contains([]byte(body), []byte("data-live-reload")))
}

func TestReloadHubClose(t *testing.T) {
	hub := newReloadHub(logging.Nop())

	assert.Equal(t, 0, hub.Broadcast([]string{"a.css"}))
	hub.Close()
	hub.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/livereload", nil)
	hub.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusSwitchingProtocols, rec.Code, "plain requests are not upgraded")
}
