package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/server"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/logfeed"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/recorder"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

const (
	apiBasePath    = "/api/v1"
	replayInterval = 10 * time.Millisecond
)

type TestApp struct {
	Server     *httptest.Server
	BaseURL    string
	Tracking   *tracking.Service
	httpClient *http.Client
	stop       func()
}

// writeRoute writes a replay file of n samples heading north, one second and
// roughly 111 m apart.
func writeRoute(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("samples:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  - {time: %d, latitude: %.3f, longitude: 21.0, accuracy: 5}\n", 1000*(i+1), 52.0+0.001*float64(i))
	}

	path := filepath.Join(t.TempDir(), "route.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func setupTestApp(t *testing.T, routeFile string) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)

	feed := logfeed.New(logfeed.DefaultLimit)
	logger, err := observability.WithFeed(zap.NewNop(), feed, "info")
	require.NoError(t, err)

	watcher := positioning.NewPushWatcher(logger)
	deps := tracking.Dependencies{
		Recorder:   recorder.NewRecorder(logger, nil),
		Foreground: watcher,
		Prompter:   positioning.NewLogPrompter(true, logger),
		WakeLock:   positioning.NewLogWakeLock(logger),
		Logger:     logger,
	}
	if routeFile != "" {
		samples, err := positioning.LoadReplayFile(routeFile)
		require.NoError(t, err)
		deps.Background = positioning.NewReplayService(samples, positioning.ReplayOptions{Authorized: true}, logger)
	}

	cfg := tracking.DefaultConfig()
	cfg.ForegroundTier.Interval = replayInterval
	cfg.BackgroundTier.Interval = replayInterval
	svc := tracking.NewService(cfg, deps)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Run(ctx)
	}()

	router := server.NewRouter(server.RouterConfig{
		TrackingHandler: handler.NewTrackingHandler(svc, watcher),
		LogHandler:      handler.NewLogHandler(feed),
		Logger:          logger,
		Environment:     "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:   ts,
		BaseURL:  ts.URL,
		Tracking: svc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		stop: func() {
			cancel()
			<-done
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.CloseClientConnections()
	app.Server.Close()
	app.stop()
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

type trackResp struct {
	Recording bool `json:"recording"`
	Points    []struct {
		Time     int64   `json:"time"`
		Latitude float64 `json:"latitude"`
	} `json:"points"`
}

func (app *TestApp) track(t *testing.T) trackResp {
	t.Helper()

	resp, err := app.get("/track")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tr trackResp
	parseResponse(t, resp, &tr)
	return tr
}

func (app *TestApp) command(t *testing.T, path string) map[string]any {
	t.Helper()

	resp, err := app.post(path, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]any
	parseResponse(t, resp, &status)
	return status
}
