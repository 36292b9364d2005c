package e2e_test

import (
	"bufio"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

func assertIncreasing(t *testing.T, tr trackResp) {
	t.Helper()
	for i := 1; i < len(tr.Points); i++ {
		require.Greater(t, tr.Points[i].Time, tr.Points[i-1].Time, "point %d", i)
	}
}

func TestE2E_BackgroundSession(t *testing.T) {
	app := setupTestApp(t, writeRoute(t, 300))
	defer app.cleanup(t)

	require.Eventually(t, func() bool {
		return app.Tracking.Snapshot().Position.Valid()
	}, 2*time.Second, 5*time.Millisecond)

	t.Run("position updates without recording", func(t *testing.T) {
		tr := app.track(t)
		assert.False(t, tr.Recording)
		assert.Empty(t, tr.Points)
	})

	t.Run("records while the session runs", func(t *testing.T) {
		status := app.command(t, "/session/start")
		assert.Equal(t, "background_watching", status["state"])
		assert.Equal(t, true, status["recording"])

		require.Eventually(t, func() bool { return len(app.track(t).Points) >= 5 }, 2*time.Second, 10*time.Millisecond)
		assertIncreasing(t, app.track(t))
	})

	t.Run("folds the background backlog in on resume", func(t *testing.T) {
		app.command(t, "/lifecycle/pause")
		before := len(app.track(t).Points)

		time.Sleep(15 * replayInterval)
		paused := len(app.track(t).Points)
		assert.LessOrEqual(t, paused-before, 2)

		app.command(t, "/lifecycle/resume")

		tr := app.track(t)
		assert.Greater(t, len(tr.Points), paused+3)
		assertIncreasing(t, tr)
	})

	t.Run("keeps the track after stop", func(t *testing.T) {
		status := app.command(t, "/session/stop")
		assert.Equal(t, false, status["recording"])
		stopped := len(app.track(t).Points)

		time.Sleep(5 * replayInterval)
		assert.Equal(t, stopped, len(app.track(t).Points))
	})
}

func TestE2E_ForegroundSession(t *testing.T) {
	app := setupTestApp(t, "")
	defer app.cleanup(t)

	require.Eventually(t, func() bool {
		return app.Tracking.State() == tracking.StateForegroundWatching
	}, time.Second, 5*time.Millisecond)

	status := app.command(t, "/session/start")
	assert.Equal(t, "foreground_watching", status["state"])

	fixes := []map[string]any{
		{"timestamp": 1000, "coords": map[string]any{"latitude": 52.1234567, "longitude": 21.0}},
		{"timestamp": 1000, "coords": map[string]any{"latitude": 52.1234567, "longitude": 21.0}},
		{"timestamp": 2000, "coords": map[string]any{"latitude": 52.2, "longitude": 21.1}},
	}
	for _, fix := range fixes {
		resp, err := app.post("/samples", fix)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()
	}

	require.Eventually(t, func() bool { return len(app.track(t).Points) == 2 }, time.Second, 5*time.Millisecond)
	tr := app.track(t)
	assert.Equal(t, 52.12346, tr.Points[0].Latitude)
	assert.Equal(t, int64(2000), tr.Points[1].Time)
}

func TestE2E_PositionStream(t *testing.T) {
	app := setupTestApp(t, "")
	defer app.cleanup(t)

	require.Eventually(t, func() bool {
		return app.Tracking.State() == tracking.StateForegroundWatching
	}, time.Second, 5*time.Millisecond)

	resp, err := app.get("/position/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	push, err := app.post("/samples", map[string]any{"time": 5000, "latitude": 52.5, "longitude": 21.5})
	require.NoError(t, err)
	push.Body.Close()

	reader := bufio.NewReader(resp.Body)
	var events, payloads []string
	for len(payloads) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "event:"):
			events = append(events, strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			payloads = append(payloads, strings.TrimPrefix(line, "data:"))
		}
	}

	assert.Equal(t, []string{"position", "position"}, events)
	assert.Contains(t, payloads[0], `"valid":false`)
	assert.Contains(t, payloads[1], `"latitude":52.5`)
}

func TestE2E_Logs(t *testing.T) {
	app := setupTestApp(t, "")
	defer app.cleanup(t)

	app.command(t, "/session/start")

	resp, err := app.get("/logs")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs struct {
		Messages []string `json:"messages"`
	}
	parseResponse(t, resp, &logs)

	found := false
	for _, m := range logs.Messages {
		if strings.HasPrefix(m, "[INFO] session started") {
			found = true
		}
	}
	assert.True(t, found, "messages: %v", logs.Messages)
}
