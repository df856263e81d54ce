package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/systems"
)

func TestObserveCountsEvents(t *testing.T) {
	m := New()
	q := ecs.NewEventQueue()
	m.Observe(q)

	q.Emit(systems.ResetBallEvent{Player: components.Player1})
	q.Emit(systems.GainPointEvent{Player: components.Player1})
	q.Emit(systems.ResetBallEvent{Player: components.Player2})
	q.Emit(systems.GainPointEvent{Player: components.Player1})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.points.WithLabelValues("Player1")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.points.WithLabelValues("Player2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets.WithLabelValues("Player1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets.WithLabelValues("Player2")))
}

func TestRecordFrameTracksScore(t *testing.T) {
	m := New()
	score := components.NewScore()
	score.Increment(components.Player2)
	score.Increment(components.Player2)

	m.RecordFrame(2*time.Millisecond, score)
	m.RecordFrame(time.Millisecond, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.frames))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.score.WithLabelValues("Player2")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.score.WithLabelValues("Player1")))
}

func TestRouter(t *testing.T) {
	m := New()
	q := ecs.NewEventQueue()
	m.Observe(q)
	q.Emit(systems.GainPointEvent{Player: components.Player2})

	ts := httptest.NewServer(NewRouter(m))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `pong_points_total{player="Player2"} 1`))
}
