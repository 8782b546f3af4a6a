// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewer

import (
	"candlelight/canvas"
	"candlelight/mock"
	"candlelight/stockplot"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *httptest.Server {
	logger, _ := mock.NewLogger(t)
	chart := stockplot.NewChart(500, 400, stockplot.WithLogger(logger))
	chart.SetTitle("Test chart")
	assert.NoError(t, chart.Load(mock.NewRows(5)))
	assert.NoError(t, chart.Draw())
	s, err := NewServer(chart, logger)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestNewServerNeedsDrawnChart(t *testing.T) {
	logger, _ := mock.NewLogger(t)
	_, err := NewServer(stockplot.NewChart(100, 100), logger)
	assert.Error(t, err)
}

func TestIndexAndSvg(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + PathIndex)
	if !assert.NoError(t, err) {
		return
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<title>Test chart</title>")
	assert.Contains(t, string(body), `<svg xmlns="http://www.w3.org/2000/svg"`)

	resp, err = http.Get(ts.URL + PathSvg)
	if !assert.NoError(t, err) {
		return
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "<svg"))

	resp, err = http.Post(ts.URL+PathSvg, "text/plain", nil)
	if assert.NoError(t, err) {
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	}
}

func TestPointerEventsOverWebsocket(t *testing.T) {
	ts := newTestServer(t)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+PathWs, nil)
	if !assert.NoError(t, err) {
		return
	}
	defer conn.Close()

	var reply ChartMessage
	assert.NoError(t, conn.WriteJSON(PointerMessage{Type: "move", X: 250, Y: 150}))
	assert.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "svg", reply.Type)
	assert.Contains(t, reply.Svg, `class="tooltip"`)

	assert.NoError(t, conn.WriteJSON(PointerMessage{Type: "down", X: 50, Y: 5}))
	assert.NoError(t, conn.ReadJSON(&reply))
	assert.NoError(t, conn.WriteJSON(PointerMessage{Type: "move", X: 250, Y: 5}))
	assert.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, 3, strings.Count(reply.Svg, `class="highlight"`))
	assert.NotContains(t, reply.Svg, `class="tooltip"`)

	// Unknown events are ignored.
	assert.NoError(t, conn.WriteJSON(PointerMessage{Type: "wheel"}))
	assert.NoError(t, conn.WriteJSON(PointerMessage{Type: "up", X: 250, Y: 5}))
	assert.NoError(t, conn.ReadJSON(&reply))
	assert.NotContains(t, reply.Svg, `class="highlight"`)
}

func TestParseEventType(t *testing.T) {
	eventType, err := ParseEventType("down")
	assert.NoError(t, err)
	assert.Equal(t, canvas.PointerDown, eventType)
	_, err = ParseEventType("click")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
