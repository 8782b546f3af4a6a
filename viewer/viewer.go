// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package viewer shows a chart in the browser and delivers pointer events back to the chart.
package viewer

import (
	"bytes"
	"candlelight/canvas"
	"candlelight/stockplot"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

const (
	PathIndex = "/"
	PathSvg   = "/chart.svg"
	PathWs    = "/ws"
)

const shutdownTimeout = 5 * time.Second

//go:embed assets
var assets embed.FS

// PointerMessage is sent by the browser for every pointer event.
type PointerMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ChartMessage is sent to the browser after each pointer event.
type ChartMessage struct {
	Type string `json:"type"`
	Svg  string `json:"svg"`
}

var ErrUnknownEvent = errors.New("unknown pointer event")

var eventTypes = map[string]canvas.EventType{
	"move": canvas.PointerMove,
	"down": canvas.PointerDown,
	"up":   canvas.PointerUp,
}

func ParseEventType(s string) (canvas.EventType, error) {
	t, ok := eventTypes[s]
	if !ok {
		names := maps.Keys(eventTypes)
		sort.Strings(names)
		return 0, fmt.Errorf("%w %q, expected one of %s", ErrUnknownEvent, s, strings.Join(names, ", "))
	}
	return t, nil
}

type indexData struct {
	Title  string
	SVG    template.HTML
	WsPath string
}

// Server hosts a single chart. Pointer events of all clients are delivered serially.
type Server struct {
	chartMutex sync.Mutex
	chart      *stockplot.Chart
	router     *mux.Router
	upgrader   websocket.Upgrader
	index      *template.Template
	log        *logrus.Logger
}

// NewServer expects a chart which has already been drawn.
func NewServer(chart *stockplot.Chart, log *logrus.Logger) (*Server, error) {
	if chart == nil || chart.Surface() == nil {
		return nil, errors.New("chart has not been drawn")
	}
	index, err := template.ParseFS(assets, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	s := &Server{
		chart: chart,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		index: index,
		log:   log,
	}
	s.router = mux.NewRouter()
	s.router.HandleFunc(PathIndex, s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc(PathSvg, s.handleSvg).Methods(http.MethodGet)
	s.router.HandleFunc(PathWs, s.handleWs)
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Serving chart on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) svg() (string, error) {
	var b bytes.Buffer
	if _, err := s.chart.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// dispatch delivers a pointer event to the chart surface and returns the updated chart.
func (s *Server) dispatch(msg PointerMessage) (string, error) {
	eventType, err := ParseEventType(msg.Type)
	if err != nil {
		return "", err
	}
	s.chartMutex.Lock()
	defer s.chartMutex.Unlock()
	surface := s.chart.Surface()
	if surface == nil {
		return "", errors.New("chart has not been drawn")
	}
	surface.Dispatch(canvas.Event{Type: eventType, X: msg.X, Y: msg.Y})
	return s.svg()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.chartMutex.Lock()
	svg, err := s.svg()
	title := s.chart.Title()
	s.chartMutex.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = s.index.Execute(w, indexData{
		Title:  title,
		SVG:    template.HTML(svg),
		WsPath: PathWs,
	})
	if err != nil {
		s.log.Warnf("Failed to render index page: %v", err)
	}
}

func (s *Server) handleSvg(w http.ResponseWriter, r *http.Request) {
	s.chartMutex.Lock()
	svg, err := s.svg()
	s.chartMutex.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("Failed to upgrade connection to websocket: %v", err)
		return
	}
	defer conn.Close()
	for {
		var msg PointerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warnf("Websocket read error: %v", err)
			}
			return
		}
		svg, err := s.dispatch(msg)
		if err != nil {
			s.log.Warnf("Ignoring pointer event: %v", err)
			continue
		}
		if err := conn.WriteJSON(ChartMessage{Type: "svg", Svg: svg}); err != nil {
			s.log.Warnf("Websocket write error: %v", err)
			return
		}
	}
}
