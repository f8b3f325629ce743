package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"davenews/feed"
	"davenews/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Server is the feed HTTP server
type Server struct {
	view       *feed.View
	log        *zap.Logger
	httpServer *http.Server
	cron       *cron.Cron
	cronID     cron.EntryID
	mu         sync.Mutex
}

// NewServer creates a feed server listening on addr
func NewServer(view *feed.View, addr string, log *zap.Logger) *Server {
	log = logger.OrNop(log)
	return &Server{
		view: view,
		log:  log,
		cron: cron.New(),
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewRouter(view, log),
		},
	}
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start issues the mount fetch and starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("starting feed server", zap.String("addr", s.httpServer.Addr))

	req := s.view.Mount()
	go s.view.Run(context.Background(), req)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// StartCron schedules automatic feed refreshes. An empty schedule disables them.
func (s *Server) StartCron(schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		s.log.Info("scheduled refresh disabled")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(schedule, s.scheduledRefresh)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cronID = id
	s.cron.Start()
	s.log.Info("scheduled refresh started", zap.String("schedule", schedule))
	return nil
}

// scheduledRefresh refreshes the current selection unless a fetch is pending
func (s *Server) scheduledRefresh() {
	if phase := s.view.State().Phase(); phase == feed.PhaseLoading {
		s.log.Info("scheduled refresh skipped: fetch in flight")
		return
	}

	s.log.Info("scheduled refresh triggered")
	s.view.Run(context.Background(), s.view.Refresh())
}

// Shutdown stops the scheduler and gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down feed server")

	if s.cron != nil {
		select {
		case <-s.cron.Stop().Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return s.httpServer.Shutdown(ctx)
}
