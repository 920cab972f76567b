package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/timeline"
)

// FrameSource provides the most recently streamed frame.
type FrameSource interface {
	LastFrame() (*stream.Frame, timeline.TimeStamp)
}

// FrameResponse is the JSON body of /frame.
type FrameResponse struct {
	Time   string   `json:"time"`
	Pixels []string `json:"pixels"`
}

type Api struct {
	listen string
	static string
	frames FrameSource
	logger *slog.Logger
}

// NewApi creates an instance of an Api that serves the client from static and
// previews frames from frames.
func NewApi(listen, static string, frames FrameSource, logger *slog.Logger) *Api {
	a := new(Api)
	a.listen = listen
	a.static = static
	a.frames = frames
	a.logger = logger
	return a
}

// Handler returns the routes served by the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame", a.handleFrame)
	mux.Handle("/", http.FileServer(http.Dir(a.static)))
	return mux
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f, at := a.frames.LastFrame()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(FrameResponse{Time: at.String(), Pixels: f.Hex()}); err != nil {
		a.logger.Warn("writing frame", "err", err)
	}
}

// Serve listens until ctx is done, then shuts the server down.
func (a *Api) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.listen,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.listen)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("serving api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down api: %w", err)
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving api: %w", err)
	}
	return nil
}
