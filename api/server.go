package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledseq/sequence"
	"github.com/matt-g-everett/ledseq/stream"
)

// Controller is the update loop as seen from HTTP handlers.
type Controller interface {
	Submit(ctx context.Context, cmd stream.Command) error
	Status() stream.Status
}

type Api struct {
	controller Controller
	mux        *http.ServeMux
}

// NewApi creates an Api forwarding to controller. When static is not empty
// its files are served from the root.
func NewApi(controller Controller, static string) *Api {
	a := new(Api)
	a.controller = controller
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("GET /sequence", a.handleStatus)
	a.mux.HandleFunc("POST /sequence/{command}", a.handleCommand)
	if static != "" {
		a.mux.Handle("/", http.FileServer(http.Dir(static)))
	}
	return a
}

func (a *Api) Handler() http.Handler { return a.mux }

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to shut down API server: %v", err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.controller.Status())
}

func (a *Api) handleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := stream.ParseCommand(r.PathValue("command"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	err = a.controller.Submit(r.Context(), cmd)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, sequence.ErrAlreadyPlaying):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, stream.ErrStopped), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Printf("Command %s failed: %v", cmd, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
