package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "tabula.dev/sudoku/internal/adapters/http"
	"tabula.dev/sudoku/internal/checker"
	"tabula.dev/sudoku/internal/hint"
	"tabula.dev/sudoku/internal/infrastructure/storage"
	"tabula.dev/sudoku/internal/solver"
	"tabula.dev/sudoku/internal/usecase"
)

var (
	serveAddr    string
	servePersist string
	serveLevel   string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
	serveCmd.Flags().StringVar(&serveLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(serveLevel)}))
	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return err
	}

	uc := usecase.NewService(
		solver.NewBacktracking(),
		checker.New(),
		hint.NewSingles(),
		storage.NewFS(servePersist),
	)
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "persist", servePersist)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
