package reportserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/a-h/templ"

	"dilemma/internal/report"
	"dilemma/internal/runner"
)

// NewHandler builds the HTTP handler for a results file. The file is read
// on every request so a rerun shows up without a restart.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ResultsPath == "" {
		return nil, errors.New("reportserver: results path is required")
	}
	if _, err := os.Stat(cfg.ResultsPath); err != nil {
		return nil, fmt.Errorf("reportserver: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", serveReport(cfg.ResultsPath))
	mux.Handle("GET /results.json", serveResultsJSON(cfg.ResultsPath))
	mux.Handle("GET /results.csv", serveResultsCSV(cfg.ResultsPath))
	return mux, nil
}

// serveReport renders the HTML report page.
func serveReport(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results, err := report.LoadResults(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		templ.Handler(report.ReportPage(results)).ServeHTTP(w, r)
	})
}

// serveResultsJSON serves the results file from disk.
func serveResultsJSON(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, path)
	})
}

// serveResultsCSV exports the rounds as CSV.
func serveResultsCSV(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results, err := report.LoadResults(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+runner.CSVFileName+"\"")
		if err := runner.WriteCSV(w, results.Rounds); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
