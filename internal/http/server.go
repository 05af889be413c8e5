// Package http is the thin JSON API over the ledger, ingestion and
// analytics services.
package http

import (
	"net/http"
	"time"

	applog "financeiro/internal/log"
)

// Server wires the services into HTTP routes.
type Server struct {
	ledger    LedgerAPI
	ingestor  IngestAPI
	analytics AnalyticsAPI

	maxUploadBytes int64
	logger         *applog.Logger
}

// NewServer builds the API server. maxUploadBytes bounds the multipart
// memory used by report imports.
func NewServer(addr string, ledger LedgerAPI, ingestor IngestAPI, analytics AnalyticsAPI, maxUploadBytes int64, logger *applog.Logger) *http.Server {
	s := &Server{
		ledger:         ledger,
		ingestor:       ingestor,
		analytics:      analytics,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.WithComponent(applog.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lancamentos", s.handleLancamentos)
	mux.HandleFunc("/api/lancamentos/importar-nfe", s.handleImportNFE)
	mux.HandleFunc("/api/saldo", s.handleSaldo)
	mux.HandleFunc("/api/bi/99food/importar", s.handleImportar)
	mux.HandleFunc("/api/bi/99food/dashboard", s.handleDashboard)
	mux.HandleFunc("/healthz", s.handleHealth)

	handler := applog.RequestLogger(logger)(mux)

	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
