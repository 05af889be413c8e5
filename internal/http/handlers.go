package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"financeiro/internal/services"
	"financeiro/internal/storage"
)

type addLancamentoRequest struct {
	Tipo      string     `json:"tipo"`
	Descricao string     `json:"descricao"`
	Valor     valorField `json:"valor"`
	Data      string     `json:"data"`
	Categoria string     `json:"categoria"`
}

// valorField accepts the amount as either a JSON number or a string,
// keeping the exact textual form for decimal parsing.
type valorField string

func (v *valorField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = unquoted
	}
	*v = valorField(s)
	return nil
}

func (s *Server) handleLancamentos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createLancamento(w, r)
	case http.MethodGet:
		s.listLancamentos(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) createLancamento(w http.ResponseWriter, r *http.Request) {
	var req addLancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errBadRequest("corpo da requisição inválido"))
		return
	}

	id, err := s.ledger.AddEntry(r.Context(), req.Tipo, req.Descricao, string(req.Valor), req.Data, req.Categoria)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) listLancamentos(w http.ResponseWriter, r *http.Request) {
	inicio := strings.TrimSpace(r.URL.Query().Get("inicio"))
	fim := strings.TrimSpace(r.URL.Query().Get("fim"))

	var (
		list interface{}
		err  error
	)
	if inicio != "" || fim != "" {
		list, err = s.ledger.ListEntriesInRange(r.Context(), inicio, fim)
	} else {
		list, err = s.ledger.ListEntries(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSaldo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	saldo, err := s.ledger.Balance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"saldo": saldo})
}

func (s *Server) handleImportNFE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Arquivo string `json:"arquivo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errBadRequest("corpo da requisição inválido"))
		return
	}

	// Typed not-implemented result; the client branches on status
	writeJSON(w, http.StatusOK, s.ledger.ImportNFEXML(r.Context(), req.Arquivo))
}

func (s *Server) handleImportar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, r, errBadRequest("upload multipart inválido"))
		return
	}

	var files []services.UploadedFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["arquivos"] {
			f, err := header.Open()
			if err != nil {
				writeError(w, r, errBadRequest("não foi possível ler o arquivo "+header.Filename))
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				writeError(w, r, errBadRequest("não foi possível ler o arquivo "+header.Filename))
				return
			}
			files = append(files, services.UploadedFile{Name: header.Filename, Data: data})
		}
	}

	summary, err := s.ingestor.IngestBatch(r.Context(), files)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	filter := storage.DashboardFilter{
		DataInicial: strings.TrimSpace(q.Get("data_inicial")),
		DataFinal:   strings.TrimSpace(q.Get("data_final")),
		Produto:     strings.TrimSpace(q.Get("produto")),
	}

	dash, err := s.analytics.Dashboard(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dash)
}
