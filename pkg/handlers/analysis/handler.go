package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/entity-atlas/pkg/adapters"
	"github.com/de-tools/entity-atlas/pkg/ingest"
	"github.com/de-tools/entity-atlas/pkg/models/api"
	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/de-tools/entity-atlas/pkg/services/brief"
	"github.com/rs/zerolog"
)

const (
	defaultMaxUploadBytes = 32 << 20

	hierarchyField    = "hierarchy"
	transactionsField = "transactions"
)

type Handler struct {
	runner         analysis.Runner
	maxUploadBytes int64
}

func NewHandler(runner analysis.Runner, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{
		runner:         runner,
		maxUploadBytes: maxUploadBytes,
	}
}

// Analyze runs an analysis over records posted as JSON.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := h.decodeRequest(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	report := adapters.MapAnalysisDomainToApi(h.runner.Run(ctx, in))
	writeJSON(w, r, http.StatusOK, report)
}

// Upload runs an analysis over a multipart form carrying the hierarchy and the
// transactions files. The file extension selects csv, tsv or xlsx parsing.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("failed to parse upload: %w", err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Warn().Err(err).Msg("failed to remove multipart temp files")
		}
	}()

	entities, err := formFile(r, hierarchyField, ingest.ParseHierarchy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	rows, err := formFile(r, transactionsField, ingest.ParseTransactions)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	a := h.runner.Run(ctx, analysis.Input{Entities: entities, Transactions: rows})
	writeJSON(w, r, http.StatusOK, adapters.MapAnalysisDomainToApi(a))
}

// Brief renders the plain-text context brief for records posted as JSON.
func (h *Handler) Brief(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	in, err := h.decodeRequest(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := brief.Render(w, h.runner.Run(ctx, in)); err != nil {
		logger.Error().Err(err).Msg("failed to render brief")
	}
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (analysis.Input, error) {
	var req api.AnalysisRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err := dec.Decode(&req); err != nil {
		return analysis.Input{}, fmt.Errorf("failed to decode request: %w", err)
	}

	in := analysis.Input{
		Entities:     make([]domain.Entity, 0, len(req.Entities)),
		Transactions: make([]domain.TransactionRow, 0, len(req.Transactions)),
	}
	for _, e := range req.Entities {
		in.Entities = append(in.Entities, adapters.MapEntityApiToDomain(e))
	}
	for _, t := range req.Transactions {
		in.Transactions = append(in.Transactions, adapters.MapTransactionApiToDomain(t))
	}

	if err := ingest.ValidateEntities(in.Entities); err != nil {
		return analysis.Input{}, err
	}
	if err := ingest.ValidateTransactions(in.Transactions); err != nil {
		return analysis.Input{}, err
	}
	return in, nil
}

func formFile[T any](r *http.Request, field string, parse func(io.Reader, ingest.Format) ([]T, error)) ([]T, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("missing form file %q", field)
		}
		return nil, fmt.Errorf("failed to read form file %q: %w", field, err)
	}
	defer file.Close()

	format, err := ingest.FormatFromFilename(header.Filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return parse(file, format)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Warn().
		Err(err).
		Int("status", status).
		Msg("request rejected")
	writeJSON(w, r, status, api.Error{Error: err.Error()})
}
