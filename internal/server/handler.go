package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/internal/output"
	smiddleware "github.com/rpgo/safeharbor/internal/server/middleware"
	"github.com/rpgo/safeharbor/internal/store"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; inputs are four short strings
const maxBodyBytes = 1 << 16

type Handler struct {
	constants *domain.TaxYearConstants
	store     store.Store
}

// NewHandler creates the API handler. A nil store disables input persistence.
func NewHandler(constants *domain.TaxYearConstants, s store.Store) *Handler {
	return &Handler{constants: constants, store: s}
}

type errorResponse struct {
	Error string `json:"error"`
}

type explainResponse struct {
	TaxYear           int                           `json:"tax_year"`
	RecommendedMethod string                        `json:"recommended_method"`
	Headline          string                        `json:"headline"`
	Steps             []calculation.ExplanationStep `json:"steps"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(r, w, http.StatusOK, h.constants)
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	report, ok := h.calculate(w, r)
	if !ok {
		return
	}
	writeJSON(r, w, http.StatusOK, output.NewJSONDocument(report))
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	report, ok := h.calculate(w, r)
	if !ok {
		return
	}
	writeJSON(r, w, http.StatusOK, explainResponse{
		TaxYear:           report.Result.TaxYear,
		RecommendedMethod: report.Result.RecommendedMethod(),
		Headline:          output.AnalyzeResult(report.Result).Headline(),
		Steps:             report.Steps(),
	})
}

// BreakEven reports the profit at which both payment methods cost the same.
// current_year_profit may be omitted.
func (h *Handler) BreakEven(w http.ResponseWriter, r *http.Request) {
	_, inputs, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	be, err := h.engine(r).CalculateBreakEvenProfit(inputs)
	if err != nil {
		writeError(r, w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(r, w, http.StatusOK, be)
}

func (h *Handler) GetInputs(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(r, w, http.StatusNotFound, "input persistence is disabled")
		return
	}
	raw, err := store.LoadRawInputs(h.store)
	if errors.Is(err, store.ErrKeyNotFound) {
		writeError(r, w, http.StatusNotFound, "no saved inputs")
		return
	}
	if err != nil {
		smiddleware.FromContext(r.Context()).Error("failed to load inputs", zap.Error(err))
		writeError(r, w, http.StatusInternalServerError, "failed to load inputs")
		return
	}
	writeJSON(r, w, http.StatusOK, raw)
}

func (h *Handler) ClearInputs(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := store.ClearInputs(h.store); err != nil {
			smiddleware.FromContext(r.Context()).Error("failed to clear inputs", zap.Error(err))
			writeError(r, w, http.StatusInternalServerError, "failed to clear inputs")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeInputs reads and validates raw inputs from the request body. It writes
// the error response itself and reports whether the caller should continue.
func (h *Handler) decodeInputs(w http.ResponseWriter, r *http.Request) (domain.RawInputs, domain.TaxInputs, bool) {
	var raw domain.RawInputs
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		writeError(r, w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return raw, domain.TaxInputs{}, false
	}
	inputs, err := raw.Parse()
	if err != nil {
		writeError(r, w, http.StatusUnprocessableEntity, err.Error())
		return raw, domain.TaxInputs{}, false
	}
	return raw, inputs, true
}

func (h *Handler) engine(r *http.Request) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithConstants(h.constants)
	engine.SetLogger(smiddleware.FromContext(r.Context()).Sugar())
	return engine
}

// calculate runs the engine on the request inputs and persists them when a
// store is configured.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (*output.Report, bool) {
	logger := smiddleware.FromContext(r.Context())

	raw, inputs, ok := h.decodeInputs(w, r)
	if !ok {
		return nil, false
	}
	if inputs.CurrentYearProfit.IsNegative() {
		logger.Warn("negative current year profit", zap.String("profit", inputs.CurrentYearProfit.String()))
	}

	if h.store != nil {
		if err := store.SaveInputs(h.store, raw); err != nil {
			logger.Warn("failed to persist inputs", zap.Error(err))
		}
	}

	return output.NewReport(h.engine(r).Calculate(inputs), h.constants), true
}

func writeJSON(r *http.Request, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		smiddleware.FromContext(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}

func writeError(r *http.Request, w http.ResponseWriter, status int, msg string) {
	writeJSON(r, w, status, errorResponse{Error: msg})
}
