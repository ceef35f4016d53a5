package httptransport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	contracts "nidx/contracts/nid"
	"nidx/internal/platform/middleware"
	"nidx/pkg/nid"
)

// Service defines the validation operations the transport delegates to.
// It returns wire DTOs, not engine types, so transport stays thin.
//
//go:generate mockgen -source=handlers.go -destination=mocks/service-mocks.go -package=mocks Service
type Service interface {
	Decode(ctx context.Context, country, code string) (*contracts.DecodeResult, error)
	Validate(ctx context.Context, country, code string) bool
	ValidateBatch(ctx context.Context, country string, codes []string) ([]contracts.BatchItem, error)
}

// TokenIssuer mints bearer tokens for the batch endpoint.
type TokenIssuer interface {
	Issue(subject string, now time.Time) (string, error)
}

// Handler is the thin HTTP layer. It delegates to the validation service
// without embedding engine logic so transport concerns remain isolated.
type Handler struct {
	service    Service
	tokens     TokenIssuer
	logger     *slog.Logger
	batchLimit int
}

func NewHandler(service Service, tokens TokenIssuer, logger *slog.Logger, batchLimit int) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		logger:     logger,
		batchLimit: batchLimit,
	}
}

// HandleDecode decodes one code into its structured record.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decodeAndPrepare[DecodeRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Decode(ctx, req.Country, req.Code)
	if err != nil {
		h.logger.InfoContext(ctx, "decode rejected",
			"country", req.Country,
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleValidate returns a bare validity verdict. Error kinds are never
// exposed here, matching the engine's is_valid surface.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndPrepare[ValidateRequest](w, r, h.logger)
	if !ok {
		return
	}

	valid := h.service.Validate(r.Context(), req.Country, req.Code)
	writeJSON(w, http.StatusOK, contracts.ValidateResult{Valid: valid})
}

// HandleValidateBatch validates up to batchLimit codes in one request.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decodeAndPrepare[BatchValidateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if len(req.Codes) > h.batchLimit {
		writeBadRequest(w, fmt.Sprintf("batch size %d exceeds limit %d", len(req.Codes), h.batchLimit))
		return
	}

	items, err := h.service.ValidateBatch(ctx, req.Country, req.Codes)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation failed",
			"country", req.Country,
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// HandleCountries lists the supported country modules and whether each
// supports full decoding or only validation.
func (h *Handler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	mods := nid.Countries()
	out := make([]contracts.CountryInfo, 0, len(mods))
	for _, m := range mods {
		out = append(out, contracts.CountryInfo{
			Country:   string(m.Country()),
			CanDecode: m.CanDecode(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": out})
}

// HandleIssueToken mints a bearer token for the batch endpoint. The route
// is guarded by the admin token middleware.
func (h *Handler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Subject string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Subject == "" {
		writeBadRequest(w, "subject is required")
		return
	}

	tok, err := h.tokens.Issue(req.Subject, time.Now())
	if err != nil {
		h.logger.ErrorContext(ctx, "token issuance failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": tok})
}

// HandleHealthz reports liveness. The engine holds no resources, so being
// up is being healthy.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// preparable is satisfied by pointer request types that normalize and
// validate themselves after JSON decoding.
type preparable[T any] interface {
	*T
	Normalize()
	Validate() error
}

// decodeAndPrepare decodes the JSON body, then normalizes and validates
// the request. On failure it writes the error envelope and returns false.
func decodeAndPrepare[T any, PT preparable[T]](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(r.Context(), "failed to decode request body",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeBadRequest(w, "invalid request body")
		return nil, false
	}
	p := PT(&req)
	p.Normalize()
	if err := p.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return nil, false
	}
	return &req, true
}
