package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"nidx/pkg/nid"
)

// errorResponse is the JSON error envelope shared by every endpoint.
type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// writeError centralizes domain error translation to HTTP responses so
// every handler produces the same envelopes.
//
// Mapping: unknown selector -> 404; decode on a validate-only country ->
// 400; the three validation kinds -> 422 with a kind-specific code;
// anything else -> 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	var nidErr *nid.Error
	switch {
	case errors.Is(err, nid.ErrUnknownCountry):
		status = http.StatusNotFound
		code = "unknown_country"
	case errors.Is(err, nid.ErrDecodeNotSupported):
		status = http.StatusBadRequest
		code = "decode_not_supported"
	case errors.As(err, &nidErr):
		status = http.StatusUnprocessableEntity
		switch nidErr.Kind {
		case nid.KindFormat:
			code = "invalid_format"
		case nid.KindChecksum:
			code = "checksum_mismatch"
		case nid.KindInvalidDate:
			code = "invalid_date"
		}
	}

	writeJSON(w, status, errorResponse{Error: code, Description: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, description string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Description: description})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
