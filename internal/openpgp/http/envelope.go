package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/pkg/httpx"
	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
	"github.com/aussiebroadwan/sigil/pkg/slogx"
)

// writeData writes the success envelope carrying the request ID and the
// operation payload. data may be nil for operations that return nothing;
// the envelope is still sent so every success has the same shape.
func writeData(w http.ResponseWriter, r *http.Request, data any) {
	httpx.WriteJSON(w, http.StatusOK, sigilsdk.Envelope{
		RequestID: slogx.RequestID(r.Context()),
		Data:      data,
	})
}

// writeErrors writes the failure body shared by every endpoint.
func writeErrors(w http.ResponseWriter, code int, msgs ...string) {
	httpx.WriteJSON(w, code, sigilsdk.ErrorResponse{Errors: msgs})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal failure: logged in full,
// reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedParam),
		errors.Is(err, service.ErrParamValidation),
		errors.Is(err, service.ErrInvalidRequest):
		writeErrors(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeErrors(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeErrors(w, http.StatusForbidden, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("openpgp operation failed", "error", err)
		writeErrors(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeParams decodes an optional JSON object body into a parameter map.
// An empty body is an empty map, so operations whose parameters all have
// defaults can be called bare. Unknown members survive the decode and are
// rejected by the service's allow-list, not silently dropped here.
func decodeParams(r *http.Request) (domain.Params, error) {
	var p domain.Params
	err := json.NewDecoder(r.Body).Decode(&p)
	if errors.Is(err, io.EOF) {
		return domain.Params{}, nil
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = domain.Params{}
	}
	return p, nil
}
