package http

import (
	"net/http"

	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// SigningHandler handles the sign and verify endpoints.
type SigningHandler struct {
	KeyService *service.Service
}

// HandleSign handles POST /v1/openpgp/sign/{name}
//
//	@Summary		Sign Data
//	@Description	Produces a detached signature over the base64-encoded input. The newest live signing subkey signs; without subkeys the master key does.
//	@Tags			Signing
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string					true	"Key name"
//	@Param			request	body		sigilsdk.SignRequest	true	"Signing parameters"
//	@Success		200		{object}	sigilsdk.Envelope		"request_id, signature"
//	@Failure		400		{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/sign/{name} [post].
func (h *SigningHandler) HandleSign(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := decodeParams(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	sig, err := h.KeyService.SignData(r.Context(), name, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, sigilsdk.SignatureData{Signature: sig.Signature})
}

// HandleVerify handles POST /v1/openpgp/verify/{name}
//
//	@Summary		Verify Signed Data
//	@Description	Checks a detached signature against the named key. A well-formed request always answers 200 with a verdict; valid=false covers every way a signature can fail to check out.
//	@Tags			Signing
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string					true	"Key name"
//	@Param			request	body		sigilsdk.VerifyRequest	true	"Verification parameters"
//	@Success		200		{object}	sigilsdk.Envelope		"request_id, verdict"
//	@Failure		400		{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/verify/{name} [post].
func (h *SigningHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := decodeParams(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	verdict, err := h.KeyService.VerifySignedData(r.Context(), name, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, sigilsdk.VerifyData{Valid: verdict.Valid})
}
