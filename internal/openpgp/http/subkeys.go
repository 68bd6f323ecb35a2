package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// SubkeysHandler handles all subkey endpoints.
type SubkeysHandler struct {
	KeyService *service.Service
}

// HandleCreate handles POST /v1/openpgp/keys/{name}/subkeys
//
//	@Summary		Create Subkey
//	@Description	Mints a signing subkey bound to the named master key. The subkey's expiration is independent of the parent's.
//	@Tags			Subkeys
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string						true	"Parent key name"
//	@Param			request	body		sigilsdk.CreateSubkeyRequest	false	"Subkey parameters"
//	@Success		200		{object}	sigilsdk.Envelope			"request_id, subkey data"
//	@Failure		400		{object}	sigilsdk.ErrorResponse		"errors"
//	@Router			/v1/openpgp/keys/{name}/subkeys [post].
func (h *SubkeysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := decodeParams(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	sub, err := h.KeyService.CreateSubkey(r.Context(), name, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, subkeyData(sub))
}

// HandleRead handles GET /v1/openpgp/keys/{name}/subkeys/{keyID}
//
//	@Summary		Read Subkey
//	@Description	Returns the public view of one subkey.
//	@Tags			Subkeys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string					true	"Parent key name"
//	@Param			keyID	path		string					true	"Subkey ID (16 hex characters)"
//	@Success		200		{object}	sigilsdk.Envelope		"request_id, subkey data"
//	@Failure		404		{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/keys/{name}/subkeys/{keyID} [get].
func (h *SubkeysHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	keyID := r.PathValue("keyID")

	sub, err := h.KeyService.ReadSubkey(r.Context(), name, keyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, subkeyData(sub))
}

// HandleList handles GET /v1/openpgp/keys/{name}/subkeys
//
//	@Summary		List Subkeys
//	@Description	Returns the subkey IDs of a key in creation order. A key without subkeys answers an empty list, not 404.
//	@Tags			Subkeys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string					true	"Parent key name"
//	@Success		200		{object}	sigilsdk.Envelope		"request_id, subkey IDs"
//	@Failure		404		{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/keys/{name}/subkeys [get].
func (h *SubkeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	ids, err := h.KeyService.ListSubkeys(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	writeData(w, r, sigilsdk.ListSubkeysData{KeyIDs: ids})
}

// HandleDelete handles DELETE /v1/openpgp/keys/{name}/subkeys/{keyID}
//
//	@Summary		Delete Subkey
//	@Description	Withdraws a subkey's signing authority. Previously issued signatures from this subkey stop verifying. Deleting an absent subkey succeeds.
//	@Tags			Subkeys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string				true	"Parent key name"
//	@Param			keyID	path		string				true	"Subkey ID (16 hex characters)"
//	@Success		200		{object}	sigilsdk.Envelope	"request_id, null data"
//	@Router			/v1/openpgp/keys/{name}/subkeys/{keyID} [delete].
func (h *SubkeysHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	keyID := r.PathValue("keyID")

	if err := h.KeyService.DeleteSubkey(r.Context(), name, keyID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, nil)
}

func subkeyData(sub service.SubkeyInfo) sigilsdk.SubkeyData {
	data := sigilsdk.SubkeyData{
		KeyID:       sub.KeyID,
		KeyType:     string(sub.KeyType),
		Fingerprint: sub.Fingerprint,
		CreatedAt:   sub.CreatedAt.Format(time.RFC3339),
	}
	if sub.ExpiresAt != nil {
		data.ExpiresAt = sub.ExpiresAt.Format(time.RFC3339)
	}
	return data
}
