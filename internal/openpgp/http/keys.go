package http

import (
	"net/http"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// KeysHandler handles all master key endpoints.
type KeysHandler struct {
	KeyService *service.Service
}

// HandleCreate handles POST /v1/openpgp/keys/{name}
//
//	@Summary		Create Key
//	@Description	Mints a named OpenPGP master key. Creating over an existing name fails and leaves the existing key untouched.
//	@Tags			Keys
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string						true	"Key name"
//	@Param			request	body		sigilsdk.CreateKeyRequest	false	"Key parameters"
//	@Success		200		{object}	sigilsdk.Envelope			"request_id, null data"
//	@Failure		400		{object}	sigilsdk.ErrorResponse		"errors"
//	@Failure		401		{object}	sigilsdk.ErrorResponse		"errors"
//	@Router			/v1/openpgp/keys/{name} [post].
func (h *KeysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := decodeParams(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if err := h.KeyService.CreateKey(r.Context(), name, params); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, nil)
}

// HandleRead handles GET /v1/openpgp/keys/{name}
//
//	@Summary		Read Key
//	@Description	Returns the public view of a key: fingerprint, armored public keyring and exportability. Private material is never included.
//	@Tags			Keys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string					true	"Key name"
//	@Success		200		{object}	sigilsdk.Envelope		"request_id, key data"
//	@Failure		404		{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/keys/{name} [get].
func (h *KeysHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	key, err := h.KeyService.ReadKey(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, sigilsdk.KeyData{
		Fingerprint: key.Fingerprint,
		PublicKey:   key.PublicKey,
		Exportable:  key.Exportable,
	})
}

// HandleList handles GET /v1/openpgp/keys
//
//	@Summary		List Keys
//	@Description	Returns all key names, sorted. An empty key store answers 404 rather than an empty list.
//	@Tags			Keys
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	sigilsdk.Envelope		"request_id, key names"
//	@Failure		404	{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/keys [get].
func (h *KeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	names, err := h.KeyService.ListKeys(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, sigilsdk.ListKeysData{Keys: names})
}

// HandleDelete handles DELETE /v1/openpgp/keys/{name}
//
//	@Summary		Delete Key
//	@Description	Removes a key and all its subkeys. Deleting an absent name succeeds.
//	@Tags			Keys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name	path		string				true	"Key name"
//	@Success		200		{object}	sigilsdk.Envelope	"request_id, null data"
//	@Router			/v1/openpgp/keys/{name} [delete].
func (h *KeysHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := h.KeyService.DeleteKey(r.Context(), name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, nil)
}

// HandleExport handles GET /v1/openpgp/export/{name}
//
//	@Summary		Export Key
//	@Description	Returns the ASCII-armored private keyring of an exportable key. Keys created without exportable=true answer 403.
//	@Tags			Keys
//	@Produce		json
//	@Security		TokenAuth
//	@Param			name		path		string					true	"Key name"
//	@Param			key_type	query		string					false	"Usage hint (signing-key, encryption-key); the same keyring is returned either way"
//	@Success		200			{object}	sigilsdk.Envelope		"request_id, name and armored private key"
//	@Failure		403			{object}	sigilsdk.ErrorResponse	"errors"
//	@Failure		404			{object}	sigilsdk.ErrorResponse	"errors"
//	@Router			/v1/openpgp/export/{name} [get].
func (h *KeysHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// Query members become parameters verbatim so unknown names hit the
	// same allow-list rejection as unknown body members.
	params := domain.Params{}
	for param := range r.URL.Query() {
		params[param] = r.URL.Query().Get(param)
	}

	export, err := h.KeyService.ExportKey(r.Context(), name, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, sigilsdk.ExportData{
		Name: export.Name,
		Key:  export.Key,
	})
}
