package sigilsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateSubkey mints a signing subkey bound to the named master key and
// returns its public view. A missing parent answers IsInvalidRequest.
func (c *Client) CreateSubkey(ctx context.Context, name string, req CreateSubkeyRequest) (*SubkeyData, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/openpgp/keys/"+url.PathEscape(name)+"/subkeys", req)
	if err != nil {
		return nil, err
	}

	var sub SubkeyData
	if err := decodeEnvelope(resp, &sub, http.StatusOK); err != nil {
		return nil, err
	}

	return &sub, nil
}

// ReadSubkey returns the public view of one subkey.
func (c *Client) ReadSubkey(ctx context.Context, name, keyID string) (*SubkeyData, error) {
	path := "/v1/openpgp/keys/" + url.PathEscape(name) + "/subkeys/" + url.PathEscape(keyID)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var sub SubkeyData
	if err := decodeEnvelope(resp, &sub, http.StatusOK); err != nil {
		return nil, err
	}

	return &sub, nil
}

// ListSubkeys returns the subkey IDs of a key in creation order. A key
// without subkeys answers an empty list, not IsNotFound.
func (c *Client) ListSubkeys(ctx context.Context, name string) ([]string, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/openpgp/keys/"+url.PathEscape(name)+"/subkeys", nil)
	if err != nil {
		return nil, err
	}

	var list ListSubkeysData
	if err := decodeEnvelope(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.KeyIDs, nil
}

// DeleteSubkey withdraws a subkey's signing authority. Deleting an absent
// subkey, or a subkey of an absent key, succeeds.
func (c *Client) DeleteSubkey(ctx context.Context, name, keyID string) error {
	path := "/v1/openpgp/keys/" + url.PathEscape(name) + "/subkeys/" + url.PathEscape(keyID)
	resp, err := c.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	return decodeEnvelope(resp, nil, http.StatusOK)
}
