package sigilsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateKey mints a named master key. Creating over an existing name fails
// with IsInvalidRequest; the existing key is untouched.
func (c *Client) CreateKey(ctx context.Context, name string, req CreateKeyRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/openpgp/keys/"+url.PathEscape(name), req)
	if err != nil {
		return err
	}

	return decodeEnvelope(resp, nil, http.StatusOK)
}

// ReadKey returns the public view of a key: fingerprint, armored public
// keyring and exportability. Private material is never included.
func (c *Client) ReadKey(ctx context.Context, name string) (*KeyData, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/openpgp/keys/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	var key KeyData
	if err := decodeEnvelope(resp, &key, http.StatusOK); err != nil {
		return nil, err
	}

	return &key, nil
}

// ListKeys returns all key names, sorted. An empty key store answers with
// IsNotFound rather than an empty list.
func (c *Client) ListKeys(ctx context.Context) ([]string, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/openpgp/keys", nil)
	if err != nil {
		return nil, err
	}

	var list ListKeysData
	if err := decodeEnvelope(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Keys, nil
}

// DeleteKey removes a key and all its subkeys. Deleting an absent name
// succeeds.
func (c *Client) DeleteKey(ctx context.Context, name string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/v1/openpgp/keys/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}

	return decodeEnvelope(resp, nil, http.StatusOK)
}

// ExportKey returns the private keyring of an exportable key. keyType is an
// optional usage hint ("signing-key", "encryption-key"); the service returns
// the same keyring either way. Non-exportable keys answer IsForbidden.
func (c *Client) ExportKey(ctx context.Context, name, keyType string) (*ExportData, error) {
	path := "/v1/openpgp/export/" + url.PathEscape(name)
	if keyType != "" {
		path += "?key_type=" + url.QueryEscape(keyType)
	}

	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var export ExportData
	if err := decodeEnvelope(resp, &export, http.StatusOK); err != nil {
		return nil, err
	}

	return &export, nil
}
