package sigilsdk

// ============================================================================
// Response Envelopes
// ============================================================================

// Envelope wraps every successful response from the service. Handlers fill
// Data with the operation's payload, or leave it null for operations that
// return nothing (create key, deletes).
type Envelope struct {
	// RequestID is the ULID assigned to the request, also echoed in the
	// X-Request-ID header and in service logs.
	RequestID string `json:"request_id"`

	// Data is the operation-specific payload.
	Data any `json:"data"`
}

// ErrorResponse is the failure body: a flat list of error strings.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// ============================================================================
// Key Types
// ============================================================================

// CreateKeyRequest carries the parameters for minting a master key.
// Every field is optional; zero values are omitted from the request body
// and the service applies its defaults (rsa-4096, not exportable, no
// identity, no expiration).
type CreateKeyRequest struct {
	// KeyType selects the algorithm: rsa-2048, rsa-4096, ecc-p256 or ed25519.
	KeyType string `json:"key_type,omitempty"`

	// Exportable permits later private-key export. Immutable after creation.
	Exportable bool `json:"exportable,omitempty"`

	// RealName and Email are embedded into the key's user ID packet.
	RealName string `json:"real_name,omitempty"`
	Email    string `json:"email,omitempty"`

	// Expires is the key validity window in seconds. Zero means no expiry.
	Expires int `json:"expires,omitempty"`
}

// KeyData is the public view of a master key returned by ReadKey.
type KeyData struct {
	// Fingerprint is the 40-hex-character key fingerprint.
	Fingerprint string `json:"fingerprint"`

	// PublicKey is the ASCII-armored public keyring, including subkeys.
	PublicKey string `json:"public_key"`

	// Exportable reports whether the private key may be exported.
	Exportable bool `json:"exportable"`
}

// ListKeysData carries the sorted key names returned by ListKeys.
type ListKeysData struct {
	Keys []string `json:"keys"`
}

// ExportData carries an exported private keyring.
type ExportData struct {
	Name string `json:"name"`

	// Key is the ASCII-armored private keyring.
	Key string `json:"key"`
}

// ============================================================================
// Subkey Types
// ============================================================================

// CreateSubkeyRequest carries the parameters for minting a signing subkey.
type CreateSubkeyRequest struct {
	// KeyType selects the subkey algorithm; it does not have to match the
	// parent's. Defaults to rsa-4096.
	KeyType string `json:"key_type,omitempty"`

	// Expires is the subkey validity window in seconds, independent of the
	// parent key's expiration. Zero means no expiry.
	Expires int `json:"expires,omitempty"`
}

// SubkeyData is the public view of a signing subkey.
type SubkeyData struct {
	// KeyID is the 16-hex-character identifier, unique within the parent.
	KeyID string `json:"key_id"`

	KeyType     string `json:"key_type"`
	Fingerprint string `json:"fingerprint"`

	// CreatedAt is the creation instant in RFC 3339 form.
	CreatedAt string `json:"created_at"`

	// ExpiresAt is the expiry instant in RFC 3339 form, empty when the
	// subkey does not expire.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// ListSubkeysData carries the subkey IDs of a key in creation order.
// An empty list is an ordinary answer, unlike listing keys.
type ListSubkeysData struct {
	KeyIDs []string `json:"key_ids"`
}

// ============================================================================
// Signing Types
// ============================================================================

// SignRequest carries the parameters for producing a detached signature.
type SignRequest struct {
	// Input is the base64-encoded data to sign. Both standard and URL-safe
	// alphabets are accepted. Required.
	Input string `json:"input"`

	// HashAlgorithm selects the digest: sha2-224, sha2-256 (default),
	// sha2-384 or sha2-512.
	HashAlgorithm string `json:"hash_algorithm,omitempty"`

	// MarshalingAlgorithm selects the signature encoding: ascii-armor
	// (default) or base64.
	MarshalingAlgorithm string `json:"marshaling_algorithm,omitempty"`

	// SignatureAlgorithm is accepted for surface compatibility; pkcs1v15 is
	// the only member and OpenPGP pins RSA to it anyway.
	SignatureAlgorithm string `json:"signature_algorithm,omitempty"`

	// Expires bounds the signature's own validity in seconds. Zero means
	// the signature only expires with its key.
	Expires int `json:"expires,omitempty"`
}

// SignatureData carries a detached signature in the requested marshaling.
type SignatureData struct {
	Signature string `json:"signature"`
}

// VerifyRequest carries the parameters for checking a detached signature.
type VerifyRequest struct {
	// Input is the base64-encoded data the signature covers. Required.
	Input string `json:"input"`

	// Signature is the detached signature exactly as returned by Sign.
	// Required; the SDK refuses to send a request without one.
	Signature string `json:"signature"`

	// HashAlgorithm and MarshalingAlgorithm, when set, must match what the
	// signature actually used or verification answers false.
	HashAlgorithm       string `json:"hash_algorithm,omitempty"`
	MarshalingAlgorithm string `json:"marshaling_algorithm,omitempty"`
	SignatureAlgorithm  string `json:"signature_algorithm,omitempty"`
}

// VerifyData is the verification verdict.
type VerifyData struct {
	Valid bool `json:"valid"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
// Used in the /readyz endpoint to indicate the status of each component.
type HealthChecks struct {
	// Store indicates the key store connection status
	Store string `json:"store"`
}
