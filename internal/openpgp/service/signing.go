package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/pgpx"
)

// SignResult carries a freshly produced detached signature, armored or
// base64 depending on the requested marshaling.
type SignResult struct {
	Signature string
}

// VerifyResult is the answer to a verification: a boolean, never an error,
// for any well-formed request whose signature simply does not hold.
type VerifyResult struct {
	Valid bool
}

// signatureParams are the algorithm selections shared by sign and verify.
// Explicit selections are remembered so verify can enforce that the blob
// actually used them.
type signatureParams struct {
	hash               domain.HashAlgorithm
	hashExplicit       bool
	marshaling         domain.MarshalingAlgorithm
	marshalingExplicit bool
}

func extractSignatureParams(p domain.Params) (signatureParams, error) {
	out := signatureParams{
		hash:       domain.DefaultHashAlgorithm,
		marshaling: domain.DefaultMarshalingAlgorithm,
	}

	if v, ok, err := stringParam(p, "hash_algorithm"); err != nil {
		return out, err
	} else if ok {
		if !domain.ValidHashAlgorithm(v) {
			return out, fmt.Errorf("%w: unsupported hash algorithm %q", ErrUnsupportedParam, v)
		}
		out.hash = domain.HashAlgorithm(v)
		out.hashExplicit = true
	}

	if v, ok, err := stringParam(p, "marshaling_algorithm"); err != nil {
		return out, err
	} else if ok {
		if !domain.ValidMarshalingAlgorithm(v) {
			return out, fmt.Errorf("%w: unsupported marshaling algorithm %q", ErrUnsupportedParam, v)
		}
		out.marshaling = domain.MarshalingAlgorithm(v)
		out.marshalingExplicit = true
	}

	// signature_algorithm is screened against the registry but carries no
	// further information: OpenPGP pins RSA signatures to PKCS#1 v1.5 and
	// the other key types have no padding choice at all.
	if v, ok, err := stringParam(p, "signature_algorithm"); err != nil {
		return out, err
	} else if ok && !domain.ValidSignatureAlgorithm(v) {
		return out, fmt.Errorf("%w: unsupported signature algorithm %q", ErrUnsupportedParam, v)
	}

	return out, nil
}

// SignData produces a detached signature over base64-encoded input with the
// named key. The newest live signing subkey signs when one exists, the
// master key otherwise.
func (s *Service) SignData(ctx context.Context, name string, p domain.Params) (SignResult, error) {
	if err := screenParams(domain.OpSign, p); err != nil {
		return SignResult{}, err
	}

	input, ok, err := stringParam(p, "input")
	if err != nil {
		return SignResult{}, err
	}
	if !ok {
		return SignResult{}, fmt.Errorf("%w: missing input to sign", ErrParamValidation)
	}

	algos, err := extractSignatureParams(p)
	if err != nil {
		return SignResult{}, err
	}
	expires, _, err := secondsParam(p, "expires")
	if err != nil {
		return SignResult{}, err
	}

	message, err := decodeInput(input)
	if err != nil {
		return SignResult{}, fmt.Errorf("%w: failed to base64-decode input", ErrInvalidRequest)
	}

	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return SignResult{}, fmt.Errorf("%w: key %q does not exist", ErrInvalidRequest, name)
	}
	if err != nil {
		return SignResult{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	now := s.now()
	if key.IsExpired(now) {
		return SignResult{}, fmt.Errorf("%w: key %q has expired", ErrInvalidRequest, name)
	}

	kr, err := s.keyring(key)
	if err != nil {
		return SignResult{}, err
	}

	var lifetime uint32
	if expires > 0 {
		lifetime = uint32(expires)
	}

	signature, err := kr.Sign(message, pgpx.SignOptions{
		Hash:     hashFor(algos.hash),
		Format:   formatFor(algos.marshaling),
		Lifetime: lifetime,
		Clock:    func() time.Time { return now },
	})
	if err != nil {
		return SignResult{}, fmt.Errorf("failed to sign with key %q: %w", name, err)
	}

	recordSignature()
	return SignResult{Signature: signature}, nil
}

// VerifySignedData checks a detached signature over base64-encoded input
// against the named key's current state. Malformed requests error; a
// signature that does not hold answers valid=false.
func (s *Service) VerifySignedData(ctx context.Context, name string, p domain.Params) (VerifyResult, error) {
	if err := screenParams(domain.OpVerify, p); err != nil {
		return VerifyResult{}, err
	}

	input, ok, err := stringParam(p, "input")
	if err != nil {
		return VerifyResult{}, err
	}
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: missing input to verify", ErrParamValidation)
	}

	signature, ok, err := stringParam(p, "signature")
	if err != nil {
		return VerifyResult{}, err
	}
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: missing signature", ErrParamValidation)
	}

	algos, err := extractSignatureParams(p)
	if err != nil {
		return VerifyResult{}, err
	}

	message, err := decodeInput(input)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("%w: failed to base64-decode input", ErrInvalidRequest)
	}

	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return VerifyResult{}, fmt.Errorf("%w: key %q does not exist", ErrInvalidRequest, name)
	}
	if err != nil {
		return VerifyResult{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	valid, err := s.evaluateSignature(key, message, signature, algos)
	if err != nil {
		return VerifyResult{}, err
	}

	recordVerification(valid)
	return VerifyResult{Valid: valid}, nil
}

// evaluateSignature runs the verification decision sequence. Record-level
// policy is checked before any cryptography so outcomes are deterministic:
// the signature text, explicit algorithm matches, the issuer's presence in
// the current record, record-level expiries re-read at now, the signature's
// own expiry, and only then the cryptographic check. The error return is
// for internal faults only, never for an invalid signature.
func (s *Service) evaluateSignature(key domain.Key, message []byte, signature string, algos signatureParams) (bool, error) {
	info, err := pgpx.InspectSignature(signature)
	if err != nil {
		return false, nil
	}

	if algos.marshalingExplicit && formatFor(algos.marshaling) != info.Format {
		return false, nil
	}
	if algos.hashExplicit && hashFor(algos.hash) != info.Hash {
		return false, nil
	}

	// The issuer must be the master key or a subkey the record still
	// holds. A deleted subkey fails here even though the blob names it
	// and the signature bytes are untouched.
	if info.IssuerKeyID == "" {
		return false, nil
	}
	var issuingSubkey *domain.Subkey
	if info.IssuerKeyID != primaryKeyID(key.Fingerprint) {
		sub, ok := key.Subkey(info.IssuerKeyID)
		if !ok {
			return false, nil
		}
		issuingSubkey = &sub
	}

	now := s.now()
	if key.IsExpired(now) {
		return false, nil
	}
	if issuingSubkey != nil && issuingSubkey.IsExpired(now) {
		return false, nil
	}
	if info.ExpiresAt != nil && !now.Before(*info.ExpiresAt) {
		return false, nil
	}

	kr, err := s.keyring(key)
	if err != nil {
		return false, err
	}
	if err := kr.Verify(message, signature, now); err != nil {
		return false, nil
	}
	return true, nil
}

// primaryKeyID derives the long key ID from a v4 fingerprint: its low 64
// bits, so the last 16 hex characters.
func primaryKeyID(fingerprint string) string {
	if len(fingerprint) < 16 {
		return fingerprint
	}
	return fingerprint[len(fingerprint)-16:]
}
