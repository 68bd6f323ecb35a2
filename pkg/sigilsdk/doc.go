/*
Package sigilsdk provides a typed client for the Sigil OpenPGP service.

# Overview

The service manages named OpenPGP keys and produces detached signatures
over caller-supplied data. The SDK wraps its HTTP surface: master key
lifecycle (create/read/list/delete/export), signing subkeys bound to a
master key, and the sign/verify pair.

Create a Client and call operations directly:

	client := sigilsdk.NewClient("http://localhost:8080")
	client.Token = os.Getenv("SIGIL_API_TOKEN")

	// Mint a key
	err := client.CreateKey(ctx, "release", sigilsdk.CreateKeyRequest{
		KeyType:    "ed25519",
		Exportable: true,
	})

	// Sign and verify
	sig, err := client.Sign(ctx, "release", sigilsdk.SignRequest{
		Input: base64.StdEncoding.EncodeToString(artifact),
	})
	res, err := client.Verify(ctx, "release", sigilsdk.VerifyRequest{
		Input:     base64.StdEncoding.EncodeToString(artifact),
		Signature: sig.Signature,
	})

# Error Handling

Engine failures decode into *APIError carrying the HTTP status and the
error list from the response body. Classify with the helpers instead of
matching status codes by hand:

	if err := client.CreateKey(ctx, name, req); sigilsdk.IsInvalidRequest(err) {
		// duplicate name, unknown key type, bad parameter ...
	}

	if _, err := client.ReadKey(ctx, name); sigilsdk.IsNotFound(err) {
		// no such key
	}

Verification never reports an invalid signature as an error: a decodable
response with Valid=false means the signature did not check out, while an
error means the request itself could not be evaluated (unknown key, bad
input encoding, unsupported parameter).
*/
package sigilsdk
