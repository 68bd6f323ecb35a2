package sigilsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Sign produces a detached signature over the request's input using the
// named key. The newest live signing subkey signs; without subkeys the
// master key does.
func (c *Client) Sign(ctx context.Context, name string, req SignRequest) (*SignatureData, error) {
	if req.Input == "" {
		return nil, &ParamError{Param: "input"}
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/openpgp/sign/"+url.PathEscape(name), req)
	if err != nil {
		return nil, err
	}

	var sig SignatureData
	if err := decodeEnvelope(resp, &sig, http.StatusOK); err != nil {
		return nil, err
	}

	return &sig, nil
}

// Verify checks a detached signature against the named key and the
// request's input. A well-formed request always decodes into a verdict;
// Valid=false covers every way a signature can fail to check out, from
// tampered bytes to an expired or deleted signer.
func (c *Client) Verify(ctx context.Context, name string, req VerifyRequest) (*VerifyData, error) {
	if req.Input == "" {
		return nil, &ParamError{Param: "input"}
	}
	if req.Signature == "" {
		return nil, &ParamError{Param: "signature"}
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/openpgp/verify/"+url.PathEscape(name), req)
	if err != nil {
		return nil, err
	}

	var verdict VerifyData
	if err := decodeEnvelope(resp, &verdict, http.StatusOK); err != nil {
		return nil, err
	}

	return &verdict, nil
}
