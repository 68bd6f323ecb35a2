package service

import "errors"

// Taxonomy sentinels. Every operation failure wraps exactly one of these so
// transport code can map categories without string matching; anything not
// wrapping one is an internal fault.
var (
	// ErrUnsupportedParam rejects a parameter the capability model does not
	// implement. It fires before validation, state changes or crypto work.
	ErrUnsupportedParam = errors.New("unsupported parameter")

	// ErrParamValidation rejects a call missing a required parameter or
	// carrying one of the wrong JSON type.
	ErrParamValidation = errors.New("parameter validation failed")

	// ErrInvalidRequest rejects a well-formed call the current state cannot
	// satisfy: duplicate create, sign/verify against an absent key,
	// undecodable base64 input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound reports a read of an absent key or subkey.
	ErrNotFound = errors.New("not found")

	// ErrForbidden reports a policy denial, such as exporting a key created
	// without exportable.
	ErrForbidden = errors.New("forbidden")
)
