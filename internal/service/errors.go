package service

import "errors"

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409

	// ErrSpinUnavailable marks a spin requested with no attempts left or
	// with a discount already accepted. It is a rejected action, not a
	// fault: callers are expected to consult GetState and disable the
	// action up front.
	ErrSpinUnavailable = errors.New("spin unavailable")
)
