package standingsservice

import "errors"

var (
	// ErrInvalidPosition rejects positions below 1 at the write boundary.
	// The aggregation core never sees such records.
	ErrInvalidPosition = errors.New("posicao must be at least 1")
	// ErrMissingModality rejects writes without a modality reference.
	ErrMissingModality = errors.New("modalidadeId is required")
	// ErrInvalidID rejects malformed placement or registration ids.
	ErrInvalidID = errors.New("invalid id")
)
