package bacen

import "errors"

var (
	ErrEmptySeries         = errors.New("empty series")
	ErrMissingValue        = errors.New("entry without value")
	ErrSentinelValue       = errors.New("series returned sentinel value -1")
	ErrInvalidPayload      = errors.New("invalid series payload")
	ErrUnsupportedCurrency = errors.New("currency has no SGS series")
)
