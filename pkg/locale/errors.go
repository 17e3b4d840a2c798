package locale

import "errors"

var (
	ErrInvalidTag    = errors.New("locale: invalid language tag")
	ErrNilPluralRule = errors.New("locale: plural rule cannot be nil")
	ErrNilFormat     = errors.New("locale: format cannot be nil")
)
