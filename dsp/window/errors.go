package window

import "errors"

var (
	errEmptyCoeffs = errors.New("window coefficients must not be empty")
	errUnknownType = errors.New("unknown window type")
)
