package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredField = errors.New("required field is empty")
	ErrInvalidPrice         = errors.New("price must be a positive number")
	ErrInvalidID            = errors.New("invalid item id")
)
