package messages

import "errors"

var ErrInvalidInput = errors.New("invalid input")
