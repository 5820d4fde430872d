package collections

import "errors"

var ErrOutOfRange = errors.New("index out of range")
