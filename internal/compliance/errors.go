package compliance

import "errors"

var ErrNotFound = errors.New("not found")
