package ordered

import "errors"

var (
	ErrKeyNotFound = errors.New("ordered: key not found")
)
