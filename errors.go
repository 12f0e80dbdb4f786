package callback

import "github.com/pkg/errors"

var (
	ErrNotFound   = errors.New("handler not found")
	ErrNilHandler = errors.New("callback: nil handler")
)
