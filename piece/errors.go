package piece

import "errors"

var (
	ErrInvalidKind = errors.New("invalid piece kind")
	ErrNotSquare   = errors.New("shape must be square")
	ErrShapeSize   = errors.New("unsupported shape size")
	ErrEmptyShape  = errors.New("shape has no occupied cells")
)
