package domain

import "errors"

var (
	ErrUnsupportedByteOrder = errors.New("unsupported byte order")
	ErrUnsupportedOutput    = errors.New("unsupported output format")
	ErrCurrentUserUnknown   = errors.New("current user unknown")
)
