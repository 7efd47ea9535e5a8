package lineflow

import "errors"

var (
	// ErrIllegalArguments signals an operation called with nil or otherwise
	// unusable arguments.
	ErrIllegalArguments = errors.New("lineflow: illegal arguments")
	// ErrEmptyText signals a layout request for a paragraph without text.
	ErrEmptyText = errors.New("lineflow: paragraph text is empty")
	// ErrInvalidWidth signals a non-positive target line width.
	ErrInvalidWidth = errors.New("lineflow: line width must be positive")
	// ErrInvalidConfig signals an inconsistent break configuration.
	ErrInvalidConfig = errors.New("lineflow: invalid break configuration")
)
