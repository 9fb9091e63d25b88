package assembly

import "baby/pkg/codegen"

// Assembly interface defines methods for generating and building assembly code.
type Assembly interface {
	Generate() error
	GetCode() string
	Build() error

	// Listing returns the generated program body for the interpreter.
	Listing() codegen.Listing
}
