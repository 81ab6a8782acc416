package digest

import "errors"

var (
	// ErrMissingInputFile means the persona or job file does not exist.
	ErrMissingInputFile = errors.New("missing input file")
	// ErrEmptyInput means the persona or job file is blank.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoDocuments means the input directory holds no PDF.
	ErrNoDocuments = errors.New("no pdf documents found")
)
