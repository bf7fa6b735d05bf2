// Package configs provides embedded defaults for typeahead.
//
// Files are embedded at build time using Go's //go:embed directive so they are
// available in all distributions, source builds and binary releases alike.
package configs

import _ "embed"

// ConfigTemplate is the annotated example configuration, written by
// `typeahead config init`.
//
//go:embed config.example.yaml
var ConfigTemplate string

// DefaultDataset is the built-in item list used when no dataset file is
// configured. One item per line; blank lines and '#' comments are ignored.
//
//go:embed dataset.txt
var DefaultDataset string
