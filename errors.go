package nctools

import (
	"errors"

	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/htmlreport"
)

var (
	// ErrInputNotFound is returned when the input HTML path does not exist.
	ErrInputNotFound = errors.New("nctools: input HTML not found")

	// ErrNoPages is returned for a document without any recognizable page
	// blocks; re-exported so callers can match it without importing the
	// parser package.
	ErrNoPages = htmlreport.ErrNoPages
)
