// File: errors.go
// Role: sentinel errors for the search package.

package search

import "errors"

// ErrTransport wraps a failed message send or receive; fatal to the
// node that hit it.
var ErrTransport = errors.New("search: transport failure")

// ErrNilTransport is returned by NewNode when no transport is supplied.
var ErrNilTransport = errors.New("search: nil transport")

// ErrOptionViolation is returned by NewNode when an option carries an
// out-of-range value.
var ErrOptionViolation = errors.New("search: option violation")

// ErrAlreadyRan is returned by Run on a node whose search has already
// completed; nodes are single-use.
var ErrAlreadyRan = errors.New("search: node has already run")
