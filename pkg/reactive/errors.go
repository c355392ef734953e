package reactive

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrEmptyText         = errors.New("text is empty")
	ErrNotSupported      = errors.New("operation not supported for this kind")

	// ErrConcurrentAccess is the panic value raised when a store is entered
	// while another call on it is still in progress.
	ErrConcurrentAccess = errors.New("store accessed concurrently")

	// ErrIdentityChanged is the panic value raised when a mutation rewrites
	// the identifier of the entity it was given.
	ErrIdentityChanged = errors.New("entity identity changed during mutation")
)
