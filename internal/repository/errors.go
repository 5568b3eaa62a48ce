package repository

import "errors"

var (
	// ErrNotFound is returned when the targeted row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// effective fields. Nothing is written in that case.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
