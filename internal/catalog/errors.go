package catalog

import "errors"

var (
	// ErrNotFound matches every lookup failure: movie, collection or membership.
	ErrNotFound = errors.New("catalog: not found")

	// ErrAlreadyExists matches duplicate collection names and duplicate membership.
	ErrAlreadyExists = errors.New("catalog: already exists")
)

var (
	// ErrMovieNotFound reports an unknown title.
	ErrMovieNotFound = &kindError{msg: "catalog: movie not found", kind: ErrNotFound}

	// ErrCollectionNotFound reports an unknown collection name.
	ErrCollectionNotFound = &kindError{msg: "catalog: collection not found", kind: ErrNotFound}

	// ErrNotInCollection reports a title missing from an existing collection.
	ErrNotInCollection = &kindError{msg: "catalog: movie not in collection", kind: ErrNotFound}

	// ErrCollectionExists reports a duplicate collection name.
	ErrCollectionExists = &kindError{msg: "catalog: collection already exists", kind: ErrAlreadyExists}

	// ErrAlreadyInCollection reports a title already in the collection.
	ErrAlreadyInCollection = &kindError{msg: "catalog: movie already present in collection", kind: ErrAlreadyExists}
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
