// Package seed loads catalog contents from read-only sources: the built-in
// sample, a JSON file, a remote HTTP endpoint or any other Source.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// ErrNotFound is returned when a source has no snapshot to offer.
var ErrNotFound = errors.New("seed: not found")

// Source produces a snapshot of catalog contents.
type Source interface {
	Load(ctx context.Context) (domain.Snapshot, error)
}

// Apply adds every movie of the snapshot to cat, then creates each collection
// and fills it in order. It stops at the first failing operation.
func Apply(cat *catalog.Catalog, snap domain.Snapshot) error {
	for _, movie := range snap.Movies {
		cat.AddMovie(movie)
	}
	for _, coll := range snap.Collections {
		if err := cat.CreateCollection(coll.Name); err != nil {
			return fmt.Errorf("seed collection %q: %w", coll.Name, err)
		}
		for _, title := range coll.Titles {
			if err := cat.AddToCollection(coll.Name, title); err != nil {
				return fmt.Errorf("seed collection %q: %w", coll.Name, err)
			}
		}
	}
	return nil
}

// Build loads the source and returns a new catalog holding its snapshot.
func Build(ctx context.Context, src Source) (*catalog.Catalog, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	cat := catalog.New()
	if err := Apply(cat, snap); err != nil {
		return nil, err
	}
	return cat, nil
}

// Decode parses a JSON snapshot. Unknown fields and trailing data are rejected.
func Decode(r io.Reader) (domain.Snapshot, error) {
	var snap domain.Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: unexpected data after snapshot")
	}
	return snap, nil
}

// Encode writes snap as indented JSON.
func Encode(w io.Writer, snap domain.Snapshot) error {
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = w.Write(append(payload, '\n'))
	return err
}
