package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// FileSource reads a JSON snapshot from disk.
type FileSource struct {
	Path string
}

// Load implements Source. A missing file is reported as ErrNotFound.
func (f FileSource) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
		}
		return domain.Snapshot{}, fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	snap, err := Decode(file)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	return snap, nil
}
