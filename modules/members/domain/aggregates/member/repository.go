package member

import (
	"context"

	gerrors "github.com/go-faster/errors"
)

var (
	ErrNotFound            = gerrors.New("member not found")
	ErrDuplicateNationalID = gerrors.New("national id already registered")
)

type FindParams struct {
	Q      string
	Status Status
	Limit  int
	Offset int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Member, int64, error)
	GetByID(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, m Member) (Member, error)
	Update(ctx context.Context, m Member) error
	// MarkDeleted sets the deletion timestamp instead of removing the row.
	// Reads filter on it explicitly; there is no hidden soft-delete layer.
	MarkDeleted(ctx context.Context, id string) error
	// NationalIDs returns the national ids of all non-deleted members, used
	// as the pre-existing duplicate snapshot for a bulk import.
	NationalIDs(ctx context.Context) (map[string]struct{}, error)
}
