package dispenselog

import (
	"context"

	"github.com/medibox/medibox/pkg/pagination"
)

// Repository persists audit entries. The trail is append-only; no update or
// delete exists.
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	List(ctx context.Context, p pagination.Params) ([]Entry, int, error)
}
