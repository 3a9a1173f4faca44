package staff

import (
	"context"
	"errors"

	"github.com/medibox/medibox/pkg/pagination"
)

var (
	ErrNotFound      = errors.New("staff not found")
	ErrAlreadyExists = errors.New("staff already exists")
)

type Repository interface {
	Create(ctx context.Context, st *Staff) error
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	List(ctx context.Context, p pagination.Params) ([]Staff, int, error)
}
