package patient

import (
	"context"
	"errors"

	"github.com/medibox/medibox/pkg/pagination"
)

var (
	ErrNotFound      = errors.New("patient not found")
	ErrAlreadyExists = errors.New("patient already exists")
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]Patient, int, error)
	GetByTag(ctx context.Context, tag string) (*Patient, error)
	Create(ctx context.Context, pt *Patient) error
	Update(ctx context.Context, pt *Patient) error
	Delete(ctx context.Context, tag string) error
}
