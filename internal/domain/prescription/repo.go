package prescription

import (
	"context"
	"errors"

	"github.com/medibox/medibox/pkg/pagination"
)

// ErrNoActive is returned when a tag has no Pending prescription.
var ErrNoActive = errors.New("no active prescription found")

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	// LatestPending returns the newest Pending prescription for the tag, or
	// ErrNoActive.
	LatestPending(ctx context.Context, tag string) (*Prescription, error)
	// List returns prescriptions newest first, optionally filtered by status
	// (empty means all).
	List(ctx context.Context, status Status, pg pagination.Params) ([]Prescription, int, error)
	Update(ctx context.Context, p *Prescription) error
}
