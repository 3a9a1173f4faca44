package dispenselog

import (
	"context"
	"fmt"

	"github.com/medibox/medibox/pkg/pagination"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Append validates and records one audit entry. Entries come from the
// dispense flow and straight from the device when it fails before reaching a
// prescription.
func (s *Service) Append(ctx context.Context, e *Entry) error {
	if e.RFIDTag == "" {
		return fmt.Errorf("rfidTag is required")
	}
	if e.PatientName == "" {
		return fmt.Errorf("patientName is required")
	}
	if !validStatuses[e.Status] {
		return fmt.Errorf("invalid log status: %s", e.Status)
	}
	return s.repo.Insert(ctx, e)
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]Entry, int, error) {
	return s.repo.List(ctx, p)
}
