package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/medibox/medibox/pkg/pagination"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Patient, int, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) GetByTag(ctx context.Context, tag string) (*Patient, error) {
	return s.repo.GetByTag(ctx, tag)
}

// NameByTag resolves a patient's name for audit and device views. Missing
// patients resolve to the empty string with ErrNotFound; callers pick their
// own fallback label.
func (s *Service) NameByTag(ctx context.Context, tag string) (string, error) {
	pt, err := s.repo.GetByTag(ctx, tag)
	if err != nil {
		return "", err
	}
	return pt.Name, nil
}

func (s *Service) Create(ctx context.Context, pt *Patient) error {
	if pt.RFIDTag == "" {
		return fmt.Errorf("rfidTag is required")
	}
	if pt.Name == "" {
		return fmt.Errorf("name is required")
	}
	if pt.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if !validGenders[pt.Gender] {
		return fmt.Errorf("invalid gender: %s", pt.Gender)
	}
	if pt.Condition == "" {
		return fmt.Errorf("condition is required")
	}
	if pt.Status == "" {
		pt.Status = StatusActive
	}
	if !validStatuses[pt.Status] {
		return fmt.Errorf("invalid status: %s", pt.Status)
	}
	return s.repo.Create(ctx, pt)
}

// Update applies a partial update to the patient with the given tag. Deleting
// a patient never cascades; prescriptions and log entries keep the tag string.
func (s *Service) Update(ctx context.Context, tag string, upd Update) (*Patient, error) {
	pt, err := s.repo.GetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		pt.Name = *upd.Name
	}
	if upd.Age != nil {
		pt.Age = *upd.Age
	}
	if upd.Gender != nil {
		if !validGenders[*upd.Gender] {
			return nil, fmt.Errorf("invalid gender: %s", *upd.Gender)
		}
		pt.Gender = *upd.Gender
	}
	if upd.Condition != nil {
		pt.Condition = *upd.Condition
	}
	if upd.Status != nil {
		if !validStatuses[*upd.Status] {
			return nil, fmt.Errorf("invalid status: %s", *upd.Status)
		}
		pt.Status = *upd.Status
	}

	if err := s.repo.Update(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *Service) Delete(ctx context.Context, tag string) error {
	err := s.repo.Delete(ctx, tag)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete patient %s: %w", tag, err)
	}
	return err
}
