package prescription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/medibox/medibox/internal/domain/dispenselog"
	"github.com/medibox/medibox/internal/domain/inventory"
	"github.com/medibox/medibox/pkg/pagination"
)

// StockReserver is the inventory leg of the create transaction, satisfied by
// inventory.Service.
type StockReserver interface {
	Reserve(ctx context.Context, demands []inventory.Demand) (alerts []string, errs []string, err error)
}

// PatientDirectory resolves tag -> patient name, satisfied by
// patient.Service.
type PatientDirectory interface {
	NameByTag(ctx context.Context, tag string) (string, error)
}

// AuditTrail records dispense attempts, satisfied by dispenselog.Service.
type AuditTrail interface {
	Append(ctx context.Context, e *dispenselog.Entry) error
}

// ValidationError carries the batched validation outcome of a rejected
// creation: every error found plus any refill alerts noticed along the way.
type ValidationError struct {
	Errors []string `json:"errors"`
	Alerts []string `json:"alerts"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Service owns the prescription lifecycle. Create runs the
// duplicate-check / reserve / insert sequence under one mutex so two
// concurrent creations for the same tag cannot both pass the pending check.
type Service struct {
	repo     Repository
	stock    StockReserver
	patients PatientDirectory
	audit    AuditTrail
	log      zerolog.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, stock StockReserver, patients PatientDirectory, audit AuditTrail, log zerolog.Logger) *Service {
	return &Service{repo: repo, stock: stock, patients: patients, audit: audit, log: log}
}

// Create validates and inserts a new Pending prescription, debiting the
// reserved quantities from inventory. On any validation failure it returns a
// *ValidationError and performs zero writes. The returned alerts accompany a
// successful creation (low stock is a warning, not an error).
func (s *Service) Create(ctx context.Context, p *Prescription) ([]string, error) {
	var errs []string
	if p.RFIDTag == "" {
		errs = append(errs, "rfidTag is required")
	}
	if p.Frequency == "" {
		errs = append(errs, "frequency is required")
	}
	if p.Duration == "" {
		errs = append(errs, "duration is required")
	}
	if p.Paracetamol < 0 || p.Azithromycin < 0 || p.Revital < 0 {
		errs = append(errs, "medicine quantities cannot be negative")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs, Alerts: []string{}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.LatestPending(ctx, p.RFIDTag); err == nil {
		return nil, &ValidationError{
			Errors: []string{"A pending prescription already exists for this patient."},
			Alerts: []string{},
		}
	} else if !errors.Is(err, ErrNoActive) {
		return nil, err
	}

	alerts, stockErrs, err := s.stock.Reserve(ctx, p.Demands())
	if err != nil {
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}
	if alerts == nil {
		alerts = []string{}
	}
	if len(stockErrs) > 0 {
		return nil, &ValidationError{Errors: stockErrs, Alerts: alerts}
	}

	p.Status = StatusPending
	p.LastDispensed = nil
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return alerts, nil
}

// LatestPending returns the newest Pending prescription for the tag.
func (s *Service) LatestPending(ctx context.Context, tag string) (*Prescription, error) {
	return s.repo.LatestPending(ctx, tag)
}

// List returns prescriptions newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status Status, pg pagination.Params) ([]Prescription, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.List(ctx, status, pg)
}

// Dispense flips the latest Pending prescription to Dispensed and records a
// Success audit entry. When no Pending prescription exists it records a
// Failure entry and returns ErrNoActive. Audit writes are best-effort: a
// failed append is logged as a warning and never fails the dispense.
func (s *Service) Dispense(ctx context.Context, tag string) (*Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LatestPending(ctx, tag)
	if err != nil {
		if errors.Is(err, ErrNoActive) {
			s.appendAudit(ctx, &dispenselog.Entry{
				RFIDTag:      tag,
				PatientName:  s.patientName(ctx, tag, "Unknown"),
				Status:       dispenselog.StatusFailure,
				ErrorMessage: "No active prescription found",
			})
		}
		return nil, err
	}

	now := time.Now()
	p.Status = StatusDispensed
	p.LastDispensed = &now
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, &dispenselog.Entry{
		RFIDTag:     tag,
		PatientName: s.patientName(ctx, tag, "Unknown"),
		Medicines: &dispenselog.MedicineCounts{
			Paracetamol:  p.Paracetamol,
			Azithromycin: p.Azithromycin,
			Revital:      p.Revital,
		},
		Status: dispenselog.StatusSuccess,
	})
	return p, nil
}

// SetStatus moves the latest Pending prescription to the given status; used
// to cancel or force-dispense from the dashboard. Cancellation performs no
// inventory refund: re-crediting could overfill a physically loaded slot.
func (s *Service) SetStatus(ctx context.Context, tag string, status Status) (*Prescription, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LatestPending(ctx, tag)
	if err != nil {
		return nil, err
	}

	p.Status = status
	if status == StatusDispensed {
		now := time.Now()
		p.LastDispensed = &now
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) patientName(ctx context.Context, tag, fallback string) string {
	name, err := s.patients.NameByTag(ctx, tag)
	if err != nil || name == "" {
		return fallback
	}
	return name
}

func (s *Service) appendAudit(ctx context.Context, e *dispenselog.Entry) {
	if err := s.audit.Append(ctx, e); err != nil {
		s.log.Warn().Err(err).Str("rfid_tag", e.RFIDTag).Msg("failed to append dispensing log")
	}
}
