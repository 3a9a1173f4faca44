package inventory

import (
	"context"
	"fmt"
	"sync"
)

// Service owns the slot-list invariants: stock stays within [0, max], the
// slot count never exceeds MaxSlots, and positions stay sequential from 1.
// Every read-modify-write runs under one mutex so concurrent prescriptions
// cannot over-debit a low slot.
type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the inventory, lazily seeding the default slots on first read.
func (s *Service) Get(ctx context.Context) (*Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Ensure(ctx)
}

func (s *Service) AddSlot(ctx context.Context, medicine string, stock, max int) (*Inventory, error) {
	if medicine == "" {
		return nil, fmt.Errorf("medicine is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(inv.Slots) >= MaxSlots {
		return nil, ErrMaxSlots
	}

	slot := Slot{Position: len(inv.Slots) + 1, Medicine: medicine, Stock: stock, Max: max}
	slot.Clamp()
	inv.Slots = append(inv.Slots, slot)

	if err := s.repo.SaveSlots(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateSlot patches the slot at the 0-based index, clamping stock into
// [0, max] on every write.
func (s *Service) UpdateSlot(ctx context.Context, index int, patch SlotPatch) (*Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(inv.Slots) {
		return nil, ErrSlotNotFound
	}

	slot := &inv.Slots[index]
	if patch.Medicine != nil {
		slot.Medicine = *patch.Medicine
	}
	if patch.Stock != nil {
		slot.Stock = *patch.Stock
	}
	if patch.Max != nil {
		slot.Max = *patch.Max
	}
	slot.Clamp()

	if err := s.repo.SaveSlots(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RemoveSlot deletes the slot at the 0-based index and renumbers the
// remaining positions sequentially from 1.
func (s *Service) RemoveSlot(ctx context.Context, index int) (*Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(inv.Slots) {
		return nil, ErrSlotNotFound
	}

	inv.Slots = append(inv.Slots[:index], inv.Slots[index+1:]...)
	for i := range inv.Slots {
		inv.Slots[i].Position = i + 1
	}

	if err := s.repo.SaveSlots(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Reserve validates every demand against current stock and, only when no
// error accumulated, debits the matched slots and persists the slot list in
// a single write. Demands for medicines without a matching slot are skipped.
// The returned errs/alerts lists follow the demand order; errs non-empty
// means nothing was mutated.
func (s *Service) Reserve(ctx context.Context, demands []Demand) (alerts []string, errs []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.Ensure(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, d := range demands {
		if d.Quantity <= 0 {
			continue
		}
		slot := MatchSlot(inv.Slots, d.Medicine)
		if slot == nil {
			continue
		}
		if slot.Stock == 0 {
			errs = append(errs, fmt.Sprintf("%s is out of stock and cannot be prescribed.", d.Medicine))
			continue
		}
		if d.Quantity > slot.Stock {
			errs = append(errs, fmt.Sprintf("Cannot prescribe %d of %s. Only %d in stock.", d.Quantity, d.Medicine, slot.Stock))
		}
		if slot.Stock < LowStockThreshold {
			alerts = append(alerts, fmt.Sprintf("Refill alert: %s stock is low (%d).", d.Medicine, slot.Stock))
		}
	}

	if len(errs) > 0 {
		return alerts, errs, nil
	}

	for _, d := range demands {
		if d.Quantity <= 0 {
			continue
		}
		if slot := MatchSlot(inv.Slots, d.Medicine); slot != nil {
			slot.Stock -= d.Quantity
			if slot.Stock < 0 {
				slot.Stock = 0
			}
		}
	}

	if err := s.repo.SaveSlots(ctx, inv); err != nil {
		return nil, nil, err
	}
	return alerts, nil, nil
}
