package dispenselog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medibox/medibox/pkg/pagination"
)

type mockRepo struct {
	entries []Entry
	fail    error
}

func (m *mockRepo) Insert(_ context.Context, e *Entry) error {
	if m.fail != nil {
		return m.fail
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	// Prepend so the slice stays newest-first, like the pg ORDER BY.
	m.entries = append([]Entry{*e}, m.entries...)
	return nil
}

func (m *mockRepo) List(_ context.Context, p pagination.Params) ([]Entry, int, error) {
	total := len(m.entries)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return m.entries[start:end], total, nil
}

func TestAppend_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	e := &Entry{
		RFIDTag:     "A1B2C3",
		PatientName: "John Doe",
		Medicines:   &MedicineCounts{Paracetamol: 2, Azithromycin: 1},
		Status:      StatusSuccess,
	}
	if err := svc.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if e.ID == uuid.Nil {
		t.Error("expected an id to be assigned")
	}
}

func TestAppend_FailureWithoutMedicines(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	e := &Entry{
		RFIDTag:      "A1B2C3",
		PatientName:  "Unknown",
		Status:       StatusFailure,
		ErrorMessage: "No active prescription found",
	}
	if err := svc.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.entries[0].Medicines != nil {
		t.Error("expected nil medicines on a failure entry")
	}
}

func TestAppend_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})

	cases := []struct {
		name  string
		entry Entry
	}{
		{"missing tag", Entry{PatientName: "John", Status: StatusSuccess}},
		{"missing name", Entry{RFIDTag: "A1", Status: StatusSuccess}},
		{"bad status", Entry{RFIDTag: "A1", PatientName: "John", Status: "Pending"}},
		{"empty status", Entry{RFIDTag: "A1", PatientName: "John"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.entry
			if err := svc.Append(context.Background(), &e); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	for _, tag := range []string{"first", "second", "third"} {
		e := &Entry{RFIDTag: tag, PatientName: "John", Status: StatusSuccess}
		if err := svc.Append(context.Background(), e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, total, err := svc.List(context.Background(), pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if entries[0].RFIDTag != "third" || entries[2].RFIDTag != "first" {
		t.Errorf("expected newest first, got %s..%s", entries[0].RFIDTag, entries[2].RFIDTag)
	}
}
