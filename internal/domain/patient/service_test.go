package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medibox/medibox/pkg/pagination"
)

type mockRepo struct {
	byTag map[string]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{byTag: map[string]*Patient{}}
}

func (m *mockRepo) List(_ context.Context, p pagination.Params) ([]Patient, int, error) {
	patients := []Patient{}
	for _, pt := range m.byTag {
		patients = append(patients, *pt)
	}
	return patients, len(m.byTag), nil
}

func (m *mockRepo) GetByTag(_ context.Context, tag string) (*Patient, error) {
	pt, ok := m.byTag[tag]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *pt
	return &copied, nil
}

func (m *mockRepo) Create(_ context.Context, pt *Patient) error {
	if _, exists := m.byTag[pt.RFIDTag]; exists {
		return ErrAlreadyExists
	}
	if pt.ID == uuid.Nil {
		pt.ID = uuid.New()
	}
	copied := *pt
	m.byTag[pt.RFIDTag] = &copied
	return nil
}

func (m *mockRepo) Update(_ context.Context, pt *Patient) error {
	if _, ok := m.byTag[pt.RFIDTag]; !ok {
		return ErrNotFound
	}
	copied := *pt
	m.byTag[pt.RFIDTag] = &copied
	return nil
}

func (m *mockRepo) Delete(_ context.Context, tag string) error {
	if _, ok := m.byTag[tag]; !ok {
		return ErrNotFound
	}
	delete(m.byTag, tag)
	return nil
}

func validPatient() *Patient {
	return &Patient{
		RFIDTag:   "A1B2C3D4",
		Name:      "John Doe",
		Age:       54,
		Gender:    GenderMale,
		Condition: "Hypertension",
	}
}

func TestCreate_DefaultsToActive(t *testing.T) {
	svc := NewService(newMockRepo())

	pt := validPatient()
	if err := svc.Create(context.Background(), pt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.Status != StatusActive {
		t.Errorf("expected status Active, got %s", pt.Status)
	}
	if pt.ID == uuid.Nil {
		t.Error("expected an id to be assigned")
	}
}

func TestCreate_DuplicateTag(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Create(context.Background(), validPatient()); err != ErrAlreadyExists {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockRepo())

	cases := []struct {
		name   string
		mutate func(*Patient)
	}{
		{"missing tag", func(p *Patient) { p.RFIDTag = "" }},
		{"missing name", func(p *Patient) { p.Name = "" }},
		{"zero age", func(p *Patient) { p.Age = 0 }},
		{"bad gender", func(p *Patient) { p.Gender = "Unknown" }},
		{"missing condition", func(p *Patient) { p.Condition = "" }},
		{"bad status", func(p *Patient) { p.Status = "Archived" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt := validPatient()
			tc.mutate(pt)
			if err := svc.Create(context.Background(), pt); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	condition := "Recovered"
	status := StatusInactive
	pt, err := svc.Update(context.Background(), "A1B2C3D4", Update{Condition: &condition, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.Condition != "Recovered" || pt.Status != StatusInactive {
		t.Errorf("update not applied: %+v", pt)
	}
	// Untouched fields survive
	if pt.Name != "John Doe" || pt.Age != 54 {
		t.Errorf("unrelated fields changed: %+v", pt)
	}
}

func TestUpdate_InvalidGender(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Gender("Robot")
	if _, err := svc.Update(context.Background(), "A1B2C3D4", Update{Gender: &bad}); err == nil {
		t.Error("expected validation error")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Update(context.Background(), "missing", Update{}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNameByTag(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, err := svc.NameByTag(context.Background(), "A1B2C3D4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "John Doe" {
		t.Errorf("expected John Doe, got %s", name)
	}

	if _, err := svc.NameByTag(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), "A1B2C3D4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), "A1B2C3D4"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
