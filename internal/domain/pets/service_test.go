package pets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type testRepo struct {
	byID  map[string]Pet
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return fmt.Errorf("repo: %w", ErrNotFound)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, fmt.Errorf("repo: %w", ErrNotFound)
	}
	return p, nil
}

func (r *testRepo) ListAvailable(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.Status == StatusAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestService_Create_NormalizesInput(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "  Thor ",
		Species: " DOG",
		Sex:     "",
		Address: Address{City: " São Paulo ", State: "sp"},
		Images:  []string{" ", "https://img/1.jpg"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if p.ID == "" || p.Name != "Thor" || p.Species != SpeciesDog {
		t.Fatalf("unexpected pet %#v", p)
	}
	if p.Sex != SexUnknown || p.Size != SizeMedium {
		t.Fatalf("expected defaults unknown/medium, got %s/%s", p.Sex, p.Size)
	}
	if p.Address.City != "São Paulo" || p.Address.State != "SP" {
		t.Fatalf("expected trimmed address, got %#v", p.Address)
	}
	if len(p.Images) != 1 || p.Images[0] != "https://img/1.jpg" {
		t.Fatalf("expected blank images dropped, got %#v", p.Images)
	}
	if p.Status != StatusAvailable || p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected available with timestamps set, got %#v", p)
	}
}

func TestService_Create_Validation(t *testing.T) {
	valid := CreateInput{Name: "Thor", Species: "dog"}

	cases := []struct {
		name  string
		owner string
		edit  func(in *CreateInput)
	}{
		{"missing owner", " ", func(*CreateInput) {}},
		{"missing name", "owner-1", func(in *CreateInput) { in.Name = " " }},
		{"unknown species", "owner-1", func(in *CreateInput) { in.Species = "parrot" }},
		{"unknown size", "owner-1", func(in *CreateInput) { in.Size = "huge" }},
		{"negative age", "owner-1", func(in *CreateInput) { in.Age = -1 }},
		{"unknown sex", "owner-1", func(in *CreateInput) { in.Sex = "x" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.edit(&in)
			_, err := NewService(newTestRepo()).Create(context.Background(), tc.owner, in)
			if err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_MarkAdopted(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, _ := svc.Create(ctx, "owner-1", CreateInput{Name: "Thor", Species: "dog"})
	other, _ := svc.Create(ctx, "owner-1", CreateInput{Name: "Mia", Species: "cat"})

	adopted, err := svc.MarkAdopted(ctx, p.ID)
	if err != nil {
		t.Fatalf("MarkAdopted error: %v", err)
	}
	if adopted.Status != StatusAdopted || adopted.AdoptedAt == nil {
		t.Fatalf("expected adopted with AdoptedAt, got %#v", adopted)
	}

	if _, err := svc.MarkAdopted(ctx, p.ID); err != ErrAlreadyAdopted {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}
	if _, err := svc.MarkAdopted(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	available, _ := svc.List(ctx)
	if len(available) != 1 || available[0].ID != other.ID {
		t.Fatalf("expected only Mia available, got %#v", available)
	}
	mine, _ := svc.ListByOwner(ctx, "owner-1")
	if len(mine) != 2 {
		t.Fatalf("expected owner to keep seeing both pets, got %d", len(mine))
	}

	owner, err := svc.OwnerOf(ctx, p.ID)
	if err != nil || owner != "owner-1" {
		t.Fatalf("OwnerOf: %q %v", owner, err)
	}
}

func TestService_GetByID_MissingVersusStorageFailure(t *testing.T) {
	svc := NewService(newTestRepo())
	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	svc = NewService(failingRepo{newTestRepo()})
	_, err := svc.GetByID(context.Background(), "pet-1")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("storage failure must not look like a missing pet: %v", err)
	}
	if _, err := svc.OwnerOf(context.Background(), "pet-1"); errors.Is(err, ErrNotFound) {
		t.Fatalf("OwnerOf: storage failure must propagate, got %v", err)
	}
}
