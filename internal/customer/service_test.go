package customer

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func TestCreateRejectsDuplicatePhone(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{FirstName: "Jane", Phone: "+254700000001"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, CreateInput{FirstName: "John", Phone: "+254700000001"})
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if ce.Message != "Customer with phone number +254700000001 already exists" {
		t.Fatalf("unexpected message %q", ce.Message)
	}
}

func TestOptionalIdentifiersOnlyConflictWhenSet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Two customers without email or national ID never collide.
	if _, err := svc.Create(ctx, CreateInput{FirstName: "Jane", Phone: "+254700000001"}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{FirstName: "John", Phone: "+254700000002"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if _, err := svc.Create(ctx, CreateInput{FirstName: "Amy", Phone: "+254700000003", Email: "amy@duka.shop"}); err != nil {
		t.Fatalf("create with email: %v", err)
	}
	_, err := svc.Create(ctx, CreateInput{FirstName: "Ann", Phone: "+254700000004", Email: "amy@duka.shop"})
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestUpdateReChecksChangedIdentifiers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	jane, err := svc.Create(ctx, CreateInput{FirstName: "Jane", Phone: "+254700000001", NationalID: "ID-1"})
	if err != nil {
		t.Fatalf("create jane: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{FirstName: "John", Phone: "+254700000002", NationalID: "ID-2"}); err != nil {
		t.Fatalf("create john: %v", err)
	}

	// Re-submitting her own national ID passes.
	same := "ID-1"
	if _, err := svc.Update(ctx, jane.ID, UpdateInput{NationalID: &same}); err != nil {
		t.Fatalf("no-op update: %v", err)
	}

	taken := "ID-2"
	var ce *ConflictError
	if _, err := svc.Update(ctx, jane.ID, UpdateInput{NationalID: &taken}); !errors.As(err, &ce) {
		t.Fatalf("expected conflict on taken national ID, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	jane, err := svc.Create(ctx, CreateInput{FirstName: "Jane", Phone: "+254700000001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, jane.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, jane.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
