package catalog

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func TestCreateRejectsDuplicateSlugWithinKind(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Acme", Slug: "acme"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Acme", Slug: "acme"})
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if ce.Message != "Brand Acme already exists" {
		t.Fatalf("unexpected message %q", ce.Message)
	}
}

func TestSlugsAreIndependentAcrossKinds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Acme", Slug: "acme"}); err != nil {
		t.Fatalf("create brand: %v", err)
	}
	// The same slug is free for a category: each kind has its own table.
	if _, err := svc.Create(ctx, KindCategory, CreateInput{Name: "Acme", Slug: "acme"}); err != nil {
		t.Fatalf("create category with same slug: %v", err)
	}
}

func TestUnitKeepsAbbreviation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	unit, err := svc.Create(ctx, KindUnit, CreateInput{Name: "Kilogram", Abbreviation: "kg", Slug: "kilogram"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if unit.Abbreviation != "kg" {
		t.Fatalf("expected abbreviation kg, got %q", unit.Abbreviation)
	}
}

func TestUpdateReChecksSlugOnlyWhenChanged(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acme, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("create acme: %v", err)
	}
	if _, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Bolt", Slug: "bolt"}); err != nil {
		t.Fatalf("create bolt: %v", err)
	}

	name := "Acme Inc"
	if _, err := svc.Update(ctx, KindBrand, acme.ID, UpdateInput{Name: &name}); err != nil {
		t.Fatalf("rename without slug change: %v", err)
	}

	taken := "bolt"
	var ce *ConflictError
	if _, err := svc.Update(ctx, KindBrand, acme.ID, UpdateInput{Slug: &taken}); !errors.As(err, &ce) {
		t.Fatalf("expected conflict on taken slug, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acme, err := svc.Create(ctx, KindBrand, CreateInput{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, KindBrand, acme.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, KindBrand, acme.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
