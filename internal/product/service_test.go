package product

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func baseInput() CreateInput {
	return CreateInput{
		Name:        "Sugar 1kg",
		SKU:         "SKU-1",
		ProductCode: "PC-1",
		Slug:        "sugar-1kg",
		BarCode:     "6001001",
		Price:       120,
		BuyingPrice: 100,
		StockQty:    50,
	}
}

func TestCreateRejectsDuplicates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, baseInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		want   string
	}{
		{"slug", func(in *CreateInput) { in.SKU, in.ProductCode, in.BarCode = "SKU-2", "PC-2", "6001002" }, "Product with slug sugar-1kg already exists"},
		{"sku", func(in *CreateInput) { in.Slug, in.ProductCode, in.BarCode = "other", "PC-2", "6001002" }, "Product with SKU SKU-1 already exists"},
		{"product code", func(in *CreateInput) { in.Slug, in.SKU, in.BarCode = "other", "SKU-2", "6001002" }, "Product with product code PC-1 already exists"},
		{"bar code", func(in *CreateInput) { in.Slug, in.SKU, in.ProductCode = "other", "SKU-2", "PC-2" }, "Product with bar code 6001001 already exists"},
	}
	for _, tc := range cases {
		in := baseInput()
		tc.mutate(&in)
		_, err := svc.Create(ctx, in)
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected conflict, got %v", tc.name, err)
		}
		if ce.Message != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, ce.Message)
		}
	}
}

func TestEmptyBarCodesNeverCollide(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := baseInput()
	first.BarCode = ""
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := CreateInput{Name: "Salt 1kg", SKU: "SKU-2", ProductCode: "PC-2", Slug: "salt-1kg"}
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("create second without bar code: %v", err)
	}
}

func TestUpdateReChecksChangedIdentifiers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sugar, err := svc.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("create sugar: %v", err)
	}
	salt := CreateInput{Name: "Salt 1kg", SKU: "SKU-2", ProductCode: "PC-2", Slug: "salt-1kg"}
	if _, err := svc.Create(ctx, salt); err != nil {
		t.Fatalf("create salt: %v", err)
	}

	// Re-submitting its own SKU passes.
	same := "SKU-1"
	if _, err := svc.Update(ctx, sugar.ID, UpdateInput{SKU: &same}); err != nil {
		t.Fatalf("no-op update: %v", err)
	}

	taken := "SKU-2"
	var ce *ConflictError
	if _, err := svc.Update(ctx, sugar.ID, UpdateInput{SKU: &taken}); !errors.As(err, &ce) {
		t.Fatalf("expected conflict on taken SKU, got %v", err)
	}

	price := 140.0
	updated, err := svc.Update(ctx, sugar.ID, UpdateInput{Price: &price})
	if err != nil {
		t.Fatalf("price update: %v", err)
	}
	if updated.Price != 140 || updated.SKU != "SKU-1" {
		t.Fatalf("unexpected product after update: %+v", updated)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sugar, err := svc.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, sugar.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, sugar.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
