package supplier

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func TestCreateRejectsDuplicates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	base := CreateInput{Name: "Acme", Phone: "+254700000001", Email: "sales@acme.co", RegistrationNumber: "REG-1"}
	if _, err := svc.Create(ctx, base); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name string
		in   CreateInput
		want string
	}{
		{"phone", CreateInput{Name: "Other", Phone: "+254700000001", Email: "x@y.co"}, "Supplier with phone number +254700000001 already exists"},
		{"email", CreateInput{Name: "Other", Phone: "+254700000002", Email: "sales@acme.co"}, "Supplier with email sales@acme.co already exists"},
		{"registration", CreateInput{Name: "Other", Phone: "+254700000003", Email: "z@y.co", RegistrationNumber: "REG-1"}, "Supplier with registration number REG-1 already exists"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.in)
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected conflict, got %v", tc.name, err)
		}
		if ce.Message != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, ce.Message)
		}
	}
}

func TestUpdateKeepsUnchangedFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acme, err := svc.Create(ctx, CreateInput{Name: "Acme", Phone: "+254700000001", Email: "sales@acme.co", Rating: 4.5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Acme Ltd"
	updated, err := svc.Update(ctx, acme.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Acme Ltd" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Phone != acme.Phone || updated.Rating != acme.Rating {
		t.Fatalf("unchanged fields were modified: %+v", updated)
	}
}

func TestDeleteUnknownSupplier(t *testing.T) {
	svc := newTestService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
