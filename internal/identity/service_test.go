package identity

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func TestCreateHashesPasswordAndAppliesDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateInput{
		Email:    "jane@duka.shop",
		Username: "jane",
		Password: "s3cret",
		Phone:    "+254700000001",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.Role != RoleAttendant {
		t.Fatalf("expected default role %s, got %s", RoleAttendant, user.Role)
	}
	if user.Image == "" {
		t.Fatalf("expected a default image")
	}

	stored, err := svc.repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if string(stored.PasswordHash) == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("s3cret")) != nil {
		t.Fatalf("stored hash does not match the password")
	}
}

func TestCreateRejectsDuplicateIdentifiers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	base := CreateInput{Email: "jane@duka.shop", Username: "jane", Password: "pw", Phone: "+254700000001"}
	if _, err := svc.Create(ctx, base); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name string
		in   CreateInput
		want string
	}{
		{"email", CreateInput{Email: "jane@duka.shop", Username: "other", Password: "pw", Phone: "+254700000002"}, "Email jane@duka.shop already exists"},
		{"phone", CreateInput{Email: "other@duka.shop", Username: "other", Password: "pw", Phone: "+254700000001"}, "Phone +254700000001 already exists"},
		{"username", CreateInput{Email: "other@duka.shop", Username: "jane", Password: "pw", Phone: "+254700000002"}, "Username jane already exists"},
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

func TestUpdateReChecksOnlyChangedIdentifiers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	jane, err := svc.Create(ctx, CreateInput{Email: "jane@duka.shop", Username: "jane", Password: "pw", Phone: "+254700000001"})
	if err != nil {
		t.Fatalf("create jane: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Email: "john@duka.shop", Username: "john", Password: "pw", Phone: "+254700000002"}); err != nil {
		t.Fatalf("create john: %v", err)
	}

	// Keeping her own email is not a conflict.
	sameEmail := jane.Email
	if _, err := svc.Update(ctx, jane.ID, UpdateInput{Email: &sameEmail}); err != nil {
		t.Fatalf("no-op email update: %v", err)
	}

	taken := "john@duka.shop"
	var ce *ConflictError
	if _, err := svc.Update(ctx, jane.ID, UpdateInput{Email: &taken}); !errors.As(err, &ce) {
		t.Fatalf("expected conflict on taken email, got %v", err)
	}
}

func TestUpdatePasswordReplacesHash(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateInput{Email: "jane@duka.shop", Username: "jane", Password: "old", Phone: "+254700000001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdatePassword(ctx, user.ID, "new"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	stored, err := svc.repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("new")) != nil {
		t.Fatalf("new password does not verify")
	}
	if bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("old")) == nil {
		t.Fatalf("old password still verifies")
	}
}

func TestAttendantsFiltersByRole(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	admin := RoleAdmin
	if _, err := svc.Create(ctx, CreateInput{Email: "boss@duka.shop", Username: "boss", Password: "pw", Phone: "+254700000001", Role: admin}); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Email: "till@duka.shop", Username: "till", Password: "pw", Phone: "+254700000002"}); err != nil {
		t.Fatalf("create attendant: %v", err)
	}

	attendants, err := svc.Attendants(ctx)
	if err != nil {
		t.Fatalf("attendants: %v", err)
	}
	if len(attendants) != 1 || attendants[0].Username != "till" {
		t.Fatalf("expected only the attendant, got %+v", attendants)
	}
}

func TestDeleteRemovesUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateInput{Email: "jane@duka.shop", Username: "jane", Password: "pw", Phone: "+254700000001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
