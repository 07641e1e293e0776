package repository

import (
	"context"
	"testing"

	"github.com/gdg-garage/trip-hotels-api/internal/testutil"
)

func TestSessionRepository_FindByToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db)
	testutil.CreateSession(t, db, user.ID, "token-abc")

	got, err := repo.FindByToken(ctx, "token-abc")
	if err != nil {
		t.Fatalf("FindByToken returned error: %v", err)
	}
	if got == nil || got.UserID != user.ID {
		t.Fatalf("expected session for user %d, got %+v", user.ID, got)
	}

	got, err = repo.FindByToken(ctx, "missing")
	if err != nil {
		t.Fatalf("FindByToken returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session, got %+v", got)
	}
}
