package repository

import (
	"context"
	"testing"

	"github.com/gdg-garage/trip-hotels-api/internal/testutil"
)

func TestEnrollmentRepository_FindWithAddressByUserID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	enrolled := testutil.CreateUser(t, db)
	stranger := testutil.CreateUser(t, db)
	enrollment := testutil.CreateEnrollmentWithAddress(t, db, enrolled)

	t.Run("Enrolled", func(t *testing.T) {
		got, err := repo.FindWithAddressByUserID(ctx, enrolled.ID)
		if err != nil {
			t.Fatalf("FindWithAddressByUserID returned error: %v", err)
		}
		if got == nil || got.ID != enrollment.ID {
			t.Fatalf("expected enrollment %d, got %+v", enrollment.ID, got)
		}
		if got.Address == nil || got.Address.City != "Rio de Janeiro" {
			t.Errorf("expected address to be preloaded, got %+v", got.Address)
		}
	})

	t.Run("NotEnrolled", func(t *testing.T) {
		got, err := repo.FindWithAddressByUserID(ctx, stranger.ID)
		if err != nil {
			t.Fatalf("FindWithAddressByUserID returned error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil enrollment, got %+v", got)
		}
	})
}
