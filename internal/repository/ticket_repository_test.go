package repository

import (
	"context"
	"testing"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"github.com/gdg-garage/trip-hotels-api/internal/testutil"
)

func TestTicketRepository_FindPaidTicketByEnrollmentID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db)
	enrollment := testutil.CreateEnrollmentWithAddress(t, db, user)
	withHotel := testutil.CreateTicketType(t, db, false, true)

	t.Run("OnlyReserved", func(t *testing.T) {
		testutil.CreateTicket(t, db, enrollment.ID, withHotel.ID, models.TicketStatusReserved)

		got, err := repo.FindPaidTicketByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			t.Fatalf("FindPaidTicketByEnrollmentID returned error: %v", err)
		}
		if got != nil {
			t.Errorf("expected no paid ticket, got %+v", got)
		}
	})

	t.Run("Paid", func(t *testing.T) {
		paid := testutil.CreateTicket(t, db, enrollment.ID, withHotel.ID, models.TicketStatusPaid)

		got, err := repo.FindPaidTicketByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			t.Fatalf("FindPaidTicketByEnrollmentID returned error: %v", err)
		}
		if got == nil || got.ID != paid.ID {
			t.Fatalf("expected ticket %d, got %+v", paid.ID, got)
		}
		if got.Status != models.TicketStatusPaid {
			t.Errorf("expected status PAID, got %s", got.Status)
		}
		if got.TicketType.ID != withHotel.ID || !got.TicketType.IncludesHotel {
			t.Errorf("expected ticket type to be preloaded, got %+v", got.TicketType)
		}
	})

	t.Run("OtherEnrollment", func(t *testing.T) {
		got, err := repo.FindPaidTicketByEnrollmentID(ctx, enrollment.ID+100)
		if err != nil {
			t.Fatalf("FindPaidTicketByEnrollmentID returned error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil ticket, got %+v", got)
		}
	})
}
