package repository

import (
	"context"
	"errors"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindPaidTicketByEnrollmentID returns the enrollment's first PAID ticket with
// its type loaded, or nil, nil if it has none.
func (r *TicketRepository) FindPaidTicketByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ? AND status = ?", enrollmentID, models.TicketStatusPaid).
		Order("id").
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}
