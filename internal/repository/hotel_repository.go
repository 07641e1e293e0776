package repository

import (
	"context"
	"errors"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// FindHotels returns every hotel ordered by id.
func (r *HotelRepository) FindHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	if err := r.db.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// FindHotelWithRooms returns nil, nil when no hotel has the given id.
func (r *HotelRepository) FindHotelWithRooms(ctx context.Context, hotelID uint) (*models.HotelWithRooms, error) {
	db := r.db.WithContext(ctx)

	var hotel models.Hotel
	if err := db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	rooms := []models.Room{}
	if err := db.Where("hotel_id = ?", hotel.ID).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}

	return &models.HotelWithRooms{Hotel: hotel, Rooms: rooms}, nil
}
