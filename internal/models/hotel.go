package models

import "time"

type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `gorm:"not null" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   uint      `gorm:"index;not null" json:"hotelId"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HotelWithRooms is a hotel together with every room it owns. Rooms is never nil.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"Rooms"`
}

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Session{},
		&Enrollment{},
		&Address{},
		&TicketType{},
		&Ticket{},
		&Hotel{},
		&Room{},
	}
}
