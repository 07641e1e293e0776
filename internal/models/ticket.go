package models

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null" json:"ticketTypeId"`
	TicketType   TicketType   `gorm:"foreignKey:TicketTypeID" json:"TicketType"`
	EnrollmentID uint         `gorm:"index;not null" json:"enrollmentId"`
	Enrollment   Enrollment   `gorm:"foreignKey:EnrollmentID" json:"-"`
	Status       TicketStatus `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
