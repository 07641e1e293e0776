package models

import "time"

// Enrollment marks that a user finished address registration for the event.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Cpf       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Address   *Address  `gorm:"foreignKey:EnrollmentID" json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Cep           string    `json:"cep"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Number        string    `json:"number"`
	Neighborhood  string    `json:"neighborhood"`
	AddressDetail string    `json:"addressDetail"`
	EnrollmentID  uint      `gorm:"uniqueIndex;not null" json:"enrollmentId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
