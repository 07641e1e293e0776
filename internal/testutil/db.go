package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// NewTestDB opens a private in-memory sqlite database with every table migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Email: fmt.Sprintf("user%d@example.com", seq.Add(1))}
	mustCreate(t, db, &user)
	return user
}

func CreateSession(t *testing.T, db *gorm.DB, userID uint, token string) models.Session {
	t.Helper()
	session := models.Session{UserID: userID, Token: token}
	mustCreate(t, db, &session)
	return session
}

func CreateEnrollmentWithAddress(t *testing.T, db *gorm.DB, user models.User) models.Enrollment {
	t.Helper()
	n := seq.Add(1)
	enrollment := models.Enrollment{
		Name:     fmt.Sprintf("Attendee %d", n),
		Cpf:      fmt.Sprintf("%011d", n),
		Birthday: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Phone:    "(21) 98999-9999",
		UserID:   user.ID,
		Address: &models.Address{
			Cep:          "20000-000",
			Street:       "Rua das Laranjeiras",
			City:         "Rio de Janeiro",
			State:        "RJ",
			Number:       "42",
			Neighborhood: "Laranjeiras",
		},
	}
	mustCreate(t, db, &enrollment)
	return enrollment
}

func CreateTicketType(t *testing.T, db *gorm.DB, remote, hotel bool) models.TicketType {
	t.Helper()
	ticketType := models.TicketType{
		Name:          fmt.Sprintf("Ticket type %d", seq.Add(1)),
		Price:         250,
		IsRemote:      remote,
		IncludesHotel: hotel,
	}
	mustCreate(t, db, &ticketType)
	return ticketType
}

func CreateTicket(t *testing.T, db *gorm.DB, enrollmentID, ticketTypeID uint, status models.TicketStatus) models.Ticket {
	t.Helper()
	ticket := models.Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       status,
	}
	mustCreate(t, db, &ticket)
	return ticket
}

func CreateHotel(t *testing.T, db *gorm.DB, name, image string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Image: image}
	mustCreate(t, db, &hotel)
	return hotel
}

func CreateRoom(t *testing.T, db *gorm.DB, hotelID uint, name string, capacity int) models.Room {
	t.Helper()
	room := models.Room{Name: name, Capacity: capacity, HotelID: hotelID}
	mustCreate(t, db, &room)
	return room
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}
