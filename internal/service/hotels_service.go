package service

import (
	"context"
	"net/http"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"github.com/gdg-garage/trip-hotels-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type EnrollmentRepository interface {
	FindWithAddressByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
}

type TicketRepository interface {
	FindPaidTicketByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
}

type HotelRepository interface {
	FindHotels(ctx context.Context) ([]models.Hotel, error)
	FindHotelWithRooms(ctx context.Context, hotelID uint) (*models.HotelWithRooms, error)
}

type HotelsService struct {
	enrollments EnrollmentRepository
	tickets     TicketRepository
	hotels      HotelRepository
	log         *zap.Logger
}

func NewHotelsService(enrollments EnrollmentRepository, tickets TicketRepository, hotels HotelRepository, log *zap.Logger) *HotelsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotelsService{
		enrollments: enrollments,
		tickets:     tickets,
		hotels:      hotels,
		log:         log.Named("hotels"),
	}
}

// SearchAllHotels lists every hotel for an enrolled user. Access is refused
// only when the user holds a paid ticket whose type excludes lodging; a user
// with no paid ticket at all is let through.
func (s *HotelsService) SearchAllHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	ctx, span := telemetry.StartSpan(ctx, "HotelsService.SearchAllHotels", attribute.Int64("user.id", int64(userID)))
	defer span.End()

	enrollment, err := s.enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if enrollment == nil {
		s.log.Debug("no enrollment", zap.Uint("user_id", userID))
		return nil, notFoundError()
	}

	ticket, err := s.tickets.FindPaidTicketByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if ticket != nil && !ticket.TicketType.IncludesHotel {
		s.log.Debug("paid ticket without hotel",
			zap.Uint("user_id", userID),
			zap.Uint("ticket_id", ticket.ID),
			zap.Uint("ticket_type_id", ticket.TicketTypeID),
		)
		return nil, requestError(http.StatusUnauthorized, msgHotelNotIncluded)
	}
	if ticket == nil {
		// TODO: confirm with product whether enrolled users without a paid ticket should be refused here.
		s.log.Debug("no paid ticket, listing hotels anyway", zap.Uint("user_id", userID))
	}

	hotels, err := s.hotels.FindHotels(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("hotels.count", len(hotels)))
	return hotels, nil
}

// SearchHotelRooms returns one hotel with its rooms. It does not check
// enrollment or tickets.
func (s *HotelsService) SearchHotelRooms(ctx context.Context, hotelID uint) (*models.HotelWithRooms, error) {
	ctx, span := telemetry.StartSpan(ctx, "HotelsService.SearchHotelRooms", attribute.Int64("hotel.id", int64(hotelID)))
	defer span.End()

	hotel, err := s.hotels.FindHotelWithRooms(ctx, hotelID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if hotel == nil {
		s.log.Debug("hotel not found", zap.Uint("hotel_id", hotelID))
		return nil, notFoundError()
	}
	return hotel, nil
}
