package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/trip-hotels-api/internal/auth"
	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"github.com/gdg-garage/trip-hotels-api/internal/service"
	"go.uber.org/zap"
)

type HotelsService interface {
	SearchAllHotels(ctx context.Context, userID uint) ([]models.Hotel, error)
	SearchHotelRooms(ctx context.Context, hotelID uint) (*models.HotelWithRooms, error)
}

type HotelsHandler struct {
	service HotelsService
	log     *zap.Logger
}

func NewHotelsHandler(service HotelsService, log *zap.Logger) *HotelsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotelsHandler{service: service, log: log}
}

type ListHotelsOutput struct {
	Body []models.Hotel
}

func (h *HotelsHandler) HandleListHotels(ctx context.Context, input *struct{}) (*ListHotelsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	hotels, err := h.service.SearchAllHotels(ctx, userID)
	if err != nil {
		return nil, h.statusError(err)
	}

	return &ListHotelsOutput{Body: hotels}, nil
}

type GetHotelInput struct {
	HotelID int64 `path:"hotelId" doc:"Hotel identifier"`
}

type GetHotelOutput struct {
	Body *models.HotelWithRooms
}

func (h *HotelsHandler) HandleGetHotel(ctx context.Context, input *GetHotelInput) (*GetHotelOutput, error) {
	if input.HotelID <= 0 {
		return nil, h.statusError(&service.NotFoundError{Message: "No result for this search!"})
	}

	hotel, err := h.service.SearchHotelRooms(ctx, uint(input.HotelID))
	if err != nil {
		return nil, h.statusError(err)
	}

	return &GetHotelOutput{Body: hotel}, nil
}

// statusError is the only place service errors become HTTP statuses.
func (h *HotelsHandler) statusError(err error) error {
	var notFound *service.NotFoundError
	var reqErr *service.RequestError

	switch {
	case errors.As(err, &notFound):
		return huma.Error404NotFound(notFound.Message)
	case errors.As(err, &reqErr):
		return huma.Error400BadRequest(reqErr.Message)
	default:
		h.log.Error("hotels request failed", zap.Error(err))
		return huma.Error500InternalServerError("Internal Server Error")
	}
}

// bodylessNotFound drops the response body once a 404 status is set, so
// missing enrollments and hotels answer with the status alone.
func bodylessNotFound(ctx huma.Context, next func(huma.Context)) {
	next(&notFoundContext{Context: ctx})
}

type notFoundContext struct {
	huma.Context
	notFound bool
}

func (c *notFoundContext) SetStatus(code int) {
	if code == http.StatusNotFound {
		c.notFound = true
		c.Context.SetHeader("Content-Length", "0")
	}
	c.Context.SetStatus(code)
}

func (c *notFoundContext) BodyWriter() io.Writer {
	if c.notFound {
		return io.Discard
	}
	return c.Context.BodyWriter()
}
