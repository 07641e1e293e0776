package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/trip-hotels-api/internal/auth"
	"github.com/gdg-garage/trip-hotels-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func RegisterRoutes(r *chi.Mux, log *zap.Logger, authHandler *auth.AuthHandler, hotelsHandler *HotelsHandler) huma.API {
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Trip Hotels API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	RegisterHotelRoutes(api, log, authHandler, hotelsHandler)

	return api
}

func RegisterHotelRoutes(api huma.API, log *zap.Logger, authHandler *auth.AuthHandler, hotelsHandler *HotelsHandler) {
	authMiddleware := authHandler.Middleware(api, log)
	protected := func(o *huma.Operation) {
		o.Tags = []string{"Hotels"}
		o.Security = []map[string][]string{{"bearerAuth": {}}}
		o.Middlewares = append(o.Middlewares, authMiddleware, bodylessNotFound)
	}

	huma.Get(api, "/hotels", hotelsHandler.HandleListHotels, protected, func(o *huma.Operation) {
		o.Summary = "List hotels available to the attendee"
		o.Errors = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound}
	})
	huma.Get(api, "/hotels/{hotelId}", hotelsHandler.HandleGetHotel, protected, func(o *huma.Operation) {
		o.Summary = "Get a hotel with its rooms"
		o.Errors = []int{http.StatusUnauthorized, http.StatusNotFound}
	})
}
