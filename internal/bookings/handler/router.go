package handler

import "github.com/julienschmidt/httprouter"

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tours", h.ListTours)
	router.GET("/api/v1/tours/id/:id", h.GetTour)

	router.POST("/api/v1/booking-sessions", h.StartSession)
	router.GET("/api/v1/booking-sessions/:token", h.GetSession)
	router.DELETE("/api/v1/booking-sessions/:token", h.EndSession)
	router.PUT("/api/v1/booking-sessions/:token/tour", h.SelectTour)
	router.PUT("/api/v1/booking-sessions/:token/guests", h.SetGuestInfo)
	router.POST("/api/v1/booking-sessions/:token/advance", h.transition("Advance", advance))
	router.POST("/api/v1/booking-sessions/:token/retreat", h.transition("Retreat", retreat))
	router.POST("/api/v1/booking-sessions/:token/reset", h.transition("Reset", reset))
	router.GET("/api/v1/booking-sessions/:token/quote", h.Quote)

	router.GET("/api/v1/bookings", h.GetAll)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
}
