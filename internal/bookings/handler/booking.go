package handler

import (
	"net/http"

	"smarttour/internal/bookings/service"
	httputil "smarttour/pkg/http"
	"smarttour/pkg/logger"
	"smarttour/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	sessions service.SessionService
	bookings service.BookingService
	log      *logger.Logger
}

func NewBookingHandler(sessions service.SessionService, bookings service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		sessions: sessions,
		bookings: bookings,
		log:      log,
	}
}

func (h *BookingHandler) ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	tours, err := h.bookings.ListTours(r.Context(), query.Get("category"), query.Get("search"))
	if err != nil {
		h.writeError(w, "ListTours", err)
		return
	}

	h.writeSuccess(w, "ListTours", tours)
}

func (h *BookingHandler) GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.bookings.GetTour(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetTour", err)
		return
	}

	h.writeSuccess(w, "GetTour", tour)
}

func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.StartSessionRequest
	if _, err := httputil.DecodeOptionalBody(r, &req); err != nil {
		h.writeError(w, "StartSession", err)
		return
	}

	session, err := h.sessions.Start(r.Context(), &req)
	if err != nil {
		h.writeError(w, "StartSession", err)
		return
	}

	if err := httputil.WriteCreated(w, session); err != nil {
		h.log.Error("failed to write created response", "handler", "StartSession", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.sessions.Get(r.Context(), ps.ByName("token"))
	if err != nil {
		h.writeError(w, "GetSession", err)
		return
	}

	h.writeSuccess(w, "GetSession", session)
}

func (h *BookingHandler) SelectTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.SelectTourRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, "SelectTour", err)
		return
	}

	session, err := h.sessions.SelectTour(r.Context(), ps.ByName("token"), &req)
	if err != nil {
		h.writeError(w, "SelectTour", err)
		return
	}

	h.writeSuccess(w, "SelectTour", session)
}

func (h *BookingHandler) SetGuestInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var info model.GuestInfo
	if err := httputil.DecodeBody(r, &info); err != nil {
		h.writeError(w, "SetGuestInfo", err)
		return
	}

	session, err := h.sessions.SetGuestInfo(r.Context(), ps.ByName("token"), &info)
	if err != nil {
		h.writeError(w, "SetGuestInfo", err)
		return
	}

	h.writeSuccess(w, "SetGuestInfo", session)
}

type transitionFunc func(s service.SessionService, r *http.Request, token string) (*model.BookingSession, error)

func (h *BookingHandler) transition(name string, fn transitionFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		session, err := fn(h.sessions, r, ps.ByName("token"))
		if err != nil {
			h.writeError(w, name, err)
			return
		}
		h.writeSuccess(w, name, session)
	}
}

func advance(s service.SessionService, r *http.Request, token string) (*model.BookingSession, error) {
	return s.Advance(r.Context(), token)
}

func retreat(s service.SessionService, r *http.Request, token string) (*model.BookingSession, error) {
	return s.Retreat(r.Context(), token)
}

func reset(s service.SessionService, r *http.Request, token string) (*model.BookingSession, error) {
	return s.Reset(r.Context(), token)
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	quote, err := h.sessions.Quote(r.Context(), ps.ByName("token"))
	if err != nil {
		h.writeError(w, "Quote", err)
		return
	}

	h.writeSuccess(w, "Quote", quote)
}

func (h *BookingHandler) EndSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.sessions.End(r.Context(), ps.ByName("token")); err != nil {
		h.writeError(w, "EndSession", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	records, total, err := h.bookings.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, records, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	record, err := h.bookings.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	h.writeSuccess(w, "GetByID", record)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}
