package booking

import (
	"net/http"

	"tutorbook/internal/api"

	"github.com/gin-gonic/gin"
)

// AllowedMethods is advertised in CORS preflight responses for /bookings.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

type operation int

const (
	opUnsupported operation = iota
	opCreate
	opList
	opUpdateStatus
)

func classify(method string) operation {
	switch method {
	case http.MethodPost:
		return opCreate
	case http.MethodGet:
		return opList
	case http.MethodPut:
		return opUpdateStatus
	default:
		return opUnsupported
	}
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Handle dispatches every method sent to /bookings.
func (h *Handler) Handle(c *gin.Context) {
	switch classify(c.Request.Method) {
	case opCreate:
		h.CreateBooking(c)
	case opList:
		h.ListBookings(c)
	case opUpdateStatus:
		h.UpdateStatus(c)
	default:
		api.RespondError(c, api.MethodNotSupported())
	}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Creates a pending booking for the given date and time.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} api.CreatedResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := api.DecodeJSON(c, &req); err != nil {
		api.RespondError(c, err)
		return
	}

	id, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id, Message: "booking created"})
}

// ListBookings godoc
// @Summary      List bookings
// @Description  With date: all bookings of that date by time ascending. Without: the 100 latest by date and time descending.
// @Tags         bookings
// @Produce      json
// @Param        date query string false "Date filter (YYYY-MM-DD)"
// @Success      200 {object} booking.ListBookingsResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("date"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListBookingsResponse{Bookings: bookings})
}

// UpdateStatus godoc
// @Summary      Update booking status
// @Description  Overwrites the status of a booking. Unknown ids are a silent no-op.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.UpdateStatusRequest true "Status payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := api.DecodeJSON(c, &req); err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.UpdateBookingStatus(c.Request.Context(), req); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "status updated"})
}

// GetSummary godoc
// @Summary      Booking summary
// @Description  Counts bookings per status, optionally for one date.
// @Tags         bookings
// @Produce      json
// @Param        date query string false "Date filter (YYYY-MM-DD)"
// @Success      200 {object} booking.Summary
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context(), c.Query("date"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
