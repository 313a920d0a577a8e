package slot

import (
	"net/http"

	"tutorbook/internal/api"

	"github.com/gin-gonic/gin"
)

// AllowedMethods is advertised in CORS preflight responses for /slots.
var AllowedMethods = []string{http.MethodGet, http.MethodPut, http.MethodOptions}

type operation int

const (
	opUnsupported operation = iota
	opList
	opSetAvailability
)

func classify(method string) operation {
	switch method {
	case http.MethodGet:
		return opList
	case http.MethodPut:
		return opSetAvailability
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

// Handle dispatches every method sent to /slots.
func (h *Handler) Handle(c *gin.Context) {
	switch classify(c.Request.Method) {
	case opList:
		h.ListSlots(c)
	case opSetAvailability:
		h.SetAvailability(c)
	default:
		api.RespondError(c, api.MethodNotSupported())
	}
}

// @Summary      List time slots
// @Description  Returns every time slot ordered by time of day.
// @Tags         slots
// @Produce      json
// @Success      200 {object} slot.ListSlotsResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	slots, err := h.service.ListSlots(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListSlotsResponse{Slots: slots})
}

// @Summary      Set slot availability
// @Description  Opens or closes the slot with the given time label. Unknown labels are a silent no-op.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        request body slot.SetAvailabilityRequest true "Slot payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /slots [put]
func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := api.DecodeJSON(c, &req); err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.SetSlotAvailability(c.Request.Context(), req); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "slot updated"})
}
