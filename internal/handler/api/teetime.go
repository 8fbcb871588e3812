package api

import (
	"errors"
	"net/http"

	"tee-sheet/internal/domain/teetime"
	reqdto "tee-sheet/internal/handler/dto/request"
	resdto "tee-sheet/internal/handler/dto/response"
	"tee-sheet/internal/handler/httperr"
	"tee-sheet/internal/usecase/commands"
	"tee-sheet/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeeTimeHandler struct {
	commands commands.TeeTimeCommands
	queries  queries.TeeTimeQueries
}

func NewTeeTimeHandler(cmds commands.TeeTimeCommands, qs queries.TeeTimeQueries) *TeeTimeHandler {
	return &TeeTimeHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List tee times for a date
// @Description List all slots for a date, generating the day's grid on first access
// @Tags teetimes
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.TeeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /teetimes [get]
func (h *TeeTimeHandler) ListByDate(c *gin.Context) {
	date, err := teetime.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.queries.ListByDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary List a user's tee times
// @Description List every slot, on any date, where the user holds a seat
// @Tags teetimes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.TeeSlotResponse
// @Failure 500 {object} httperr.Response
// @Router /teetimes/user/{userId} [get]
func (h *TeeTimeHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	views, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Create an ad-hoc slot
// @Description Create a single slot outside the generated grid (admin)
// @Tags teetimes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "Slot"
// @Success 201 {object} resdto.TeeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teetimes [post]
func (h *TeeTimeHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateSlot):
			httperr.AbortWithError(c, http.StatusConflict, err, "A slot already exists for that date and time", nil)
		case errors.Is(err, teetime.ErrInvalidCapacity), errors.Is(err, teetime.ErrNegativePrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Book a slot
// @Description Add one or more players to a slot, attributed to the booking member
// @Tags teetimes
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.BookSlotRequest true "Booking"
// @Success 200 {object} resdto.TeeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teetimes/{id}/book [patch]
func (h *TeeTimeHandler) Book(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.BookSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Book(c.Request.Context(), slotID, req.UserID, req.ToPlayerSpecs())
	if err != nil {
		var capErr *teetime.CapacityError
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tee time not found", nil)
		case errors.Is(err, teetime.ErrAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "You have already booked this tee time", nil)
		case errors.As(err, &capErr):
			httperr.AbortWithError(c, http.StatusConflict, err, capErr.Error(), nil)
		case errors.Is(err, teetime.ErrNoPlayers),
			errors.Is(err, teetime.ErrInvalidPlayerType),
			errors.Is(err, teetime.ErrInvalidTransportMode),
			errors.Is(err, teetime.ErrInvalidHolesOption):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Cancel a booking
// @Description Remove the user and every guest they registered from a slot
// @Tags teetimes
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.CancelSlotRequest true "Cancellation"
// @Success 200 {object} resdto.TeeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teetimes/{id}/cancel [patch]
func (h *TeeTimeHandler) Cancel(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.CancelSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Cancel(c.Request.Context(), slotID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tee time not found", nil)
		case errors.Is(err, teetime.ErrNotBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "You are not booked on this tee time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Update a slot
// @Description Admin override of slot time, capacity, or price
// @Tags teetimes
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Fields to update"
// @Success 200 {object} resdto.TeeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teetimes/{id} [patch]
func (h *TeeTimeHandler) Update(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), slotID, in)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tee time not found", nil)
		case errors.Is(err, teetime.ErrCapacityBelowBooked), errors.Is(err, commands.ErrDuplicateSlot):
			httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
		case errors.Is(err, teetime.ErrInvalidCapacity), errors.Is(err, teetime.ErrNegativePrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Reset all bookings
// @Description Administrative full reset: clears every booking on every date, slots stay
// @Tags teetimes
// @Produce json
// @Success 200 {object} resdto.ResetResponse
// @Failure 500 {object} httperr.Response
// @Router /teetimes/reset [post]
func (h *TeeTimeHandler) ResetBookings(c *gin.Context) {
	cleared, err := h.commands.ResetAllBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ResetResponse{ClearedBookings: cleared})
}

func (h *TeeTimeHandler) slotID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
