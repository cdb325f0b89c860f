package handlers

import (
	"github.com/gin-gonic/gin"

	bookingdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	trainerdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	userdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucbooking "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucbooking.CreateBooking
	update *ucbooking.UpdateBookingStatus
	list   *ucbooking.ListBookingsForUser
	active *ucbooking.GetActiveBooking

	users    userdomain.Repository
	trainers trainerdomain.Repository
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	update *ucbooking.UpdateBookingStatus,
	list *ucbooking.ListBookingsForUser,
	active *ucbooking.GetActiveBooking,
	users userdomain.Repository,
	trainers trainerdomain.Repository,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		update:   update,
		list:     list,
		active:   active,
		users:    users,
		trainers: trainers,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingPayload struct {
	TrainerID   string  `json:"trainerId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	SessionType string  `json:"type" binding:"required,oneof=online in-person"`
	Notes       string  `json:"notes" binding:"max=200"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type BookingActionRequest struct {
	Action string `json:"action" binding:"required"`

	// create
	Booking *BookingPayload `json:"booking"`

	// update_status
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ======================================================
// POST /bookings
// ======================================================

func (h *BookingHandler) Post(c *gin.Context) {
	var req BookingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	switch req.Action {
	case "create":
		h.createBooking(c, req.Booking)
	case "update_status":
		h.updateStatus(c, req.ID, req.Status)
	default:
		httperr.BadRequest(c, "invalid_action", "Unknown action.")
	}
}

func (h *BookingHandler) createBooking(c *gin.Context, p *BookingPayload) {
	if p == nil {
		httperr.BadRequest(c, "invalid_request", "booking is required.")
		return
	}

	ctx := c.Request.Context()
	clientID := currentUserID(c)

	if p.TrainerID == clientID {
		httperr.Respond(c, bookingdomain.ErrForbidden)
		return
	}

	trainer, err := h.trainers.GetByID(ctx, p.TrainerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client, err := h.users.GetByID(ctx, clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// Omitted price means the trainer's current rate.
	price := p.Price
	if price == 0 {
		price = trainer.PricePerSession
	}

	b, err := h.create.Execute(ctx, ucbooking.CreateBookingInput{
		ClientID:    client.ID,
		ClientName:  client.Name,
		TrainerID:   trainer.UserID,
		TrainerName: trainer.Name,
		Date:        p.Date,
		Time:        p.Time,
		SessionType: p.SessionType,
		Notes:       p.Notes,
		Price:       price,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

func (h *BookingHandler) updateStatus(c *gin.Context, id, status string) {
	if id == "" {
		httperr.BadRequest(c, "invalid_request", "id is required.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), currentUserID(c), id, status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

// ======================================================
// GET /bookings?userId=&role=
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := targetUser(c)
	if !ok {
		return
	}

	// the caller's own role does not pick the view
	role := c.DefaultQuery("role", "client")

	bookings, err := h.list.Execute(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "bookings", bookings, nil)
}

// ======================================================
// GET /user/active-booking?userId=
// ======================================================

func (h *BookingHandler) Active(c *gin.Context) {
	userID, ok := targetUser(c)
	if !ok {
		return
	}

	has, b, err := h.active.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"hasActiveBooking": has,
		"booking":          b,
	})
}
