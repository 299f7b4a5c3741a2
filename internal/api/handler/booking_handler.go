package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carnival/stall-booking/internal/api/metrics"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// BookingHandler handles HTTP requests for stall bookings and the
// allocation/report views derived from them.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create records a new booking. pitchNo may be omitted, null, "" or "-1"
// for an unassigned stall.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), toCreateBookingInput(req))
	if err != nil {
		return err
	}

	pitch := "unassigned"
	if booking.Pitch.Assigned() {
		pitch = "assigned"
	}
	metrics.BookingsCreatedTotal.WithLabelValues(pitch).Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// List returns every booking.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// ListByOwnerToken returns the bookings of the user holding the path token.
//
// @Summary      List a vendor's own bookings
// @Tags         bookings
// @Produce      json
// @Param        token  path      string  true  "Session token"
// @Success      200    {array}   bookingResponse
// @Failure      401    {object}  errorResponse
// @Router       /bookings/{token} [get]
func (h *BookingHandler) ListByOwnerToken(c echo.Context) error {
	bookings, err := h.service.ListByOwnerToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// ListByStatus returns bookings in one status.
//
// @Summary      List bookings by status
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  path      string  true  "Booking status"
// @Success      200     {array}   bookingResponse
// @Router       /bookings/filter/{status} [get]
func (h *BookingHandler) ListByStatus(c echo.Context) error {
	bookings, err := h.service.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Update applies a partial update, including pitch assignment.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request().Context(), id, toBookingUpdate(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking updated"})
}

// Delete removes a booking.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking deleted"})
}

// Proportions counts bookings per stall type.
//
// @Summary      Booking counts per stall type
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /proportions [get]
func (h *BookingHandler) Proportions(c echo.Context) error {
	counts, err := h.service.Proportions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Assigned counts bookings holding a pitch.
//
// @Summary      Number of assigned pitches
// @Tags         allocation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  assignedResponse
// @Router       /assigned [get]
func (h *BookingHandler) Assigned(c echo.Context) error {
	n, err := h.service.AssignedCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignedResponse{Assigned: n})
}

// PitchNumbers lists the assigned pitch numbers.
//
// @Summary      Assigned pitch numbers
// @Tags         allocation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /bookings/list/pitchnumbers [get]
func (h *BookingHandler) PitchNumbers(c echo.Context) error {
	numbers, err := h.service.PitchNumbers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, numbers)
}

// PitchExists answers "true" or "false" as plain text.
//
// @Summary      Check whether a pitch is taken
// @Tags         allocation
// @Produce      plain
// @Security     BearerAuth
// @Param        pitchno  path  string  true  "Pitch number"
// @Success      200  {string}  string
// @Router       /pitchno/{pitchno} [get]
func (h *BookingHandler) PitchExists(c echo.Context) error {
	taken, err := h.service.PitchExists(c.Request().Context(), c.Param("pitchno"))
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, strconv.FormatBool(taken))
}
