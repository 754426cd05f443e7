package handlers

import (
	"net/http"

	"tripmate/models"
	"tripmate/services/assistant"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the form field setters. The form UI is the only
// writer of booking state; the assistant reads snapshots through the same
// store when a reply is resolved.
type BookingHandler struct {
	Manager *assistant.SessionManager
	Store   assistant.StateStore
}

func NewBookingHandler(manager *assistant.SessionManager, store assistant.StateStore) *BookingHandler {
	return &BookingHandler{Manager: manager, Store: store}
}

// GetBookingStateHandler returns the current form snapshot for one session.
func (h *BookingHandler) GetBookingStateHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Manager.Get(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", id)
		return
	}
	state, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to load booking state", zap.String("sessionId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking state"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateTransportHandler replaces the transport section of the form.
func (h *BookingHandler) UpdateTransportHandler(c *gin.Context) {
	var fields models.TransportFields
	if !h.bindFields(c, &fields) {
		return
	}
	h.updateState(c, func(state *models.BookingState) {
		state.Transport = fields
	})
}

// UpdateAccommodationHandler replaces the accommodation section of the form.
func (h *BookingHandler) UpdateAccommodationHandler(c *gin.Context) {
	var fields models.AccommodationFields
	if !h.bindFields(c, &fields) {
		return
	}
	h.updateState(c, func(state *models.BookingState) {
		state.Accommodation = fields
	})
}

// UpdateTourismHandler replaces the tourism section of the form.
func (h *BookingHandler) UpdateTourismHandler(c *gin.Context) {
	var tourism models.TourismFields
	if !h.bindFields(c, &tourism) {
		return
	}
	h.updateState(c, func(state *models.BookingState) {
		state.Tourism = tourism
	})
}

func (h *BookingHandler) bindFields(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		utils.GetLogger().Warn("Invalid booking fields request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return false
	}
	return true
}

// updateState applies one section mutation on the stored snapshot.
func (h *BookingHandler) updateState(c *gin.Context, apply func(*models.BookingState)) {
	id := c.Param("id")
	if _, ok := h.Manager.Get(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", id)
		return
	}

	state, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to load booking state", zap.String("sessionId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking state"})
		return
	}

	apply(&state)

	if err := h.Store.Set(c.Request.Context(), id, state); err != nil {
		utils.GetLogger().Error("Failed to save booking state", zap.String("sessionId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking state"})
		return
	}
	c.JSON(http.StatusOK, state)
}
