package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
)

type putSubscriptionRequest struct {
	Endpoint       string `json:"endpoint" binding:"required"`
	P256DH         string `json:"p256dh" binding:"required"`
	Auth           string `json:"auth" binding:"required"`
	ManufacturerID string `json:"manufacturer_id" binding:"required"`
}

// PutSubscription handles the creation or replacement of a subscription.
func (h *Handler) PutSubscription(c *gin.Context) {
	var req putSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := model.PushSubscription{
		Endpoint:       req.Endpoint,
		P256DH:         req.P256DH,
		Auth:           req.Auth,
		ManufacturerID: req.ManufacturerID,
	}
	if err := h.store.UpsertSubscription(c.Request.Context(), &sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

type deleteSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// DeleteSubscription handles the deletion of a subscription.
func (h *Handler) DeleteSubscription(c *gin.Context) {
	var req deleteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteSubscription(c.Request.Context(), req.Endpoint); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetVAPIDPublicKey exposes the server's VAPID public key for browser
// push registration.
func (h *Handler) GetVAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vapid_public_key": h.cfg.Push.PublicKey})
}
