package controllers

import (
	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/services"

	"github.com/gin-gonic/gin"
)

type LoyaltyController struct {
	Svc   *services.LoyaltyService
	Carts *services.CartService
}

func NewLoyaltyController(s *services.LoyaltyService, carts *services.CartService) *LoyaltyController {
	return &LoyaltyController{Svc: s, Carts: carts}
}

type scanReq struct {
	QRCode string `json:"qrCode" binding:"required"`
}

// POST /loyalty/scan — attaches the customer to the session cart when the
// code matches; an unknown code is a 404, never an attached guest.
func (h *LoyaltyController) Scan(c *gin.Context) {
	sid := c.GetString("sessionId")

	var req scanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.UserByQR(req.QRCode)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if user == nil {
		resp.NotFound(c, "unknown loyalty code")
		return
	}

	h.Carts.SetUser(sid, user)
	resp.OK(c, user)
}

// DELETE /loyalty — continue as guest
func (h *LoyaltyController) Detach(c *gin.Context) {
	sid := c.GetString("sessionId")
	h.Carts.SetUser(sid, nil)
	resp.OK(c, gin.H{"user": nil})
}
