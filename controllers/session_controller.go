package controllers

import (
	"time"

	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/services"
	"github.com/itsmelouis/kiosko/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionController struct {
	Carts     *services.CartService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewSessionController(carts *services.CartService, secret string, ttl time.Duration) *SessionController {
	return &SessionController{Carts: carts, JWTSecret: secret, JWTTTL: ttl}
}

// POST /session — a kiosk starts a customer session and gets the token that
// names its cart.
func (h *SessionController) Start(c *gin.Context) {
	sid := uuid.NewString()
	token, err := utils.GenerateSessionToken(sid, h.JWTSecret, h.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "sessionId": sid})
}

// DELETE /session — full reset between customers: cart, user and dine mode
// are all dropped.
func (h *SessionController) Reset(c *gin.Context) {
	sid := c.GetString("sessionId")
	h.Carts.ResetSession(sid)
	resp.OK(c, gin.H{"reset": true})
}
