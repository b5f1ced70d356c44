package controllers

import (
	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

type payReq struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CardNumber string  `json:"cardNumber" binding:"required"`
	Expiry     string  `json:"expiry" binding:"required"`
	CVV        string  `json:"cvv" binding:"required"`
}

// POST /payment — card format problems are 400s; a modeled decline comes
// back 200 with success=false so the kiosk shows the retry screen.
func (h *PaymentController) Process(c *gin.Context) {
	var req payReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !services.ValidateCardNumber(req.CardNumber) {
		resp.BadRequest(c, "invalid card number")
		return
	}
	if !services.ValidateExpiryDate(req.Expiry) {
		resp.BadRequest(c, "invalid or expired date")
		return
	}
	if !services.ValidateCVV(req.CVV) {
		resp.BadRequest(c, "invalid cvv")
		return
	}

	result, err := h.Svc.ProcessPayment(c.Request.Context(), req.Amount, req.CardNumber)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, result)
}
