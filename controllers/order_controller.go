package controllers

import (
	"errors"
	"strconv"

	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/repository"
	"github.com/itsmelouis/kiosko/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc  *services.OrderService
	Repo *repository.OrderRepository
}

func NewOrderController(s *services.OrderService, repo *repository.OrderRepository) *OrderController {
	return &OrderController{Svc: s, Repo: repo}
}

// POST /orders — checkout. On persistence failure the cart is untouched and
// the kiosk may simply re-submit.
func (h *OrderController) Create(c *gin.Context) {
	sid := c.GetString("sessionId")

	out, err := h.Svc.Submit(sid)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := h.Repo.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /staff/orders?limit=
func (h *OrderController) ListForStaff(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Repo.ListRecentOrders(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type statusReq struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// PATCH /staff/orders/:id/status — guarded transition, two displays cannot
// double-advance the same order
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ok, err := h.Repo.UpdateStatusFromTo(uint(id), req.From, req.To)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.BadRequest(c, "order not in expected status")
		return
	}
	resp.OK(c, gin.H{"status": req.To})
}
