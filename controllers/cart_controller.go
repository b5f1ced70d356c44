package controllers

import (
	"errors"

	"github.com/itsmelouis/kiosko/entity"
	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/services"
	"github.com/itsmelouis/kiosko/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
	Menu  *services.MenuService
}

func NewCartController(carts *services.CartService, menu *services.MenuService) *CartController {
	return &CartController{Carts: carts, Menu: menu}
}

func cartView(cart entity.Cart) gin.H {
	return gin.H{
		"cart":           cart,
		"total":          utils.CartTotal(cart.Items),
		"itemCount":      utils.CartItemCount(cart.Items),
		"totalFormatted": utils.FormatPrice(utils.CartTotal(cart.Items)),
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := c.GetString("sessionId")
	resp.OK(c, cartView(h.Carts.Snapshot(sid)))
}

type addItemReq struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	OptionIDs []uint `json:"optionIds"`
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	sid := c.GetString("sessionId")

	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !utils.IsValidQuantity(req.Quantity) {
		resp.BadRequest(c, "quantity must be between 1 and 99")
		return
	}

	p, err := h.Menu.ProductByID(req.ProductID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if p == nil {
		resp.NotFound(c, services.ErrProductNotFound.Error())
		return
	}
	if !p.IsAvailable {
		resp.BadRequest(c, services.ErrProductUnavailable.Error())
		return
	}

	opts, err := h.Menu.BuildSelections(req.ProductID, req.OptionIDs)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOptions) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	item := h.Carts.AddItem(sid, services.Snapshot(p), req.Quantity, opts)
	resp.Created(c, gin.H{"item": item, "total": h.Carts.Total(sid), "itemCount": h.Carts.ItemCount(sid)})
}

type updateQtyReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:id/qty — quantity 0 removes the line
func (h *CartController) UpdateQuantity(c *gin.Context) {
	sid := c.GetString("sessionId")
	itemID := c.Param("id")

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity > 99 {
		resp.BadRequest(c, "quantity must be at most 99")
		return
	}

	h.Carts.UpdateQuantity(sid, itemID, req.Quantity)
	resp.OK(c, cartView(h.Carts.Snapshot(sid)))
}

// DELETE /cart/items/:id — absent ids are a no-op, not an error
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := c.GetString("sessionId")
	h.Carts.RemoveItem(sid, c.Param("id"))
	resp.OK(c, cartView(h.Carts.Snapshot(sid)))
}

// DELETE /cart — keeps user and dine mode
func (h *CartController) Clear(c *gin.Context) {
	sid := c.GetString("sessionId")
	h.Carts.Clear(sid)
	resp.OK(c, cartView(h.Carts.Snapshot(sid)))
}

type dineModeReq struct {
	Mode entity.DineMode `json:"mode" binding:"required,oneof=dine-in takeaway"`
}

// PATCH /cart/dine-mode
func (h *CartController) SetDineMode(c *gin.Context) {
	sid := c.GetString("sessionId")
	var req dineModeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Carts.SetDineMode(sid, req.Mode)
	resp.OK(c, gin.H{"dineMode": req.Mode})
}

type cartOpenReq struct {
	Open *bool `json:"open" binding:"required"`
}

// PATCH /cart/open — overlay visibility mirrored for the kiosk front-end
func (h *CartController) SetCartOpen(c *gin.Context) {
	sid := c.GetString("sessionId")
	var req cartOpenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Carts.SetCartOpen(sid, *req.Open)
	resp.OK(c, gin.H{"isOpen": *req.Open})
}
