package controllers

import (
	"strconv"

	"github.com/itsmelouis/kiosko/pkg/resp"
	"github.com/itsmelouis/kiosko/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/products?categoryId=
func (h *MenuController) Products(c *gin.Context) {
	var categoryID uint
	if v := c.Query("categoryId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(n)
	}
	products, err := h.Svc.Products(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /menu/products/:id
func (h *MenuController) ProductDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	p, err := h.Svc.ProductByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if p == nil {
		resp.NotFound(c, "product not found")
		return
	}
	resp.OK(c, p)
}

// GET /menu/products/:id/options
func (h *MenuController) ProductOptions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	opts, err := h.Svc.OptionsForProduct(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, opts)
}
