package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/validation"
)

func (h *Handler) getCart(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Query("cart_id"), 10, 64)
	if err != nil || cartID <= 0 {
		h.writeError(c, fmt.Errorf("%w: cart_id is required", domain.ErrValidation))
		return
	}

	cart, err := h.services.Carts.GetCart(c.Request.Context(), cartID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCartResponse(cart))
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req validation.AddCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	update, err := h.services.Carts.AddItem(c.Request.Context(), req.CartID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCartUpdateResponse(update))
}

func (h *Handler) updateCartItem(c *gin.Context) {
	cartItemID, err := pathID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req validation.UpdateCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	update, err := h.services.Carts.UpdateItem(c.Request.Context(), cartItemID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCartUpdateResponse(update))
}

func (h *Handler) removeCartItem(c *gin.Context) {
	cartItemID, err := pathID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	update, err := h.services.Carts.RemoveItem(c.Request.Context(), cartItemID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCartUpdateResponse(update))
}
