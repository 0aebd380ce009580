package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/validation"
)

func (h *Handler) placeOrder(c *gin.Context) {
	var req validation.PlaceOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.services.Orders.PlaceOrder(c.Request.Context(), req.CartID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) getOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	view, err := h.services.Orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toOrderViewResponse(view))
}

func (h *Handler) listOrders(c *gin.Context) {
	views, err := h.services.Orders.ListOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]OrderViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toOrderViewResponse(v))
	}
	ok(c, http.StatusOK, resp)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req validation.UpdateOrderStatusRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.services.Orders.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toOrderResponse(order))
}
