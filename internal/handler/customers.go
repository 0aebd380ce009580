package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/validation"
)

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.services.Customers.ListCustomers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, toCustomerResponse(customer, nil))
	}
	ok(c, http.StatusOK, resp)
}

func (h *Handler) getCustomer(c *gin.Context) {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	customer, err := h.services.Customers.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCustomerResponse(customer.Customer, customer.CartID))
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req validation.CustomerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	created, err := h.services.Customers.CreateCustomer(c.Request.Context(), toCustomer(0, req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusCreated, toCustomerResponse(created.Customer, created.CartID))
}

func (h *Handler) updateCustomer(c *gin.Context) {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req validation.CustomerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	updated, err := h.services.Customers.UpdateCustomer(c.Request.Context(), toCustomer(customerID, req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toCustomerResponse(updated, nil))
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.services.Customers.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		h.writeError(c, err)
		return
	}

	okMessage(c, "customer and associated data deleted")
}

func toCustomer(id int64, req validation.CustomerRequest) domain.Customer {
	return domain.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
	}
}
