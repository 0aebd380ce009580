package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.services.Products.ListProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	ok(c, http.StatusOK, resp)
}

func (h *Handler) getProduct(c *gin.Context) {
	productID, err := pathID(c, "productId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	product, err := h.services.Products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusOK, toProductResponse(product))
}

func (h *Handler) createProduct(c *gin.Context) {
	var req validation.CreateProductRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	// both were checked by the validator
	amount := decimal.RequireFromString(req.Price)
	unit := currency.MustParseISO(req.Currency)

	product, err := h.services.Products.CreateProduct(c.Request.Context(), domain.Product{
		Name:          req.Name,
		Price:         domain.Money{Amount: amount, Currency: unit},
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	ok(c, http.StatusCreated, toProductResponse(product))
}
