// Package handler exposes the services over HTTP with gin.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/nikolayk812/swiftcart/internal/validation"
	"github.com/sirupsen/logrus"
)

// Services groups the dependencies of the HTTP layer.
type Services struct {
	Orders    port.OrderService
	Carts     port.CartService
	Products  port.ProductService
	Customers port.CustomerService
}

type Handler struct {
	services Services
	validate *validatorv10.Validate
	log      logrus.FieldLogger
}

func New(services Services, log logrus.FieldLogger) *Handler {
	return &Handler{
		services: services,
		validate: validation.New(),
		log:      log,
	}
}

// NewRouter builds the engine with request ID, logging and recovery middleware and all routes.
func NewRouter(services Services, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	New(services, log).Register(r.Group("/api/v1"))

	return r
}

func (h *Handler) Register(api *gin.RouterGroup) {
	products := api.Group("/products")
	products.GET("", h.listProducts)
	products.GET("/:productId", h.getProduct)
	products.POST("", h.createProduct)

	cart := api.Group("/cart")
	cart.GET("", h.getCart)
	cart.POST("/items", h.addCartItem)
	cart.PUT("/items/:id", h.updateCartItem)
	cart.DELETE("/items/:id", h.removeCartItem)

	orders := api.Group("/orders")
	orders.GET("", h.listOrders)
	orders.POST("", h.placeOrder)
	orders.GET("/:id", h.getOrder)
	orders.PUT("/:id", h.updateOrderStatus)

	customers := api.Group("/customers")
	customers.GET("", h.listCustomers)
	customers.GET("/:customerId", h.getCustomer)
	customers.POST("", h.createCustomer)
	customers.PUT("/:customerId", h.updateCustomer)
	customers.DELETE("/:customerId", h.deleteCustomer)
}
