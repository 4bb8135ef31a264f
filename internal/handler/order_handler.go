package handler

import (
	"net/http"

	"orderanalytics/internal/dataset"
	"orderanalytics/internal/middleware"
	"orderanalytics/internal/service"
	"orderanalytics/pkg/pagination"
	"orderanalytics/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
	secret       []byte
}

func NewOrderHandler(orderService service.OrderService, secret []byte) *OrderHandler {
	return &OrderHandler{orderService: orderService, secret: secret}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", middleware.RequireRole(h.secret, middleware.RoleAdmin, middleware.RoleAnalyst), h.ListOrders)
		orders.POST("/import", middleware.RequireRole(h.secret, middleware.RoleAdmin), h.ImportOrders)
	}
}

// ImportOrders stores a dataset of orders
// @Summary      Import orders
// @Description  Validates a dataset and stores all of its orders in one transaction
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      []model.Order  true  "Orders dataset"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/orders/import [post]
func (h *OrderHandler) ImportOrders(c *gin.Context) {
	orders, err := dataset.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(http.StatusBadRequest, err))
		return
	}

	n, err := h.orderService.Import(c.Request.Context(), orders)
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Fail(status, err))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"imported": n}))
}

// ListOrders returns stored orders page by page
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of orders per page (default 20)"
// @Success      200    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p := pagination.Parse(c)

	orders, total, err := h.orderService.List(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve orders: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": p.Meta(total),
	}))
}
