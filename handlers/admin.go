package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"piwkina-shop/admin"
	"piwkina-shop/i18n"
	"piwkina-shop/models"
	"piwkina-shop/statemachine"
)

// confirmed reads ?confirm=true, the server side of the delete prompt.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

// AdminDashboard returns catalog and order statistics. Admin only
func (h *Handler) AdminDashboard(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context())
	if err != nil {
		adminError(c, err, "Failed to fetch dashboard data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// AdminEvents streams collection changes over a websocket. Admin only
func (h *Handler) AdminEvents(c *gin.Context) {
	h.Hub.ServeWS(c.Writer, c.Request)
}

func (h *Handler) orderList(c *gin.Context) []models.Order {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		return []models.Order{}
	}
	return admin.FilterOrders(orders, c.Query("search"), c.DefaultQuery("status", admin.StatusAll))
}

// AdminGetAllOrders returns orders filtered by ?search= and ?status=. Admin only
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		adminError(c, err, "Failed to fetch orders")
		return
	}
	filtered := admin.FilterOrders(orders, c.Query("search"), c.DefaultQuery("status", admin.StatusAll))

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(filtered),
		"orders":        filtered,
	})
}

// AdminGetOrderDetail returns one order with its line items
func (h *Handler) AdminGetOrderDetail(c *gin.Context) {
	order, err := h.Orders.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		adminError(c, err, "Failed to fetch order details")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":            order,
		"validTransitions": statemachine.ValidTransitionsFrom(order.Status),
	})
}

// AdminUpdateOrderStatus completes or cancels a pending order
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		adminError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":  order,
		"orders": h.orderList(c),
		"toast":  i18n.AdminToast("Success", "Order status updated successfully", false),
	})
}

// AdminExportOrders downloads every order as an xlsx workbook
func (h *Handler) AdminExportOrders(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Orders.Export(c.Request.Context(), &buf); err != nil {
		log.Error().Err(err).Msg("orders export failed")
		adminError(c, err, "Failed to export orders")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
