package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aman123933/amazon-project/middleware"
	"github.com/Aman123933/amazon-project/models"
)

// OrderSummary is one row of the order-history listing.
type OrderSummary struct {
	ID              uint      `json:"id"`
	OrderRef        string    `json:"order_ref"`
	OrderDate       time.Time `json:"order_date"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address"`
	ItemCount       int       `json:"item_count"`
}

type OrderItemDetail struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Quantity     int     `json:"quantity"`
	PriceAtTime  float64 `json:"price_at_time"`
}

type OrderDetail struct {
	models.Order
	Items []OrderItemDetail `json:"items"`
}

// ListUserOrders returns the user's orders newest first. The item count
// is computed with an outer join; an order without items cannot exist
// but costs nothing to handle.
func ListUserOrders(db *gorm.DB, userID uint) ([]OrderSummary, error) {
	var summaries []OrderSummary
	err := db.Table("orders").
		Select("orders.id, orders.order_ref, orders.order_date, orders.status, orders.total_amount, orders.shipping_address, COUNT(order_items.id) AS item_count").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Group("orders.id").
		Order("orders.order_date DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// FetchOrderDetail loads one order with its items joined to product
// name and manufacturer. Ownership is part of the lookup: an order
// belonging to someone else is gorm.ErrRecordNotFound, indistinguishable
// from an order that never existed.
func FetchOrderDetail(db *gorm.DB, userID, orderID uint) (*OrderDetail, error) {
	var order models.Order
	if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return nil, err
	}

	var items []OrderItemDetail
	err := db.Table("order_items").
		Select("order_items.product_id, products.name, products.manufacturer, order_items.quantity, order_items.price_at_time").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", order.ID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &OrderDetail{Order: order, Items: items}, nil
}

// -------- Handlers --------

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		summaries, err := ListUserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, summaries)
	}
}

// GET /orders/:orderID
func GetOrderDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		detail, err := FetchOrderDetail(db, userID, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
