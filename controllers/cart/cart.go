package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aman123933/amazon-project/middleware"
	"github.com/Aman123933/amazon-project/models"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
	BuyNow    bool `json:"buy_now"`
}

// ViewLine is a cart line joined with its live product row. Price here
// is the current catalog price, for display only; the checkout engine
// takes its own snapshot at placement time.
type ViewLine struct {
	CartLineID   uint    `json:"cart_line_id"`
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// LoadView returns the user's cart lines with live product data and the
// running total at current prices.
func LoadView(db *gorm.DB, userID uint) ([]ViewLine, float64, error) {
	var lines []ViewLine
	err := db.Table("cart_lines").
		Select("cart_lines.id AS cart_line_id, products.id AS product_id, products.name, products.manufacturer, products.price, cart_lines.quantity").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return lines, total, nil
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, total, err := LoadView(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart_items": lines, "total": total})
	}
}

// POST /user/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		// Always a fresh line, even if the product is already in the
		// cart. Quantities are deliberately not merged (see DESIGN.md).
		line := models.CartLine{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
		}
		if err := db.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding to cart"})
			return
		}

		// Buy now: drop everything else so checkout sees only this product.
		if input.BuyNow {
			if err := db.Where("user_id = ? AND product_id != ?", userID, product.ID).
				Delete(&models.CartLine{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing buy now"})
				return
			}
		}

		c.JSON(http.StatusCreated, line)
	}
}

// DELETE /user/cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}

		// Ownership is part of the predicate: another user's line looks
		// exactly like a missing one.
		result := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartLine{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
