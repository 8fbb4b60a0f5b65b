package productControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aman123933/amazon-project/models"
)

// ProductSummary is a catalog row with its review aggregates.
type ProductSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	ReleaseDate  time.Time `json:"release_date"`
	AvgRating    float64   `json:"avg_rating"`
	ReviewCount  int       `json:"review_count"`
}

// GET /user/products?q=searchterm
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Table("products").
			Select("products.id, products.name, products.manufacturer, products.price, products.description, products.release_date, COALESCE(AVG(reviews.rating), 0) AS avg_rating, COUNT(reviews.id) AS review_count").
			Joins("LEFT JOIN reviews ON reviews.product_id = products.id").
			Group("products.id").
			Order("products.release_date DESC")

		if q := c.Query("q"); q != "" {
			pattern := "%" + q + "%"
			query = query.Where(
				"products.name LIKE ? OR products.manufacturer LIKE ? OR products.description LIKE ?",
				pattern, pattern, pattern,
			)
		}

		var products []ProductSummary
		if err := query.Scan(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /user/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product ProductSummary
		result := db.Table("products").
			Select("products.id, products.name, products.manufacturer, products.price, products.description, products.release_date, COALESCE(AVG(reviews.rating), 0) AS avg_rating, COUNT(reviews.id) AS review_count").
			Joins("LEFT JOIN reviews ON reviews.product_id = products.id").
			Where("products.id = ?", id).
			Group("products.id").
			Scan(&product)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", id).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product, "reviews": reviews})
	}
}
