package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Aman123933/amazon-project/controllers/cart"
	checkoutControllers "github.com/Aman123933/amazon-project/controllers/checkout"
	productControllers "github.com/Aman123933/amazon-project/controllers/product"
	reviewControllers "github.com/Aman123933/amazon-project/controllers/review"
	"github.com/Aman123933/amazon-project/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))           // GET /user/products?q=
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))    // GET /user/products/:id
		userGroup.POST("/products/:id/reviews", reviewControllers.AddReview(db)) // POST /user/products/:id/reviews

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))              // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(db))           // POST /user/cart
			cartGroup.DELETE("/:id", cartControllers.RemoveFromCart(db)) // DELETE /user/cart/:id
		}

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout", checkoutControllers.GetCheckout(db))              // GET /user/checkout
		userGroup.POST("/checkout/place", checkoutControllers.PlaceOrderHandler(db)) // POST /user/checkout/place
	}
}
