package checkoutControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartControllers "github.com/Aman123933/amazon-project/controllers/cart"
	orderControllers "github.com/Aman123933/amazon-project/controllers/order"
	"github.com/Aman123933/amazon-project/middleware"
	"github.com/Aman123933/amazon-project/models"
	"github.com/Aman123933/amazon-project/validation"
)

// ErrEmptyCart is a user-correctable state, not a fault.
var ErrEmptyCart = errors.New("your cart is empty")

// ValidationError carries a customer-facing message from the address or
// card checks, propagated verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type PlaceOrderInput struct {
	Address    string `form:"address" json:"address"`
	City       string `form:"city" json:"city"`
	State      string `form:"state" json:"state"`
	Zip        string `form:"zip" json:"zip"`
	Expiration string `form:"cc-expiration" json:"cc_expiration"`
}

func (in *PlaceOrderInput) trim() {
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Zip = strings.TrimSpace(in.Zip)
	in.Expiration = strings.TrimSpace(in.Expiration)
}

// snapshotLine is one cart line joined with the live product row at
// placement time. Price here is the value frozen into the order.
type snapshotLine struct {
	ProductID uint
	Name      string
	Price     float64
	Quantity  int
}

// PlaceOrder converts the user's cart into an order. The order row, its
// items, and the cart drain commit or roll back as one transaction. The
// cart snapshot is taken once, under FOR UPDATE row locks on Postgres,
// so two concurrent placements by the same user serialize: the loser
// re-reads an empty cart and gets ErrEmptyCart instead of creating a
// second order.
func PlaceOrder(db *gorm.DB, userID uint, in PlaceOrderInput) (*models.Order, error) {
	var count int64
	if err := db.Model(&models.CartLine{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyCart
	}

	in.trim()
	if ok, msg := validation.ValidateAddress(in.Address, in.City, in.State, in.Zip); !ok {
		return nil, &ValidationError{Message: msg}
	}
	if ok, msg := validation.ValidateCardExpiration(in.Expiration); !ok {
		return nil, &ValidationError{Message: msg}
	}

	shippingAddress := fmt.Sprintf("%s, %s, %s, %s", in.Address, in.City, in.State, in.Zip)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		lines, err := snapshotCart(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			// Lost a race with a concurrent placement that drained the cart.
			return ErrEmptyCart
		}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				PriceAtTime: line.Price,
			})
		}

		order = models.Order{
			OrderRef:        newOrderRef(),
			UserID:          userID,
			OrderDate:       time.Now(),
			Status:          models.OrderStatusPlaced,
			TotalAmount:     total,
			ShippingAddress: shippingAddress,
			Items:           items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// snapshotCart reads the user's cart lines joined with products. On
// Postgres the cart rows are locked FOR UPDATE for the rest of the
// transaction; SQLite has a single writer and rejects the clause.
func snapshotCart(tx *gorm.DB, userID uint) ([]snapshotLine, error) {
	q := tx.Table("cart_lines").
		Select("cart_lines.product_id, products.name, products.price, cart_lines.quantity").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.user_id = ?", userID)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_lines"}})
	}

	var lines []snapshotLine
	if err := q.Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// GET /user/checkout
func GetCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, total, err := cartControllers.LoadView(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart_items": lines, "total": total})
	}
}

// POST /user/checkout/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, input)
		if err != nil {
			var vErr *ValidationError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			default:
				// The cause is for operators, never for the customer.
				log.Printf("place order failed for user %d: %v", userID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
			}
			return
		}

		orderControllers.BroadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully!",
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
		})
	}
}
