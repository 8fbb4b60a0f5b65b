package checkoutControllers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aman123933/amazon-project/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))
	return db
}

// seedCart creates a user with two products in the cart:
// (price 100 × qty 2) and (price 50 × qty 1).
func seedCart(t *testing.T, db *gorm.DB) (user models.User, productA, productB models.Product) {
	t.Helper()

	user = models.User{FirstName: "Asha", LastName: "Verma", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	productA = models.Product{Name: "Widget A", Manufacturer: "Acme", Price: 100, Description: "A", ReleaseDate: time.Now()}
	productB = models.Product{Name: "Widget B", Manufacturer: "Acme", Price: 50, Description: "B", ReleaseDate: time.Now()}
	require.NoError(t, db.Create(&productA).Error)
	require.NoError(t, db.Create(&productB).Error)

	require.NoError(t, db.Create(&models.CartLine{UserID: user.ID, ProductID: productA.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartLine{UserID: user.ID, ProductID: productB.ID, Quantity: 1}).Error)
	return user, productA, productB
}

func validInput() PlaceOrderInput {
	return PlaceOrderInput{
		Address:    "221B Baker Street",
		City:       "Mumbai",
		State:      "Maharashtra",
		Zip:        "400001",
		Expiration: "12/99",
	}
}

func TestPlaceOrderFreezesTotalAndPrices(t *testing.T) {
	db := openTestDB(t)
	user, productA, productB := seedCart(t, db)

	order, err := PlaceOrder(db, user.ID, validInput())
	require.NoError(t, err)
	assert.Equal(t, 250.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, "221B Baker Street, Mumbai, Maharashtra, 400001", order.ShippingAddress)
	assert.NotEmpty(t, order.OrderRef)

	// Mutate catalog prices after placement; the order must not move.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", productA.ID).Update("price", 9999).Error)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", productB.ID).Update("price", 1).Error)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	assert.Equal(t, 250.0, stored.TotalAmount)
	require.Len(t, stored.Items, 2)

	prices := map[uint]float64{}
	quantities := map[uint]int{}
	for _, item := range stored.Items {
		prices[item.ProductID] = item.PriceAtTime
		quantities[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 100.0, prices[productA.ID])
	assert.Equal(t, 2, quantities[productA.ID])
	assert.Equal(t, 50.0, prices[productB.ID])
	assert.Equal(t, 1, quantities[productB.ID])

	// Total still equals the sum over items of price_at_time * quantity.
	var recomputed float64
	for _, item := range stored.Items {
		recomputed += item.PriceAtTime * float64(item.Quantity)
	}
	assert.Equal(t, stored.TotalAmount, recomputed)
}

func TestPlaceOrderDrainsCart(t *testing.T) {
	db := openTestDB(t)
	user, _, _ := seedCart(t, db)

	_, err := PlaceOrder(db, user.ID, validInput())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderDoubleSubmission(t *testing.T) {
	db := openTestDB(t)
	user, _, _ := seedCart(t, db)

	_, err := PlaceOrder(db, user.ID, validInput())
	require.NoError(t, err)

	// The cart is gone, so a replayed submission cannot create a second order.
	_, err = PlaceOrder(db, user.ID, validInput())
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)
}

func TestPlaceOrderInvalidZipLeavesCartUntouched(t *testing.T) {
	db := openTestDB(t)
	user, _, _ := seedCart(t, db)

	input := validInput()
	input.Zip = "4001"

	_, err := PlaceOrder(db, user.ID, input)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid PIN code format. Please enter a 6-digit PIN code", vErr.Message)

	var lines int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("user_id = ?", user.ID).Count(&lines).Error)
	assert.EqualValues(t, 2, lines)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestPlaceOrderExpiredCard(t *testing.T) {
	db := openTestDB(t)
	user, _, _ := seedCart(t, db)

	input := validInput()
	input.Expiration = "01/20"

	_, err := PlaceOrder(db, user.ID, input)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Card has expired", vErr.Message)

	var lines int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("user_id = ?", user.ID).Count(&lines).Error)
	assert.EqualValues(t, 2, lines)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)

	user := models.User{FirstName: "Ravi", LastName: "Nair", Email: "ravi@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := PlaceOrder(db, user.ID, validInput())
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestPlaceOrderTrimsFormFields(t *testing.T) {
	db := openTestDB(t)
	user, _, _ := seedCart(t, db)

	input := PlaceOrderInput{
		Address:    "  221B Baker Street  ",
		City:       " Mumbai ",
		State:      " Maharashtra ",
		Zip:        " 400001 ",
		Expiration: " 12/99 ",
	}

	order, err := PlaceOrder(db, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "221B Baker Street, Mumbai, Maharashtra, 400001", order.ShippingAddress)
}
