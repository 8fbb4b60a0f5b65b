package cartControllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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

// newRouter wires the cart handlers behind a stub auth middleware that
// authenticates every request as the given user.
func newRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/user/cart", GetCart(db))
	r.POST("/user/cart", AddToCart(db))
	r.DELETE("/user/cart/:id", RemoveFromCart(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Manufacturer: "Acme", Price: price, Description: name, ReleaseDate: time.Now()}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddToCartDoesNotMergeLines(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Widget", 100)
	r := newRouter(db, 1)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 1}`, product.ID)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/user/cart", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// Same product added twice: two lines, no merged quantity.
	var lines []models.CartLine
	require.NoError(t, db.Where("user_id = ?", 1).Find(&lines).Error)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/user/cart", bytes.NewBufferString(`{"product_id": 42}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddToCartBuyNowDropsOtherLines(t *testing.T) {
	db := openTestDB(t)
	widget := seedProduct(t, db, "Widget", 100)
	gadget := seedProduct(t, db, "Gadget", 50)
	require.NoError(t, db.Create(&models.CartLine{UserID: 1, ProductID: widget.ID, Quantity: 2}).Error)
	r := newRouter(db, 1)

	w := httptest.NewRecorder()
	body := fmt.Sprintf(`{"product_id": %d, "buy_now": true}`, gadget.ID)
	req, _ := http.NewRequest(http.MethodPost, "/user/cart", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var lines []models.CartLine
	require.NoError(t, db.Where("user_id = ?", 1).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, gadget.ID, lines[0].ProductID)
}

func TestRemoveFromCartOwnership(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Widget", 100)

	foreign := models.CartLine{UserID: 2, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&foreign).Error)

	r := newRouter(db, 1)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/user/cart/%d", foreign.ID), nil)
	r.ServeHTTP(w, req)

	// Someone else's line is reported as missing, never deleted.
	assert.Equal(t, http.StatusNotFound, w.Code)
	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("id = ?", foreign.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveFromCartOwnLine(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Widget", 100)

	line := models.CartLine{UserID: 1, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&line).Error)

	r := newRouter(db, 1)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/user/cart/%d", line.ID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("id = ?", line.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoadViewTotalUsesCurrentPrices(t *testing.T) {
	db := openTestDB(t)
	widget := seedProduct(t, db, "Widget", 100)
	gadget := seedProduct(t, db, "Gadget", 50)
	require.NoError(t, db.Create(&models.CartLine{UserID: 1, ProductID: widget.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartLine{UserID: 1, ProductID: gadget.ID, Quantity: 1}).Error)

	lines, total, err := LoadView(db, 1)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, 250.0, total)

	// The pre-purchase view tracks the live catalog price.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", widget.ID).Update("price", 200).Error)
	_, total, err = LoadView(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 450.0, total)
}
