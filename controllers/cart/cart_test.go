package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arekings/ringstech-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64) models.Product {
	t.Helper()
	p := models.Product{
		ProductID:       id,
		ProductName:     "Ring Phone X",
		UnitPrice:       decimal.NewFromFloat(price),
		Description:     "flagship",
		Category:        "phones",
		AvailableColors: "black, silver",
		InStock:         10,
		Image:           id + ".png",
		IsAvailable:     true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedCart(t *testing.T, db *gorm.DB, id string, checkedOut bool) models.Cart {
	t.Helper()
	cart := models.Cart{CartID: id, TotalAmount: decimal.Zero, CheckedOut: checkedOut}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}

func cartRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	group := r.Group("/ringstech/api/v1/cart")
	group.POST("/", AddItemToCartHandler(db))
	group.GET("/", ViewCartHandler(db))
	group.GET("/clear", ClearCartHandler(db))
	group.POST("/new", CreateCartHandler(db))
	return r
}

func doAdd(r *gin.Engine, params url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ringstech/api/v1/cart/?"+params.Encode(), nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemToCart_NewItem(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 250.00)
	seedCart(t, db, "c1", false)
	r := cartRouter(db)

	w := doAdd(r, url.Values{
		"cart_id":    {"c1"},
		"product_id": {"p1"},
		"quantity":   {"2"},
		"color":      {"black"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, db.First(&item, "cart_id = ? AND product_id = ? AND color = ?", "c1", "p1", "black").Error)
	require.Equal(t, 2, item.Quantity)
	require.Equal(t, "Ring Phone X", item.ProductName)
	require.True(t, item.Price.Equal(decimal.NewFromFloat(250.00)))

	var cart models.Cart
	require.NoError(t, db.First(&cart, "cart_id = ?", "c1").Error)
	require.True(t, cart.TotalAmount.Equal(decimal.NewFromFloat(500.00)),
		"total should be price*quantity, got %s", cart.TotalAmount)
}

func TestAddItemToCart_MergesQuantityForSameProductAndColor(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "c1", false)
	r := cartRouter(db)

	for _, qty := range []string{"1", "2", "3"} {
		w := doAdd(r, url.Values{
			"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {qty}, "color": {"black"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	var items []models.CartItem
	require.NoError(t, db.Find(&items, "cart_id = ?", "c1").Error)
	require.Len(t, items, 1)
	require.Equal(t, 6, items[0].Quantity)
}

func TestAddItemToCart_DifferentColorMakesNewRow(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "c1", false)
	r := cartRouter(db)

	doAdd(r, url.Values{"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {"1"}, "color": {"black"}})
	doAdd(r, url.Values{"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {"1"}, "color": {"silver"}})

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", "c1").Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestAddItemToCart_MergeIsScopedToCart(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "c1", false)
	seedCart(t, db, "c2", false)
	r := cartRouter(db)

	doAdd(r, url.Values{"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {"1"}, "color": {"black"}})
	doAdd(r, url.Values{"cart_id": {"c2"}, "product_id": {"p1"}, "quantity": {"4"}, "color": {"black"}})

	var c1Item, c2Item models.CartItem
	require.NoError(t, db.First(&c1Item, "cart_id = ?", "c1").Error)
	require.NoError(t, db.First(&c2Item, "cart_id = ?", "c2").Error)
	require.Equal(t, 1, c1Item.Quantity)
	require.Equal(t, 4, c2Item.Quantity)
}

func TestAddItemToCart_MissingParams(t *testing.T) {
	db := setupDB(t)
	r := cartRouter(db)

	tests := []struct {
		name   string
		params url.Values
	}{
		{"missing cart_id", url.Values{"product_id": {"p1"}, "quantity": {"1"}}},
		{"missing product_id", url.Values{"cart_id": {"c1"}, "quantity": {"1"}}},
		{"missing quantity", url.Values{"cart_id": {"c1"}, "product_id": {"p1"}}},
		{"bad quantity", url.Values{"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {"zero"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAdd(r, tt.params)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestAddItemToCart_UnknownProductOrCart(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "c1", false)
	r := cartRouter(db)

	w := doAdd(r, url.Values{"cart_id": {"nope"}, "product_id": {"p1"}, "quantity": {"1"}})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doAdd(r, url.Values{"cart_id": {"c1"}, "product_id": {"nope"}, "quantity": {"1"}})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemToCart_CheckedOutCartIsConflict(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "c1", true)
	r := cartRouter(db)

	w := doAdd(r, url.Values{"cart_id": {"c1"}, "product_id": {"p1"}, "quantity": {"1"}})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestViewCart(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "p1", 100.00)
	seedCart(t, db, "empty", false)
	seedCart(t, db, "done", true)
	seedCart(t, db, "full", false)
	r := cartRouter(db)

	doAdd(r, url.Values{"cart_id": {"full"}, "product_id": {"p1"}, "quantity": {"2"}, "color": {"black"}})

	t.Run("unknown cart is not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/?cart_id=nope", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("checked out cart is not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/?cart_id=done", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty open cart is an empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/?cart_id=empty", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("missing cart_id is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/", nil))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cart with items lists them", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/?cart_id=full", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Ring Phone X")
	})
}

func TestClearCart(t *testing.T) {
	db := setupDB(t)
	seedCart(t, db, "c1", false)
	r := cartRouter(db)

	clear := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ringstech/api/v1/cart/clear?cart_id="+id, nil))
		return w
	}

	w := clear("c1")
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, db.First(&cart, "cart_id = ?", "c1").Error)
	require.True(t, cart.CheckedOut)

	// Idempotent: a second clear succeeds and the flag stays set.
	w = clear("c1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&cart, "cart_id = ?", "c1").Error)
	require.True(t, cart.CheckedOut)

	// Unknown cart id mutates nothing and reports failure.
	w = clear("nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateCart(t *testing.T) {
	db := setupDB(t)
	r := cartRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ringstech/api/v1/cart/new", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "cart_id")

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("checked_out = ?", false).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
