package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

type AddItemRequest struct {
	CartID    string
	ProductID string
	Color     string
	Quantity  int
}

// AddItemToCart inserts a new line item or, when the cart already holds the
// same product in the same color, bumps that item's quantity in place. The
// increment is a single UPDATE expression so concurrent adds cannot lose
// quantity. The cart total is recomputed inside the same transaction.
func AddItemToCart(db *gorm.DB, req AddItemRequest) (string, error) {
	var cart models.Cart
	if err := db.First(&cart, "cart_id = ?", req.CartID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperr.NotFound("Cart %s does not exist!", req.CartID)
		}
		return "", apperr.Internal("failed to fetch cart", err)
	}
	if cart.CheckedOut {
		return "", apperr.Conflict("Cart %s is already checked out!", req.CartID)
	}

	var product models.Product
	if err := db.First(&product, "product_id = ?", req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperr.NotFound("Product does not exist")
		}
		return "", apperr.Internal("failed to fetch product", err)
	}

	itemID := ""
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ? AND color = ?",
			req.CartID, req.ProductID, req.Color).First(&existing).Error
		switch {
		case err == nil:
			itemID = existing.ItemID
			if err := tx.Model(&models.CartItem{}).
				Where("item_id = ?", existing.ItemID).
				Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			item := models.CartItem{
				ItemID:      uuid.NewString(),
				CartID:      req.CartID,
				ProductID:   req.ProductID,
				Color:       req.Color,
				ProductName: product.ProductName,
				Price:       product.UnitPrice,
				Quantity:    req.Quantity,
				AddedAt:     time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			itemID = item.ItemID
		default:
			return err
		}

		return tx.Model(&models.Cart{}).
			Where("cart_id = ?", req.CartID).
			Update("total_amount", gorm.Expr(
				"(SELECT COALESCE(SUM(price * quantity), 0) FROM cart_items WHERE cart_id = ?)",
				req.CartID)).Error
	})
	if err != nil {
		return "", apperr.Internal("failed to add item to cart", err)
	}
	return itemID, nil
}

// ViewCart returns every line item of an open cart. A checked-out or unknown
// cart is a not-found; an empty cart is an empty list.
func ViewCart(db *gorm.DB, cartID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := db.Where("cart_id = ? AND checked_out = ?", cartID, false).First(&cart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("Cart %s does not exist!", cartID)
		}
		return nil, apperr.Internal("failed to fetch cart", err)
	}

	items := make([]models.CartItem, 0)
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return nil, apperr.Internal("failed to fetch cart items", err)
	}
	return items, nil
}

// ClearCart marks the cart checked out. The transition is one-way and
// repeating it is harmless; an unknown cart id mutates nothing.
func ClearCart(db *gorm.DB, cartID string) error {
	result := db.Model(&models.Cart{}).
		Where("cart_id = ?", cartID).
		Update("checked_out", true)
	if result.Error != nil {
		return apperr.Internal("Could not clear cart!", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Cart %s does not exist!", cartID)
	}
	return nil
}

// CreateCart mints a fresh open cart so a client can start a session.
func CreateCart(db *gorm.DB) (*models.Cart, error) {
	cart := models.Cart{
		CartID:      uuid.NewString(),
		TotalAmount: decimal.Zero,
	}
	if err := db.Create(&cart).Error; err != nil {
		return nil, apperr.Internal("failed to create cart", err)
	}
	return &cart, nil
}

// POST /cart/
func AddItemToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		productID := c.Query("product_id")
		quantityStr := c.Query("quantity")
		color := c.Query("color")

		if cartID == "" {
			apperr.Respond(c, apperr.Validation("Cart Id not provided"))
			return
		}
		if productID == "" {
			apperr.Respond(c, apperr.Validation("Product Id not provided"))
			return
		}
		if quantityStr == "" {
			apperr.Respond(c, apperr.Validation("Item Quantity not provided"))
			return
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 1 {
			apperr.Respond(c, apperr.Validation("Item Quantity must be a positive number"))
			return
		}

		itemID, err := AddItemToCart(db, AddItemRequest{
			CartID:    cartID,
			ProductID: productID,
			Color:     color,
			Quantity:  quantity,
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"msg": "Successfully Added item " + itemID + " to cart " + cartID,
		})
	}
}

// GET /cart/
func ViewCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			apperr.Respond(c, apperr.Validation("Please provide Cart ID"))
			return
		}

		items, err := ViewCart(db, cartID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			apperr.Respond(c, apperr.Validation("Cart ID Not Provided"))
			return
		}

		if err := ClearCart(db, cartID); err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Successfully Cleared Cart"})
	}
}

// POST /cart/new
func CreateCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := CreateCart(db)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"cart_id": cart.CartID})
	}
}
