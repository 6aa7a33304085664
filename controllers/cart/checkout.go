package cartControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	orderControllers "github.com/arekings/ringstech-backend/controllers/order"
	"github.com/arekings/ringstech-backend/forms"
	"github.com/arekings/ringstech-backend/mailer"
	"github.com/arekings/ringstech-backend/models"
	"github.com/arekings/ringstech-backend/payments"
	"github.com/arekings/ringstech-backend/utils"
)

// CheckoutDeps bundles what the checkout flow needs. The payment client is
// injected fully configured; nothing here reads ambient state.
type CheckoutDeps struct {
	DB       *gorm.DB
	Payments *payments.Client
	Mail     mailer.Mailer
	Log      *zap.SugaredLogger
}

// Checkout converts an open cart into a durable order and initiates payment
// collection. The order is written first with payment_status=pending; if the
// gateway call then fails, the row stays pending (with no checkout request id)
// and the background reconciler retries initiation, so the partial state is
// recoverable instead of orphaned.
func Checkout(ctx context.Context, deps CheckoutDeps, cartID string, form *forms.OrderForm) (*models.Order, *payments.InitiationResult, error) {
	var cart models.Cart
	if err := deps.DB.First(&cart, "cart_id = ?", cartID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, apperr.NotFound("Cart does not exist!")
		}
		return nil, nil, apperr.Internal("failed to fetch cart", err)
	}
	if cart.CheckedOut {
		return nil, nil, apperr.Conflict("Cart %s is already checked out!", cartID)
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, nil, apperr.ValidationFields(errs)
	}

	order := models.Order{
		OrderID:         uuid.NewString(),
		CartID:          cartID,
		FirstName:       form.FirstName,
		MiddleName:      form.MiddleName,
		LastName:        form.LastName,
		StreetAddress:   form.StreetAddress,
		City:            form.City,
		StateOrProvince: form.StateOrProvince,
		EmailAddress:    form.EmailAddress,
		PhoneNumber:     form.PhoneNumber,
		MpesaNumber:     form.MpesaNumber,
		ZipCode:         form.ZipCode,
		TotalAmount:     cart.TotalAmount,
		TrackingNumber:  utils.GenerateTrackingNumber(),
		PaymentStatus:   models.PaymentStatusPending,
	}

	if err := deps.DB.Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.Conflict("Order already exists!")
		}
		return nil, nil, apperr.Internal("failed to create order", err)
	}

	result, err := deps.Payments.InitiatePayment(ctx, form.MpesaNumber, cart.TotalAmount)
	if err != nil {
		// Order row is already committed; the reconciler will retry initiation.
		deps.Log.Errorw("payment initiation failed, order left pending",
			"order_id", order.OrderID, "error", err)
		return &order, nil, apperr.Upstream("Could not initiate payment", err)
	}

	if result.StatusCode == http.StatusOK {
		err := deps.DB.Model(&models.Order{}).
			Where("order_id = ?", order.OrderID).
			Update("checkout_request_id", result.CheckoutRequestID).Error
		if err != nil {
			deps.Log.Errorw("failed to record checkout request id",
				"order_id", order.OrderID, "error", err)
		}
		order.CheckoutRequestID = result.CheckoutRequestID

		orderControllers.BroadcastOrder(order)
		go func(o models.Order) {
			if err := deps.Mail.SendOrderConfirmation(o); err != nil {
				deps.Log.Warnw("order confirmation mail failed", "order_id", o.OrderID, "error", err)
			}
		}(order)
	}

	return &order, result, nil
}

// POST /cart/checkout
func CheckoutHandler(deps CheckoutDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cart_id")
		if cartID == "" {
			apperr.Respond(c, apperr.Validation("Cart ID Required"))
			return
		}

		var form forms.OrderForm
		if err := c.ShouldBind(&form); err != nil {
			apperr.Respond(c, apperr.Validation("Invalid form submission"))
			return
		}

		_, result, err := Checkout(c.Request.Context(), deps, cartID, &form)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		if result.StatusCode == http.StatusOK {
			c.JSON(http.StatusOK, gin.H{
				"msg":                 "Payment initiated!",
				"response_code":       result.ResponseCode,
				"checkout_request_id": result.CheckoutRequestID,
			})
			return
		}

		// Pass the gateway's answer through untouched.
		c.Data(result.StatusCode, "application/json", result.RawBody)
	}
}
