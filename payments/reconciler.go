package payments

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/models"
)

// Reconciler retries payment initiation for orders the checkout flow committed
// but never got a gateway acknowledgement for. That gap is reachable whenever
// the gateway call fails after the order row is already durable; rather than
// leave such orders orphaned, this loop picks them up in the background.
type Reconciler struct {
	db       *gorm.DB
	client   *Client
	interval time.Duration
	grace    time.Duration
	log      *zap.SugaredLogger
}

func NewReconciler(db *gorm.DB, client *Client, interval, grace time.Duration, log *zap.SugaredLogger) *Reconciler {
	return &Reconciler{db: db, client: client, interval: interval, grace: grace, log: log}
}

// Run blocks until ctx is cancelled, reconciling on a fixed interval.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("payment reconciler stopped")
			return
		case <-ticker.C:
			if err := r.ReconcileOnce(ctx); err != nil {
				r.log.Errorw("payment reconcile pass failed", "error", err)
			}
		}
	}
}

// ReconcileOnce retries initiation for every pending order older than the
// grace period that has no checkout request id yet.
func (r *Reconciler) ReconcileOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-r.grace)

	var stale []models.Order
	err := r.db.WithContext(ctx).
		Where("payment_status = ? AND checkout_request_id = '' AND created_at < ?",
			models.PaymentStatusPending, cutoff).
		Find(&stale).Error
	if err != nil {
		return err
	}

	for _, order := range stale {
		result, err := r.client.InitiatePayment(ctx, order.MpesaNumber, order.TotalAmount)
		if err != nil {
			r.log.Warnw("initiation retry failed", "order_id", order.OrderID, "error", err)
			continue
		}
		if result.StatusCode != http.StatusOK {
			r.log.Warnw("initiation retry rejected", "order_id", order.OrderID, "status", result.StatusCode)
			continue
		}
		err = r.db.WithContext(ctx).Model(&models.Order{}).
			Where("order_id = ?", order.OrderID).
			Update("checkout_request_id", result.CheckoutRequestID).Error
		if err != nil {
			r.log.Errorw("failed to record checkout request id", "order_id", order.OrderID, "error", err)
			continue
		}
		r.log.Infow("recovered pending order", "order_id", order.OrderID, "checkout_request_id", result.CheckoutRequestID)
	}
	return nil
}
