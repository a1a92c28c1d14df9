package repositories

import (
	"context"
	"database/sql"

	"reservation-service/config"
	"reservation-service/internal/module/payment/models/entity"
	"reservation-service/internal/module/payment/models/response"
	"reservation-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db         *sqlx.DB
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
	cfgPayPal  *config.PayPalConfig
}

type Repositories interface {
	// db
	InsertOrder(ctx context.Context, order *entity.PaymentOrder) error
	UpdateOrder(ctx context.Context, order *entity.PaymentOrder) error
	FindOrderByProviderID(ctx context.Context, providerOrderID string) (entity.PaymentOrder, error)
	FindOrderByReservationID(ctx context.Context, reservationID string) (entity.PaymentOrder, error)
	// provider
	CreateProviderOrder(ctx context.Context, amount float64, currency, returnURL, cancelURL string) (string, error)
	CaptureProviderOrder(ctx context.Context, providerOrderID string) (response.CaptureReceipt, error)
	GetProviderOrderStatus(ctx context.Context, providerOrderID string) (string, error)
	RefundProviderCapture(ctx context.Context, transactionID string, amount float64, currency, reason string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, httpClient *circuit.HTTPClient, cfgPayPal *config.PayPalConfig) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		httpClient: httpClient,
		cfgPayPal:  cfgPayPal,
	}
}

// InsertOrder implements Repositories. The unique constraint on
// reservation_id enforces at most one order per reservation.
func (r *repositories) InsertOrder(ctx context.Context, order *entity.PaymentOrder) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO payment_orders (reservation_id, provider_order_id, amount, currency, status, created_at)
		VALUES (:reservation_id, :provider_order_id, :amount, :currency, :status, now())
	`, order)
	if err != nil {
		return errors.InternalServerError("error insert payment order")
	}
	return nil
}

// UpdateOrder implements Repositories.
func (r *repositories) UpdateOrder(ctx context.Context, order *entity.PaymentOrder) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE payment_orders
		SET status = :status, transaction_id = :transaction_id, failure_reason = :failure_reason, updated_at = now()
		WHERE provider_order_id = :provider_order_id
	`, order)
	if err != nil {
		return errors.InternalServerError("error update payment order")
	}
	return nil
}

// FindOrderByProviderID implements Repositories.
func (r *repositories) FindOrderByProviderID(ctx context.Context, providerOrderID string) (entity.PaymentOrder, error) {
	query := `SELECT * FROM payment_orders WHERE provider_order_id = $1`
	var order entity.PaymentOrder
	err := r.db.GetContext(ctx, &order, query, providerOrderID)
	if err == sql.ErrNoRows {
		return entity.PaymentOrder{}, errors.NotFound("payment order not found")
	}
	if err != nil {
		return entity.PaymentOrder{}, errors.InternalServerError("error find payment order")
	}
	return order, nil
}

// FindOrderByReservationID implements Repositories.
func (r *repositories) FindOrderByReservationID(ctx context.Context, reservationID string) (entity.PaymentOrder, error) {
	query := `SELECT * FROM payment_orders WHERE reservation_id = $1`
	var order entity.PaymentOrder
	err := r.db.GetContext(ctx, &order, query, reservationID)
	if err == sql.ErrNoRows {
		return entity.PaymentOrder{}, errors.NotFound("payment order not found")
	}
	if err != nil {
		return entity.PaymentOrder{}, errors.InternalServerError("error find payment order")
	}
	return order, nil
}
