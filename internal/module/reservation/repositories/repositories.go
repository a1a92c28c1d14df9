package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/response"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/scheduler"
	"reservation-service/internal/pkg/slotstore"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db              *sqlx.DB
	log             *otelzap.Logger
	httpClient      *circuit.HTTPClient
	slots           *slotstore.Store
	redsync         *redsync.Redsync
	schedulerClient *asynq.Client
	inspector       *asynq.Inspector
	cfgUserService  *config.UserServiceConfig
	cfgCourtService *config.CourtServiceConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	FindCourt(ctx context.Context, courtID int64) (response.CourtDetail, error)
	// slot store
	HoldSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string, ttl time.Duration) error
	ReleaseSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error
	// mutex
	LockReservation(ctx context.Context, reservationID string) (func(), error)
	// db
	InsertReservation(ctx context.Context, reservation *entity.Reservation) error
	UpdateReservation(ctx context.Context, reservation *entity.Reservation) error
	FindReservationByID(ctx context.Context, reservationID string) (entity.Reservation, error)
	CountActiveByCourt(ctx context.Context, courtID int64) (int64, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, runIn time.Duration, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(
	db *sqlx.DB,
	log *otelzap.Logger,
	httpClient *circuit.HTTPClient,
	slots *slotstore.Store,
	rs *redsync.Redsync,
	schedulerClient *asynq.Client,
	inspector *asynq.Inspector,
	cfgUserService *config.UserServiceConfig,
	cfgCourtService *config.CourtServiceConfig,
) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		httpClient:      httpClient,
		slots:           slots,
		redsync:         rs,
		schedulerClient: schedulerClient,
		inspector:       inspector,
		cfgUserService:  cfgUserService,
		cfgCourtService: cfgCourtService,
	}
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invalid token, user service status %d", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// FindCourt implements Repositories. Courts are owned by the court directory
// service; only rate and active flag are read here.
func (r *repositories) FindCourt(ctx context.Context, courtID int64) (response.CourtDetail, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/courts/%d", r.cfgCourtService.Host, r.cfgCourtService.Port, courtID)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.CourtDetail{}, errors.InternalServerError("error find court")
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return response.CourtDetail{}, errors.NotFound("court not found")
	}
	if resp.StatusCode != 200 {
		r.log.Ctx(ctx).Error(fmt.Sprintf("court service returned status %d", resp.StatusCode))
		return response.CourtDetail{}, errors.InternalServerError("error find court")
	}

	var court response.CourtDetail
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&court); err != nil {
		return response.CourtDetail{}, errors.InternalServerError("error parse court response")
	}

	return court, nil
}

// HoldSlots implements Repositories.
func (r *repositories) HoldSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string, ttl time.Duration) error {
	return r.slots.TryHold(ctx, slots, reservationID, ttl)
}

// ReleaseSlots implements Repositories.
func (r *repositories) ReleaseSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error {
	return r.slots.Release(ctx, slots, reservationID)
}

// LockReservation serializes state transitions on one reservation id. The
// cancel endpoint and the expiry task racing on the same reservation resolve
// to exactly one terminal state.
func (r *repositories) LockReservation(ctx context.Context, reservationID string) (func(), error) {
	mutex := r.redsync.NewMutex(
		fmt.Sprintf("lock:reservation:%s", reservationID),
		redsync.WithExpiry(10*time.Second),
		redsync.WithTries(16),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.InternalServerError("error locking reservation")
	}
	return func() {
		if _, err := mutex.Unlock(); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error unlocking reservation %s: %v", reservationID, err))
		}
	}, nil
}

// InsertReservation implements Repositories.
func (r *repositories) InsertReservation(ctx context.Context, reservation *entity.Reservation) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO reservations (id, user_id, court_id, slots, start_time, end_time, status, amount, currency, task_id, created_at, expires_at)
		VALUES (:id, :user_id, :court_id, :slots, :start_time, :end_time, :status, :amount, :currency, :task_id, :created_at, :expires_at)
	`, reservation)
	if err != nil {
		return errors.InternalServerError("error insert reservation")
	}
	return nil
}

// UpdateReservation implements Repositories.
func (r *repositories) UpdateReservation(ctx context.Context, reservation *entity.Reservation) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE reservations
		SET status = :status, task_id = :task_id, converted_booking_id = :converted_booking_id, updated_at = now()
		WHERE id = :id
	`, reservation)
	if err != nil {
		return errors.InternalServerError("error update reservation")
	}
	return nil
}

// FindReservationByID implements Repositories.
func (r *repositories) FindReservationByID(ctx context.Context, reservationID string) (entity.Reservation, error) {
	query := `SELECT * FROM reservations WHERE id = $1`
	var reservation entity.Reservation
	err := r.db.GetContext(ctx, &reservation, query, reservationID)
	if err == sql.ErrNoRows {
		return entity.Reservation{}, errors.NotFound("reservation not found")
	}
	if err != nil {
		return entity.Reservation{}, errors.InternalServerError("error find reservation by id")
	}
	return reservation, nil
}

// CountActiveByCourt implements Repositories.
func (r *repositories) CountActiveByCourt(ctx context.Context, courtID int64) (int64, error) {
	query := `SELECT count(*) FROM reservations WHERE court_id = $1 AND status = $2 AND expires_at > now()`
	var count int64
	err := r.db.GetContext(ctx, &count, query, courtID, entity.StatusActive)
	if err != nil {
		return 0, errors.InternalServerError("error count active reservations")
	}
	return count, nil
}

// SetTaskScheduler enqueues the single-shot expiry task. The task id is kept
// on the reservation row so settle paths can drop the pending task early.
func (r *repositories) SetTaskScheduler(ctx context.Context, runIn time.Duration, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeExpireReservation, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessIn(runIn))
	if err != nil {
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories. Deleting an already-run task is
// not an error; the expiry handler no-ops on terminal reservations anyway.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if taskID == "" {
		return nil
	}
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		r.log.Ctx(ctx).Warn(fmt.Sprintf("error delete scheduler task %s: %v", taskID, err))
	}
	return nil
}
