package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/repositories"
	internalerrors "reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/slotstore"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = log_internal.Setup()
}

var reservationColumns = []string{
	"id", "user_id", "court_id", "slots", "start_time", "end_time", "status",
	"amount", "currency", "task_id", "converted_booking_id", "created_at", "expires_at", "updated_at",
}

func TestFindReservationByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	reservationID := uuid.New()
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	slots := slotstore.SlotRefs{{CourtID: 7, StartTime: start, EndTime: start.Add(time.Hour)}}
	slotsJSON, _ := json.Marshal(slots)
	createdAt := start.Add(-24 * time.Hour)

	query := regexp.QuoteMeta(`SELECT * FROM reservations WHERE id = $1`)

	t.Run("reservation found", func(t *testing.T) {
		rows := sqlxmock.NewRows(reservationColumns).AddRow(
			reservationID.String(), int64(42), int64(7), slotsJSON, start, start.Add(time.Hour), entity.StatusActive,
			68.50, "AUD", "task-1", nil, createdAt, createdAt.Add(10*time.Minute), nil,
		)
		mock.ExpectQuery(query).WithArgs(reservationID.String()).WillReturnRows(rows)

		reservation, err := repo.FindReservationByID(context.Background(), reservationID.String())

		assert.NoError(t, err)
		assert.Equal(t, reservationID, reservation.ID)
		assert.Equal(t, int64(42), reservation.UserID)
		assert.Equal(t, entity.StatusActive, reservation.Status)
		assert.Len(t, reservation.Slots, 1)
		assert.Equal(t, int64(7), reservation.Slots[0].CourtID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reservation not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("unknown").WillReturnRows(sqlxmock.NewRows(reservationColumns))

		_, err := repo.FindReservationByID(context.Background(), "unknown")

		assert.Equal(t, internalerrors.NotFound("reservation not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("boom").WillReturnError(assert.AnError)

		_, err := repo.FindReservationByID(context.Background(), "boom")

		assert.Equal(t, internalerrors.InternalServerError("error find reservation by id"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountActiveByCourt(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	query := regexp.QuoteMeta(`SELECT count(*) FROM reservations WHERE court_id = $1 AND status = $2 AND expires_at > now()`)

	t.Run("counts active holds", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"count"}).AddRow(int64(3))
		mock.ExpectQuery(query).WithArgs(int64(7), entity.StatusActive).WillReturnRows(rows)

		count, err := repo.CountActiveByCourt(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(7), entity.StatusActive).WillReturnError(assert.AnError)

		_, err := repo.CountActiveByCourt(context.Background(), 7)

		assert.Equal(t, internalerrors.InternalServerError("error count active reservations"), err)
	})
}

func TestInsertReservation(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	now := time.Now()
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	reservation := &entity.Reservation{
		ID:        uuid.New(),
		UserID:    42,
		CourtID:   7,
		Slots:     slotstore.SlotRefs{{CourtID: 7, StartTime: start, EndTime: start.Add(time.Hour)}},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    entity.StatusActive,
		Amount:    68.50,
		Currency:  "AUD",
		TaskID:    "task-1",
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO reservations").WillReturnResult(sqlxmock.NewResult(1, 1))

		err := repo.InsertReservation(context.Background(), reservation)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO reservations").WillReturnError(assert.AnError)

		err := repo.InsertReservation(context.Background(), reservation)

		assert.Equal(t, internalerrors.InternalServerError("error insert reservation"), err)
	})
}

func TestUpdateReservation(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	reservation := &entity.Reservation{
		ID:     uuid.New(),
		Status: entity.StatusCancelled,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateReservation(context.Background(), reservation)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations").WillReturnError(assert.AnError)

		err := repo.UpdateReservation(context.Background(), reservation)

		assert.Equal(t, internalerrors.InternalServerError("error update reservation"), err)
	})
}
