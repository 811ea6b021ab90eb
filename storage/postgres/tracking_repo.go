package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type trackingRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewTrackingRepo(db *pgxpool.Pool, log logger.ILogger) storage.ITrackingStorage {
	return &trackingRepo{db: db, log: log}
}

// Append inserts one immutable event. It does not validate that the status
// is a legal successor; that is the state machine's job a layer above.
func (r *trackingRepo) Append(ctx context.Context, event *models.TrackingEvent) error {
	query := `
		INSERT INTO order_tracking (order_id, status, message, updated_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		event.OrderID,
		event.Status,
		event.Message,
		event.UpdatedBy,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		r.log.Error("failed to append tracking event", logger.String("order_id", event.OrderID), logger.Error(err))
		return err
	}
	return nil
}

func (r *trackingRepo) History(ctx context.Context, orderID string) ([]*models.TrackingEvent, error) {
	query := `
		SELECT id, order_id, status, message, updated_by, created_at
		FROM order_tracking
		WHERE order_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("failed to get tracking history", logger.String("order_id", orderID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []*models.TrackingEvent
	for rows.Next() {
		var e models.TrackingEvent
		err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Message, &e.UpdatedBy, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
