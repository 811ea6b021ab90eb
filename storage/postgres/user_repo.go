package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type userRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewUserRepo(db *pgxpool.Pool, log logger.ILogger) storage.IUserStorage {
	return &userRepo{db: db, log: log}
}

func (r *userRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	query := `SELECT id, full_name, phone, user_type, created_at FROM profiles WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.FullName, &profile.Phone, &profile.UserType, &profile.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.ErrNotFound
		}
		r.log.Error("failed to get profile", logger.String("id", id), logger.Error(err))
		return nil, err
	}
	return &profile, nil
}
