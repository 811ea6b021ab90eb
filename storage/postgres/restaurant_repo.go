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

type restaurantRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRestaurantRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRestaurantStorage {
	return &restaurantRepo{db: db, log: log}
}

const restaurantColumns = `id, owner_id, name, address, phone, image_url, created_at`

func (r *restaurantRepo) GetAll(ctx context.Context) ([]*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		var rest models.Restaurant
		err := rows.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.Phone, &rest.ImageURL, &rest.CreatedAt)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &rest)
	}
	return restaurants, rows.Err()
}

func (r *restaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	return r.getOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
}

func (r *restaurantRepo) GetByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	return r.getOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE owner_id = $1`, ownerID)
}

func (r *restaurantRepo) getOne(ctx context.Context, query, arg string) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.Phone, &rest.ImageURL, &rest.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.ErrNotFound
		}
		r.log.Error("failed to get restaurant", logger.Error(err))
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepo) GetMenu(ctx context.Context, restaurantID string) ([]*models.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, image_url, is_available, created_at
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.IsAvailable, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *restaurantRepo) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	query := `
		SELECT id, restaurant_id, name, description, price, image_url, is_available, created_at
		FROM menu_items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.IsAvailable, &item.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.ErrNotFound
		}
		r.log.Error("failed to get menu item", logger.String("id", id), logger.Error(err))
		return nil, err
	}
	return &item, nil
}
