package repositories

import (
	"context"
	"database/sql"
	"time"

	"imovelBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, userID, propertyID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, property_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, property_id) DO NOTHING`,
		userID, propertyID, time.Now())
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, propertyID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`, userID, propertyID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID).Scan(&count)
	return count > 0, err
}

func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID string) ([]models.Property, error) {
	query := "SELECT " + propertyColumns + `
	FROM favorites f
	JOIN properties p ON f.property_id = p.id
	JOIN users u ON p.owner_id = u.id
	LEFT JOIN companies c ON p.company_id = c.id
	WHERE f.user_id = $1
	ORDER BY f.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
