package repositories

import (
	"context"
	"database/sql"
	"time"

	"imovelBack/internal/models"

	"github.com/google/uuid"
)

type LeadRepository struct {
	DB *sql.DB
}

func (r *LeadRepository) CreateLead(ctx context.Context, l models.Lead) (models.Lead, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO leads (id, property_id, user_id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.PropertyID, l.UserID, l.Name, l.Email, l.Phone, l.Message, l.CreatedAt)
	if err != nil {
		return models.Lead{}, err
	}
	return l, nil
}

func (r *LeadRepository) ListLeads(ctx context.Context, limit, offset int) ([]models.Lead, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, property_id, user_id, name, email, phone, message, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		var userID, phone sql.NullString
		if err := rows.Scan(&l.ID, &l.PropertyID, &userID, &l.Name, &l.Email, &phone, &l.Message, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		if userID.Valid {
			l.UserID = &userID.String
		}
		if phone.Valid {
			l.Phone = &phone.String
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (r *LeadRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total)
	return total, err
}
