package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"imovelBack/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `
		id, email, password, first_name, last_name, phone, avatar,
		role, broker_role, creci, years_experience, is_verified, created_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()

	query := `
		INSERT INTO users
			(id, email, password, first_name, last_name, phone,
			 role, broker_role, creci, years_experience, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.Password, u.FirstName, u.LastName, u.Phone,
		u.Role, u.BrokerRole, u.CRECI, u.YearsExperience, u.IsVerified, u.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return r.GetUserByID(ctx, u.ID)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (models.User, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.Avatar != nil {
		set("avatar", *req.Avatar)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, hashed string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`, hashed, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) VerifyUser(ctx context.Context, id string) (models.User, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET is_verified = TRUE, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// AdminList pages through users with the admin panel filters.
func (r *UserRepository) AdminList(ctx context.Context, role string, verified *bool, search string, limit, offset int) ([]models.User, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if role != "" {
		conds = append(conds, "role = "+arg(role))
	}
	if verified != nil {
		conds = append(conds, "is_verified = "+arg(*verified))
	}
	if search != "" {
		pattern := arg("%" + search + "%")
		conds = append(conds, fmt.Sprintf(
			"(first_name ILIKE %s OR last_name ILIKE %s OR email ILIKE %s)",
			pattern, pattern, pattern))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users"+where+" ORDER BY created_at DESC"+limitClause, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

func (r *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE created_at >= $1`, since).Scan(&total)
	return total, err
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	return counts, rows.Err()
}

// Sessions

func (r *UserRepository) CreateSession(ctx context.Context, s models.Session) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		s.RefreshToken, s.UserID, s.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, token string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx,
		`SELECT token, user_id, expires_at FROM refresh_tokens WHERE token = $1`, token).
		Scan(&s.RefreshToken, &s.UserID, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	return err
}

func (r *UserRepository) DeleteSessionForUser(ctx context.Context, token, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE token = $1 AND user_id = $2`, token, userID)
	return err
}

func (r *UserRepository) DeleteSessionsByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u               models.User
		phone           sql.NullString
		avatar          sql.NullString
		brokerRole      sql.NullString
		creci           sql.NullString
		yearsExperience sql.NullInt64
		updatedAt       sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &phone, &avatar,
		&u.Role, &brokerRole, &creci, &yearsExperience, &u.IsVerified, &u.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	if phone.Valid {
		u.Phone = &phone.String
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	if brokerRole.Valid {
		u.BrokerRole = &brokerRole.String
	}
	if creci.Valid {
		u.CRECI = &creci.String
	}
	if yearsExperience.Valid {
		n := int(yearsExperience.Int64)
		u.YearsExperience = &n
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}
