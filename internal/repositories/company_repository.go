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

type CompanyRepository struct {
	DB *sql.DB
}

const companyColumns = `
		id, name, type, license_number, email, phone, address,
		city, state, zip_code, website, logo, description, is_verified, created_at, updated_at`

func (r *CompanyRepository) CreateCompany(ctx context.Context, c models.Company, creatorID string) (models.Company, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Company{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO companies
			(id, name, type, license_number, email, phone, address,
			 city, state, zip_code, website, logo, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		c.ID, c.Name, c.Type, c.LicenseNumber, c.Email, c.Phone, c.Address,
		c.City, c.State, c.ZipCode, c.Website, c.Logo, c.Description, c.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "companies_license_number_key") {
			return models.Company{}, models.ErrDuplicateLicense
		}
		return models.Company{}, err
	}

	// The creator becomes the company director.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO company_members (company_id, user_id, role) VALUES ($1, $2, $3)`,
		c.ID, creatorID, models.BrokerRoleDirector)
	if err != nil {
		return models.Company{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Company{}, err
	}
	return r.GetCompanyByID(ctx, c.ID)
}

func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id string) (models.Company, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE id = $1", id)
	c, err := scanCompany(row)
	if err != nil {
		return models.Company{}, err
	}

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return models.Company{}, err
	}
	c.Members = members

	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE company_id = $1`, id).Scan(&c.PropertyCount); err != nil {
		return models.Company{}, err
	}

	properties, err := r.recentProperties(ctx, id)
	if err != nil {
		return models.Company{}, err
	}
	c.Properties = properties
	return c, nil
}

// recentProperties returns the newest available listings for a company detail
// page, capped at 10.
func (r *CompanyRepository) recentProperties(ctx context.Context, companyID string) ([]models.Property, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+propertyColumns+propertyJoins+
			" WHERE p.company_id = $1 AND p.status = $2 ORDER BY p.created_at DESC LIMIT 10",
		companyID, models.StatusAvailable)
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

func (r *CompanyRepository) getMembers(ctx context.Context, companyID string) ([]models.CompanyMember, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT cm.user_id, cm.role, u.first_name, u.last_name, u.email, u.phone
		FROM company_members cm
		JOIN users u ON cm.user_id = u.id
		WHERE cm.company_id = $1`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.CompanyMember
	for rows.Next() {
		var m models.CompanyMember
		var phone sql.NullString
		if err := rows.Scan(&m.UserID, &m.Role, &m.User.FirstName, &m.User.LastName, &m.User.Email, &phone); err != nil {
			return nil, err
		}
		if phone.Valid {
			m.User.Phone = &phone.String
		}
		m.User.ID = m.UserID
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *CompanyRepository) IsDirector(ctx context.Context, companyID, userID string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM company_members
		WHERE company_id = $1 AND user_id = $2 AND role = $3`,
		companyID, userID, models.BrokerRoleDirector).Scan(&count)
	return count > 0, err
}

func (r *CompanyRepository) ListCompanies(ctx context.Context, filter models.CompanyListFilter) ([]models.Company, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		conds = append(conds, "type = "+arg(filter.Type))
	}
	if filter.Verified != nil {
		conds = append(conds, "is_verified = "+arg(*filter.Verified))
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR email ILIKE %s)", pattern, pattern))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+companyColumns+" FROM companies"+where+" ORDER BY created_at DESC"+limitClause, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range companies {
		members, err := r.getMembers(ctx, companies[i].ID)
		if err != nil {
			return nil, 0, err
		}
		companies[i].Members = members
		if err := r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM properties WHERE company_id = $1`, companies[i].ID).
			Scan(&companies[i].PropertyCount); err != nil {
			return nil, 0, err
		}
	}
	return companies, total, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, id string, req models.UpdateCompanyRequest) (models.Company, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.LicenseNumber != nil {
		set("license_number", *req.LicenseNumber)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.Address != nil {
		set("address", *req.Address)
	}
	if req.City != nil {
		set("city", *req.City)
	}
	if req.State != nil {
		set("state", *req.State)
	}
	if req.ZipCode != nil {
		set("zip_code", *req.ZipCode)
	}
	if req.Website != nil {
		set("website", *req.Website)
	}
	if req.Logo != nil {
		set("logo", *req.Logo)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE companies SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Company{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Company{}, err
	}
	if rowsAffected == 0 {
		return models.Company{}, models.ErrCompanyNotFound
	}
	return r.GetCompanyByID(ctx, id)
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total)
	return total, err
}

func (r *CompanyRepository) CountMembershipsByUser(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM company_members WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func scanCompany(row rowScanner) (models.Company, error) {
	var (
		c           models.Company
		city        sql.NullString
		state       sql.NullString
		zipCode     sql.NullString
		website     sql.NullString
		logo        sql.NullString
		description sql.NullString
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.LicenseNumber, &c.Email, &c.Phone, &c.Address,
		&city, &state, &zipCode, &website, &logo, &description, &c.IsVerified, &c.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	if err != nil {
		return models.Company{}, err
	}

	if city.Valid {
		c.City = &city.String
	}
	if state.Valid {
		c.State = &state.String
	}
	if zipCode.Valid {
		c.ZipCode = &zipCode.String
	}
	if website.Valid {
		c.Website = &website.String
	}
	if logo.Valid {
		c.Logo = &logo.String
	}
	if description.Valid {
		c.Description = &description.String
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}
	return c, nil
}
