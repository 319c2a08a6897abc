package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"imovelBack/internal/models"

	"github.com/google/uuid"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyColumns = `
		p.id, p.title, p.description, p.property_type, p.price, p.price_type,
		p.bedrooms, p.bathrooms, p.area, p.parking_spaces,
		p.address, p.city, p.state, p.zip_code, p.country, p.latitude, p.longitude,
		p.images, p.virtual_tour_url, p.amenities, p.status, p.views, p.favorites,
		p.owner_id, p.company_id, p.created_at, p.updated_at,
		u.id, u.first_name, u.last_name, u.email, u.phone, u.role,
		c.id, c.name, c.email, c.phone, c.website`

const propertyJoins = `
	FROM properties p
	JOIN users u ON p.owner_id = u.id
	LEFT JOIN companies c ON p.company_id = c.id`

var sortColumns = map[string]string{
	"price":     "p.price",
	"createdAt": "p.created_at",
	"views":     "p.views",
	"favorites": "p.favorites",
	"area":      "p.area",
}

// BuildPropertyWhere translates a normalized query into a conjunctive WHERE
// clause with positional args. An empty clause is returned when no filter is
// set.
func BuildPropertyWhere(q models.PropertyQuery) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Status != "" {
		conds = append(conds, "p.status = "+arg(q.Status))
	}
	if q.PropertyType != "" {
		conds = append(conds, "p.property_type = "+arg(q.PropertyType))
	}
	if len(q.PropertyTypes) > 0 {
		placeholders := make([]string, 0, len(q.PropertyTypes))
		for _, t := range q.PropertyTypes {
			placeholders = append(placeholders, arg(t))
		}
		conds = append(conds, fmt.Sprintf("p.property_type IN (%s)", strings.Join(placeholders, ",")))
	}
	if q.PriceMin > 0 {
		conds = append(conds, "p.price >= "+arg(q.PriceMin))
	}
	if q.PriceMax > 0 {
		conds = append(conds, "p.price <= "+arg(q.PriceMax))
	}
	if q.City != "" {
		conds = append(conds, "p.city ILIKE "+arg("%"+q.City+"%"))
	}
	if q.State != "" {
		conds = append(conds, "p.state ILIKE "+arg("%"+q.State+"%"))
	}
	if q.BedroomsMin > 0 {
		conds = append(conds, "p.bedrooms >= "+arg(q.BedroomsMin))
	}
	if q.BedroomsMax > 0 {
		conds = append(conds, "p.bedrooms <= "+arg(q.BedroomsMax))
	}
	if q.BathroomsMin > 0 {
		conds = append(conds, "p.bathrooms >= "+arg(q.BathroomsMin))
	}
	if q.BathroomsMax > 0 {
		conds = append(conds, "p.bathrooms <= "+arg(q.BathroomsMax))
	}
	if q.AreaMin > 0 {
		conds = append(conds, "p.area >= "+arg(q.AreaMin))
	}
	if q.AreaMax > 0 {
		conds = append(conds, "p.area <= "+arg(q.AreaMax))
	}
	if q.ParkingSpacesMin > 0 {
		conds = append(conds, "p.parking_spaces >= "+arg(q.ParkingSpacesMin))
	}
	if len(q.Amenities) > 0 {
		// JSONB array containment: the listing amenity set must be a
		// superset of the requested set.
		required, _ := json.Marshal(q.Amenities)
		conds = append(conds, "p.amenities @> "+arg(string(required))+"::jsonb")
	}
	if len(q.AmenitiesAny) > 0 {
		// Overlap instead of containment: any requested amenity matches.
		placeholders := make([]string, 0, len(q.AmenitiesAny))
		for _, a := range q.AmenitiesAny {
			placeholders = append(placeholders, arg(a))
		}
		conds = append(conds, fmt.Sprintf("p.amenities ?| ARRAY[%s]", strings.Join(placeholders, ",")))
	}
	if len(q.Locations) > 0 {
		var locs []string
		for _, loc := range q.Locations {
			pattern := arg("%" + loc + "%")
			locs = append(locs, fmt.Sprintf("p.city ILIKE %s OR p.state ILIKE %s", pattern, pattern))
		}
		conds = append(conds, "("+strings.Join(locs, " OR ")+")")
	}
	if q.OwnerID != "" {
		conds = append(conds, "p.owner_id = "+arg(q.OwnerID))
	}
	if len(q.ExcludeIDs) > 0 {
		placeholders := make([]string, 0, len(q.ExcludeIDs))
		for _, id := range q.ExcludeIDs {
			placeholders = append(placeholders, arg(id))
		}
		conds = append(conds, fmt.Sprintf("p.id NOT IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sortBy, sortOrder string) string {
	if sortBy == "popularity" {
		return " ORDER BY p.views DESC, p.favorites DESC, p.created_at DESC"
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "p.created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// List runs the paginated fetch half of a search. The matching count is a
// separate read; the two are not snapshot-isolated.
func (r *PropertyRepository) List(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	where, args := BuildPropertyWhere(q)

	query := "SELECT " + propertyColumns + propertyJoins + where + orderClause(q.SortBy, q.SortOrder)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, q.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) Count(ctx context.Context, q models.PropertyQuery) (int, error) {
	where, args := BuildPropertyWhere(q)

	var total int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties p"+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PropertyRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT property_type FROM properties WHERE status = $1`, models.StatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PropertyRepository) DistinctCities(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT city FROM properties WHERE status = $1 ORDER BY city ASC`, models.StatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// PriceRange returns MIN/MAX price over available listings, optionally
// narrowed to one property type. ok is false when no listing matched.
func (r *PropertyRepository) PriceRange(ctx context.Context, propertyType string) (float64, float64, bool, error) {
	query := `SELECT MIN(price), MAX(price) FROM properties WHERE status = $1`
	args := []interface{}{models.StatusAvailable}
	if propertyType != "" {
		query += ` AND property_type = $2`
		args = append(args, propertyType)
	}

	var minPrice, maxPrice sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&minPrice, &maxPrice); err != nil {
		return 0, 0, false, err
	}
	if !minPrice.Valid || !maxPrice.Valid {
		return 0, 0, false, nil
	}
	return minPrice.Float64, maxPrice.Float64, true, nil
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()

	images, err := json.Marshal(p.Images)
	if err != nil {
		return models.Property{}, err
	}
	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return models.Property{}, err
	}

	query := `
		INSERT INTO properties
			(id, title, description, property_type, price, price_type,
			 bedrooms, bathrooms, area, parking_spaces,
			 address, city, state, zip_code, country, latitude, longitude,
			 images, virtual_tour_url, amenities, status, owner_id, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`
	_, err = r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.PropertyType, p.Price, p.PriceType,
		p.Bedrooms, p.Bathrooms, p.Area, p.ParkingSpaces,
		p.Address, p.City, p.State, p.ZipCode, p.Country, p.Latitude, p.Longitude,
		string(images), p.VirtualTourURL, string(amenities), p.Status, p.OwnerID, p.CompanyID, p.CreatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}
	return r.GetPropertyByID(ctx, p.ID)
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	query := "SELECT " + propertyColumns + propertyJoins + " WHERE p.id = $1"

	row := r.DB.QueryRowContext(ctx, query, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

func (r *PropertyRepository) UpdateProperty(ctx context.Context, id string, req models.UpdatePropertyRequest) (models.Property, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.PropertyType != nil {
		set("property_type", *req.PropertyType)
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.PriceType != nil {
		set("price_type", *req.PriceType)
	}
	if req.Bedrooms != nil {
		set("bedrooms", *req.Bedrooms)
	}
	if req.Bathrooms != nil {
		set("bathrooms", *req.Bathrooms)
	}
	if req.Area != nil {
		set("area", *req.Area)
	}
	if req.ParkingSpaces != nil {
		set("parking_spaces", *req.ParkingSpaces)
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
	if req.Country != nil {
		set("country", *req.Country)
	}
	if req.Latitude != nil {
		set("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		set("longitude", *req.Longitude)
	}
	if req.Images != nil {
		images, err := json.Marshal(*req.Images)
		if err != nil {
			return models.Property{}, err
		}
		set("images", string(images))
	}
	if req.VirtualTourURL != nil {
		set("virtual_tour_url", *req.VirtualTourURL)
	}
	if req.Amenities != nil {
		amenities, err := json.Marshal(*req.Amenities)
		if err != nil {
			return models.Property{}, err
		}
		set("amenities", string(amenities))
	}
	if req.CompanyID != nil {
		set("company_id", *req.CompanyID)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Property{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Property{}, err
	}
	if rowsAffected == 0 {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return r.GetPropertyByID(ctx, id)
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, id string, status string) (models.Property, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE properties SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return models.Property{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Property{}, err
	}
	if rowsAffected == 0 {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return r.GetPropertyByID(ctx, id)
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE properties SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PropertyRepository) AdjustFavorites(ctx context.Context, id string, delta int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE properties SET favorites = GREATEST(favorites + $1, 0) WHERE id = $2`, delta, id)
	return err
}

func (r *PropertyRepository) RecordView(ctx context.Context, propertyID, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO property_views (property_id, user_id, viewed_at) VALUES ($1, $2, $3)`,
		propertyID, userID, time.Now())
	return err
}

// ViewedProperties returns the listings behind a user's most recent views,
// newest first.
func (r *PropertyRepository) ViewedProperties(ctx context.Context, userID string, limit int) ([]models.Property, error) {
	query := "SELECT " + propertyColumns + `
	FROM property_views pv
	JOIN properties p ON pv.property_id = p.id
	JOIN users u ON p.owner_id = u.id
	LEFT JOIN companies c ON p.company_id = c.id
	WHERE pv.user_id = $1
	ORDER BY pv.viewed_at DESC
	LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
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

// SimilarProperties finds available comparables for market analysis: same
// type and city, bedrooms/bathrooms within one, area within 20%.
func (r *PropertyRepository) SimilarProperties(ctx context.Context, p models.Property, limit int) ([]models.Property, error) {
	query := "SELECT " + propertyColumns + propertyJoins + `
	WHERE p.id <> $1
	  AND p.property_type = $2
	  AND p.city = $3
	  AND p.bedrooms BETWEEN $4 AND $5
	  AND p.bathrooms BETWEEN $6 AND $7
	  AND p.area BETWEEN $8 AND $9
	  AND p.status = $10
	ORDER BY p.created_at DESC
	LIMIT $11`

	rows, err := r.DB.QueryContext(ctx, query,
		p.ID, p.PropertyType, p.City,
		p.Bedrooms-1, p.Bedrooms+1,
		p.Bathrooms-1, p.Bathrooms+1,
		p.Area*0.8, p.Area*1.2,
		models.StatusAvailable, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		similar, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, similar)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&total)
	return total, err
}

func (r *PropertyRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE created_at >= $1`, since).Scan(&total)
	return total, err
}

func (r *PropertyRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM properties GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE owner_id = $1`, ownerID).Scan(&total)
	return total, err
}

// AdminList is the unconstrained listing used by the admin panel: no default
// status and a free-text search across title, description, address and city.
func (r *PropertyRepository) AdminList(ctx context.Context, status, propertyType, ownerID, search string, limit, offset int) ([]models.Property, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if status != "" {
		conds = append(conds, "p.status = "+arg(status))
	}
	if propertyType != "" {
		conds = append(conds, "p.property_type = "+arg(propertyType))
	}
	if ownerID != "" {
		conds = append(conds, "p.owner_id = "+arg(ownerID))
	}
	if search != "" {
		pattern := arg("%" + search + "%")
		conds = append(conds, fmt.Sprintf(
			"(p.title ILIKE %s OR p.description ILIKE %s OR p.address ILIKE %s OR p.city ILIKE %s)",
			pattern, pattern, pattern, pattern))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties p"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	query := "SELECT " + propertyColumns + propertyJoins + where + " ORDER BY p.created_at DESC" + limitClause
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (models.Property, error) {
	var (
		p              models.Property
		latitude       sql.NullFloat64
		longitude      sql.NullFloat64
		imagesJSON     []byte
		virtualTourURL sql.NullString
		amenitiesJSON  []byte
		companyID      sql.NullString
		updatedAt      sql.NullTime
		ownerPhone     sql.NullString
		compID         sql.NullString
		compName       sql.NullString
		compEmail      sql.NullString
		compPhone      sql.NullString
		compWebsite    sql.NullString
	)
	var owner models.OwnerSummary

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.Price, &p.PriceType,
		&p.Bedrooms, &p.Bathrooms, &p.Area, &p.ParkingSpaces,
		&p.Address, &p.City, &p.State, &p.ZipCode, &p.Country, &latitude, &longitude,
		&imagesJSON, &virtualTourURL, &amenitiesJSON, &p.Status, &p.Views, &p.Favorites,
		&p.OwnerID, &companyID, &p.CreatedAt, &updatedAt,
		&owner.ID, &owner.FirstName, &owner.LastName, &owner.Email, &ownerPhone, &owner.Role,
		&compID, &compName, &compEmail, &compPhone, &compWebsite,
	)
	if err != nil {
		return models.Property{}, err
	}

	if latitude.Valid {
		p.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		p.Longitude = &longitude.Float64
	}
	if virtualTourURL.Valid {
		p.VirtualTourURL = &virtualTourURL.String
	}
	if companyID.Valid {
		p.CompanyID = &companyID.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	if ownerPhone.Valid {
		owner.Phone = &ownerPhone.String
	}
	p.Owner = &owner

	if compID.Valid {
		company := models.CompanySummary{
			ID:    compID.String,
			Name:  compName.String,
			Email: compEmail.String,
			Phone: compPhone.String,
		}
		if compWebsite.Valid {
			company.Website = &compWebsite.String
		}
		p.Company = &company
	}

	p.Images = []string{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return models.Property{}, fmt.Errorf("decode images for property %s: %w", p.ID, err)
		}
	}
	p.Amenities = []string{}
	if len(amenitiesJSON) > 0 {
		if err := json.Unmarshal(amenitiesJSON, &p.Amenities); err != nil {
			return models.Property{}, fmt.Errorf("decode amenities for property %s: %w", p.ID, err)
		}
	}

	return p, nil
}
