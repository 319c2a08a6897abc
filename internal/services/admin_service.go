package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"imovelBack/internal/models"
	"imovelBack/internal/repositories"
)

const recentWindow = 30 * 24 * time.Hour

type AdminService struct {
	UserRepo     *repositories.UserRepository
	PropertyRepo *repositories.PropertyRepository
	CompanyRepo  *repositories.CompanyRepository
	LeadRepo     *repositories.LeadRepository
	ErrorLog     *log.Logger
}

// Dashboard gathers the admin counters. The reads run sequentially; the first
// failure aborts the whole response.
func (s *AdminService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	var err error

	if d.Totals.Users, err = s.UserRepo.CountAll(ctx); err != nil {
		return models.Dashboard{}, err
	}
	if d.Totals.Properties, err = s.PropertyRepo.CountAll(ctx); err != nil {
		return models.Dashboard{}, err
	}
	if d.Totals.Companies, err = s.CompanyRepo.CountAll(ctx); err != nil {
		return models.Dashboard{}, err
	}
	if d.Totals.Leads, err = s.LeadRepo.CountAll(ctx); err != nil {
		return models.Dashboard{}, err
	}

	since := time.Now().Add(-recentWindow)
	if d.Recent.Users, err = s.UserRepo.CountCreatedSince(ctx, since); err != nil {
		return models.Dashboard{}, err
	}
	if d.Recent.Properties, err = s.PropertyRepo.CountCreatedSince(ctx, since); err != nil {
		return models.Dashboard{}, err
	}

	usersByRole, err := s.UserRepo.CountByRole(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	d.Distributions.UsersByRole = sortedCounts(usersByRole)

	propertiesByStatus, err := s.PropertyRepo.CountByStatus(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	d.Distributions.PropertiesByStatus = sortedCounts(propertiesByStatus)

	return d, nil
}

func sortedCounts(m map[string]int) []models.CountByKey {
	counts := make([]models.CountByKey, 0, len(m))
	for k, v := range m {
		counts = append(counts, models.CountByKey{Key: k, Count: v})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Key < counts[j].Key })
	return counts
}

func (s *AdminService) ListUsers(ctx context.Context, filter models.AdminUserFilter) ([]models.User, models.Pagination, error) {
	page, limit := clampPage(filter.Page, filter.Limit)
	users, total, err := s.UserRepo.AdminList(ctx, filter.Role, filter.Verified, filter.Search, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, paginate(page, limit, total), nil
}

func (s *AdminService) VerifyUser(ctx context.Context, id string) (models.User, error) {
	return s.UserRepo.VerifyUser(ctx, id)
}

// DeleteUser refuses to remove users that still own listings or belong to a
// company.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.UserRepo.GetUserByID(ctx, id); err != nil {
		return err
	}

	owned, err := s.PropertyRepo.CountByOwner(ctx, id)
	if err != nil {
		return err
	}
	memberships, err := s.CompanyRepo.CountMembershipsByUser(ctx, id)
	if err != nil {
		return err
	}
	if owned > 0 || memberships > 0 {
		return models.ErrUserHasRecords
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *AdminService) ListProperties(ctx context.Context, filter models.AdminPropertyFilter) ([]models.Property, models.Pagination, error) {
	page, limit := clampPage(filter.Page, filter.Limit)
	properties, total, err := s.PropertyRepo.AdminList(ctx,
		strings.ToUpper(filter.Status), strings.ToUpper(filter.PropertyType),
		filter.OwnerID, filter.Search, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, paginate(page, limit, total), nil
}

// SetPropertyStatus is the admin override; it skips the ownership check but
// still enforces the status vocabulary.
func (s *AdminService) SetPropertyStatus(ctx context.Context, id, status string) (models.Property, error) {
	status = strings.ToUpper(status)
	if !models.ValidStatus(status) {
		return models.Property{}, models.ErrInvalidStatus
	}
	return s.PropertyRepo.UpdateStatus(ctx, id, status)
}

func (s *AdminService) DeleteProperty(ctx context.Context, id string) error {
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

func (s *AdminService) ListLeads(ctx context.Context, page, limit int) ([]models.Lead, models.Pagination, error) {
	page, limit = clampPage(page, limit)
	leads, total, err := s.LeadRepo.ListLeads(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, paginate(page, limit, total), nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func paginate(page, limit, total int) models.Pagination {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return models.Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
