package services

import (
	"context"
	"strings"

	"imovelBack/internal/models"
	"imovelBack/internal/repositories"
)

type CompanyService struct {
	CompanyRepo *repositories.CompanyRepository
}

// CreateCompany registers a brokerage and enrolls the creator as its
// director in the same transaction.
func (s *CompanyService) CreateCompany(ctx context.Context, creatorID string, req models.CreateCompanyRequest) (models.Company, error) {
	companyType := strings.ToUpper(req.Type)
	if companyType == "" {
		companyType = models.CompanyTypeBroker
	}

	c := models.Company{
		Name:          req.Name,
		Type:          companyType,
		LicenseNumber: req.LicenseNumber,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Website:       req.Website,
		Logo:          req.Logo,
		Description:   req.Description,
	}
	return s.CompanyRepo.CreateCompany(ctx, c, creatorID)
}

func (s *CompanyService) GetCompany(ctx context.Context, id string) (models.Company, error) {
	return s.CompanyRepo.GetCompanyByID(ctx, id)
}

func (s *CompanyService) ListCompanies(ctx context.Context, filter models.CompanyListFilter) ([]models.Company, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	companies, total, err := s.CompanyRepo.ListCompanies(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, total, nil
}

// UpdateCompany lets a director or an admin edit company details.
func (s *CompanyService) UpdateCompany(ctx context.Context, id, actorID, actorRole string, req models.UpdateCompanyRequest) (models.Company, error) {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return models.Company{}, err
	}
	return s.CompanyRepo.UpdateCompany(ctx, id, req)
}

// DeleteCompany is reserved for admins; directors can only edit.
func (s *CompanyService) DeleteCompany(ctx context.Context, id, actorRole string) error {
	if actorRole != models.RoleAdmin {
		return models.ErrNotOwner
	}
	return s.CompanyRepo.DeleteCompany(ctx, id)
}

func (s *CompanyService) authorize(ctx context.Context, companyID, actorID, actorRole string) error {
	if actorRole == models.RoleAdmin {
		return nil
	}
	isDirector, err := s.CompanyRepo.IsDirector(ctx, companyID, actorID)
	if err != nil {
		return err
	}
	if !isDirector {
		return models.ErrNotOwner
	}
	return nil
}
