package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"imovelBack/internal/models"
	"imovelBack/internal/repositories"
	"imovelBack/utils"

	"github.com/google/uuid"
)

const defaultOwnerListLimit = 10

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type PropertyService struct {
	PropertyRepo *repositories.PropertyRepository
	FavoriteRepo *repositories.FavoriteRepository
	LeadRepo     *repositories.LeadRepository
	S3           utils.S3Config
	ErrorLog     *log.Logger
}

// ValidateCreateProperty checks the create payload. Handlers call it to map
// bad input to a 400 before the service runs.
func ValidateCreateProperty(req models.CreatePropertyRequest) error {
	switch {
	case len(strings.TrimSpace(req.Title)) < 5:
		return errors.New("title must be at least 5 characters")
	case len(strings.TrimSpace(req.Description)) < 20:
		return errors.New("description must be at least 20 characters")
	case req.Price <= 0:
		return errors.New("price must be positive")
	case req.Area <= 0:
		return errors.New("area must be positive")
	case req.Bedrooms < 0 || req.Bathrooms < 0 || req.ParkingSpaces < 0:
		return errors.New("room and parking counts cannot be negative")
	case req.Address == "" || req.City == "" || req.State == "":
		return errors.New("address, city and state are required")
	}
	return nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, ownerID string, req models.CreatePropertyRequest) (models.Property, error) {
	if err := ValidateCreateProperty(req); err != nil {
		return models.Property{}, err
	}
	if req.Country == "" {
		req.Country = "Brasil"
	}

	p := models.Property{
		Title:          req.Title,
		Description:    req.Description,
		PropertyType:   strings.ToUpper(req.PropertyType),
		Price:          req.Price,
		PriceType:      req.PriceType,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Area:           req.Area,
		ParkingSpaces:  req.ParkingSpaces,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Country:        req.Country,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Images:         req.Images,
		VirtualTourURL: req.VirtualTourURL,
		Amenities:      req.Amenities,
		Status:         models.StatusAvailable,
		OwnerID:        ownerID,
		CompanyID:      req.CompanyID,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	return s.PropertyRepo.CreateProperty(ctx, p)
}

// GetProperty fetches one listing and tracks the view. View tracking is
// best-effort; a failed insert never blocks the read.
func (s *PropertyService) GetProperty(ctx context.Context, id, viewerID string) (models.Property, error) {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}

	if err := s.PropertyRepo.IncrementViews(ctx, id); err != nil {
		s.ErrorLog.Printf("failed to bump views for property %s: %v", id, err)
	} else {
		p.Views++
	}
	if viewerID != "" {
		if err := s.PropertyRepo.RecordView(ctx, id, viewerID); err != nil {
			s.ErrorLog.Printf("failed to record view for property %s: %v", id, err)
		}
	}
	return p, nil
}

// ListProperties is the lightweight public listing. Unlike the full search it
// defaults to 10 per page and carries no synonym normalization.
func (s *PropertyService) ListProperties(ctx context.Context, q models.PropertyQuery) ([]models.Property, int, error) {
	if q.Limit < 1 {
		q.Limit = defaultOwnerListLimit
	}
	if q.Status == "" {
		q.Status = models.StatusAvailable
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}

	properties, err := s.PropertyRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.PropertyRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, total, nil
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.Property, error) {
	if limit < 1 {
		limit = defaultOwnerListLimit
	}
	q := models.PropertyQuery{
		OwnerID:   ownerID,
		SortBy:    "createdAt",
		SortOrder: "desc",
		Limit:     limit,
	}
	properties, err := s.PropertyRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

// UpdateProperty applies a partial update. Only the owner or an admin may
// touch a listing.
func (s *PropertyService) UpdateProperty(ctx context.Context, id, actorID, actorRole string, req models.UpdatePropertyRequest) (models.Property, error) {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.UpdateProperty(ctx, id, req)
}

func (s *PropertyService) UpdateStatus(ctx context.Context, id, actorID, actorRole, status string) (models.Property, error) {
	status = strings.ToUpper(status)
	if !models.ValidStatus(status) {
		return models.Property{}, models.ErrInvalidStatus
	}
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.UpdateStatus(ctx, id, status)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id, actorID, actorRole string) error {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return err
	}
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

// AttachImages uploads new images for a listing and appends their URLs to
// the stored image list. Only the owner or an admin may attach.
func (s *PropertyService) AttachImages(ctx context.Context, propertyID, actorID, actorRole string, files []utils.ImageUpload) (models.Property, error) {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return models.Property{}, err
	}
	if p.OwnerID != actorID && actorRole != models.RoleAdmin {
		return models.Property{}, models.ErrNotOwner
	}

	urls, err := s.UploadImages(ctx, propertyID, files)
	if err != nil {
		return models.Property{}, err
	}

	images := append(p.Images, urls...)
	return s.PropertyRepo.UpdateProperty(ctx, propertyID, models.UpdatePropertyRequest{Images: &images})
}

// UploadImages pushes validated image payloads to S3 and returns their public
// URLs in upload order.
func (s *PropertyService) UploadImages(ctx context.Context, propertyID string, files []utils.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		ext, ok := allowedImageTypes[f.ContentType]
		if !ok {
			return nil, fmt.Errorf("unsupported image type %q", f.ContentType)
		}
		name := uuid.NewString() + ext
		if orig := filepath.Ext(f.FileName); orig != "" {
			name = uuid.NewString() + strings.ToLower(orig)
		}
		url, err := utils.UploadFileToS3(s.S3, f.Data, name, "properties/"+propertyID, f.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *PropertyService) AddFavorite(ctx context.Context, userID, propertyID string) error {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return err
	}
	added, err := s.FavoriteRepo.AddToFavorites(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if added {
		if err := s.PropertyRepo.AdjustFavorites(ctx, propertyID, 1); err != nil {
			s.ErrorLog.Printf("failed to bump favorites for property %s: %v", propertyID, err)
		}
	}
	return nil
}

func (s *PropertyService) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	removed, err := s.FavoriteRepo.RemoveFromFavorites(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if removed {
		if err := s.PropertyRepo.AdjustFavorites(ctx, propertyID, -1); err != nil {
			s.ErrorLog.Printf("failed to drop favorites for property %s: %v", propertyID, err)
		}
	}
	return nil
}

func (s *PropertyService) GetFavorites(ctx context.Context, userID string) ([]models.Property, error) {
	properties, err := s.FavoriteRepo.GetFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

func (s *PropertyService) CreateLead(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, lead.PropertyID); err != nil {
		return models.Lead{}, err
	}
	return s.LeadRepo.CreateLead(ctx, lead)
}

func (s *PropertyService) authorize(ctx context.Context, propertyID, actorID, actorRole string) error {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p.OwnerID != actorID && actorRole != models.RoleAdmin {
		return models.ErrNotOwner
	}
	return nil
}
