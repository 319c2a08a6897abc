package main

import (
	"database/sql"
	"log"
	"time"

	"imovelBack/internal/config"
	"imovelBack/internal/handlers"
	"imovelBack/internal/repositories"
	"imovelBack/internal/services"
	"imovelBack/utils"

	"github.com/redis/go-redis/v9"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB
	redis    *redis.Client

	userRepo     *repositories.UserRepository
	propertyRepo *repositories.PropertyRepository

	searchHandler         *handlers.SearchHandler
	userHandler           *handlers.UserHandler
	propertyHandler       *handlers.PropertyHandler
	companyHandler        *handlers.CompanyHandler
	recommendationHandler *handlers.RecommendationHandler
	adminHandler          *handlers.AdminHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	propertyRepo := &repositories.PropertyRepository{DB: db}
	companyRepo := &repositories.CompanyRepository{DB: db}
	favoriteRepo := &repositories.FavoriteRepository{DB: db}
	leadRepo := &repositories.LeadRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.JWT.Secret)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	searchService := services.NewSearchService(propertyRepo, infoLog, errorLog)
	userService := &services.UserService{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
		AccessTTL:    time.Duration(cfg.JWT.AccessTTLHours) * time.Hour,
		RefreshTTL:   time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour,
	}
	propertyService := &services.PropertyService{
		PropertyRepo: propertyRepo,
		FavoriteRepo: favoriteRepo,
		LeadRepo:     leadRepo,
		S3: utils.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		},
		ErrorLog: errorLog,
	}
	companyService := &services.CompanyService{CompanyRepo: companyRepo}
	recommendationService := &services.RecommendationService{
		PropertyRepo: propertyRepo,
		InfoLog:      infoLog,
		ErrorLog:     errorLog,
	}
	adminService := &services.AdminService{
		UserRepo:     userRepo,
		PropertyRepo: propertyRepo,
		CompanyRepo:  companyRepo,
		LeadRepo:     leadRepo,
		ErrorLog:     errorLog,
	}

	return &application{
		errorLog:              errorLog,
		infoLog:               infoLog,
		cfg:                   cfg,
		db:                    db,
		redis:                 rdb,
		userRepo:              userRepo,
		propertyRepo:          propertyRepo,
		searchHandler:         &handlers.SearchHandler{Service: searchService},
		userHandler:           &handlers.UserHandler{Service: userService},
		propertyHandler:       &handlers.PropertyHandler{Service: propertyService},
		companyHandler:        &handlers.CompanyHandler{Service: companyService},
		recommendationHandler: &handlers.RecommendationHandler{Service: recommendationService},
		adminHandler:          &handlers.AdminHandler{Service: adminService},
	}
}
