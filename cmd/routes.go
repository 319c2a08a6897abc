package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, app.rateLimit, secureHeaders, makeResponseJSON)
	optionalAuthMiddleware := standardMiddleware.Append(app.optionalAuth)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	brokerAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("broker"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	mux.Get("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))

	// Auth
	mux.Post("/api/auth/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/api/auth/refresh", standardMiddleware.ThenFunc(app.userHandler.Refresh))
	mux.Post("/api/auth/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/api/auth/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Put("/api/auth/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Put("/api/auth/password", authMiddleware.ThenFunc(app.userHandler.ChangePassword))

	// Search
	mux.Get("/api/search/types", standardMiddleware.ThenFunc(app.searchHandler.GetPropertyTypes))
	mux.Get("/api/search/price-range", standardMiddleware.ThenFunc(app.searchHandler.GetPriceRange))
	mux.Get("/api/search/cities", standardMiddleware.ThenFunc(app.searchHandler.GetCities))
	mux.Get("/api/search", standardMiddleware.ThenFunc(app.searchHandler.Search))

	// Properties
	mux.Post("/api/properties", brokerAuthMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/api/properties/my", brokerAuthMiddleware.ThenFunc(app.propertyHandler.MyProperties))
	mux.Get("/api/properties/:id", optionalAuthMiddleware.ThenFunc(app.propertyHandler.GetProperty))
	mux.Get("/api/properties", standardMiddleware.ThenFunc(app.propertyHandler.ListProperties))
	mux.Put("/api/properties/:id/status", authMiddleware.ThenFunc(app.propertyHandler.UpdateStatus))
	mux.Put("/api/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/api/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Post("/api/properties/:id/images", authMiddleware.ThenFunc(app.propertyHandler.UploadImages))
	mux.Post("/api/properties/:id/contact", optionalAuthMiddleware.ThenFunc(app.propertyHandler.CreateLead))

	// Favorites
	mux.Post("/api/properties/:id/favorite", authMiddleware.ThenFunc(app.propertyHandler.AddFavorite))
	mux.Del("/api/properties/:id/favorite", authMiddleware.ThenFunc(app.propertyHandler.RemoveFavorite))
	mux.Get("/api/favorites", authMiddleware.ThenFunc(app.propertyHandler.MyFavorites))

	// Companies
	mux.Post("/api/companies", brokerAuthMiddleware.ThenFunc(app.companyHandler.CreateCompany))
	mux.Get("/api/companies/:id", standardMiddleware.ThenFunc(app.companyHandler.GetCompany))
	mux.Get("/api/companies", standardMiddleware.ThenFunc(app.companyHandler.ListCompanies))
	mux.Put("/api/companies/:id", authMiddleware.ThenFunc(app.companyHandler.UpdateCompany))
	mux.Del("/api/companies/:id", adminAuthMiddleware.ThenFunc(app.companyHandler.DeleteCompany))

	// Recommendations
	mux.Post("/api/ai/recommendations", optionalAuthMiddleware.ThenFunc(app.recommendationHandler.Recommend))
	mux.Get("/api/ai/market-analysis/:id", standardMiddleware.ThenFunc(app.recommendationHandler.MarketAnalysis))

	// Admin
	mux.Get("/api/admin/dashboard", adminAuthMiddleware.ThenFunc(app.adminHandler.Dashboard))
	mux.Get("/api/admin/users", adminAuthMiddleware.ThenFunc(app.adminHandler.ListUsers))
	mux.Put("/api/admin/users/:id/verify", adminAuthMiddleware.ThenFunc(app.adminHandler.VerifyUser))
	mux.Del("/api/admin/users/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteUser))
	mux.Get("/api/admin/properties", adminAuthMiddleware.ThenFunc(app.adminHandler.ListProperties))
	mux.Put("/api/admin/properties/:id/status", adminAuthMiddleware.ThenFunc(app.adminHandler.SetPropertyStatus))
	mux.Del("/api/admin/properties/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteProperty))
	mux.Get("/api/admin/leads", adminAuthMiddleware.ThenFunc(app.adminHandler.ListLeads))

	return mux
}
