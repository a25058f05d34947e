package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventoree/inventoree-api/internal/application/analytics"
	"github.com/inventoree/inventoree-api/internal/application/auth"
	"github.com/inventoree/inventoree-api/internal/application/chat"
	"github.com/inventoree/inventoree-api/internal/application/inventory"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	PreferencesUC *usecase.PreferencesUseCase
	SaleUC        *inventory.SaleUseCase
	AnalyticsUC   *analytics.AnalyticsUseCase
	ReportUC      *analytics.ReportUseCase
	ChatUC        *chat.ChatUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Sesión y perfil (protegido)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)
	protected.Get("/auth/profile", authHandler.Profile)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Get("/users", adminOnly, authHandler.ListUsers)

	// Products (protegido; escritura staff, borrado admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", staffOnly, productHandler.Create)
	products.Put("/:id", staffOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", staffOnly, categoryHandler.Create)
	categories.Put("/:id", staffOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", staffOnly, supplierHandler.Create)
	suppliers.Put("/:id", staffOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Sales (protegido; registrar requiere staff)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", staffOnly, saleHandler.Record)

	// Analytics (protegido, read-only)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.ReportUC)
	analyticsGroup.Get("/low-stock", analyticsHandler.LowStock)
	analyticsGroup.Get("/inventory-value", analyticsHandler.InventoryValue)
	analyticsGroup.Get("/sales", analyticsHandler.Sales)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)

	// Reports (protegido)
	protected.Get("/reports/sales/pdf", analyticsHandler.SalesReport)

	// Chat (protegido)
	chatGroup := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Get("/session", chatHandler.Session)
	chatGroup.Get("/messages", chatHandler.History)
	chatGroup.Post("/messages", chatHandler.Send)

	// Preferences (protegido)
	prefsGroup := protected.Group("/preferences")
	preferencesHandler := NewPreferencesHandler(deps.PreferencesUC)
	prefsGroup.Get("/", preferencesHandler.Get)
	prefsGroup.Put("/", preferencesHandler.Update)
	prefsGroup.Get("/theme", preferencesHandler.GetTheme)
	prefsGroup.Put("/theme", preferencesHandler.SetTheme)
}
