package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockit-api/internal/application/auth"
	"github.com/jhoicas/stockit-api/internal/application/labels"
	"github.com/jhoicas/stockit-api/internal/application/stock"
	"github.com/jhoicas/stockit-api/internal/application/usecase"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CompanyUC  *usecase.CompanyUseCase
	UserUC     *usecase.UserUseCase
	StockUC    *stock.StockUseCase
	MovementUC *stock.MovementUseCase
	LabelUC    *labels.LabelUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	// Catálogo de productos: lectura pública (la usa el escaneo de QR sin sesión)
	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Mutaciones del catálogo (protegido)
	protectedProducts := protected.Group("/product")
	protectedProducts.Post("/", productHandler.Create)
	protectedProducts.Put("/:id", productHandler.Update)
	protectedProducts.Delete("/:id", productHandler.Delete)

	// Posiciones de stock por empresa (protegido)
	positions := protected.Group("/product-company")
	stockHandler := NewStockHandler(deps.StockUC)
	positions.Get("/", stockHandler.List)
	positions.Post("/", stockHandler.Create)
	positions.Get("/:productId", stockHandler.Get)
	positions.Put("/:productId", stockHandler.Update)
	positions.Patch("/:productId/amount", stockHandler.ApplyAmountOperation)
	positions.Delete("/:productId", stockHandler.Delete)

	// Etiquetas QR en PDF (protegido)
	pdfGroup := protected.Group("/pdf")
	pdfHandler := NewPDFHandler(deps.LabelUC)
	pdfGroup.Get("/qr-codes", pdfHandler.QRCodes)
	pdfGroup.Get("/qr-codes/:productId", pdfHandler.QRCode)

	// Rutas de gerente
	manager := protected.Group("/", RequireRole(entity.RoleManager))

	movements := manager.Group("/stock-movement")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)

	company := manager.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Update)

	employees := manager.Group("/users/employees")
	userHandler := NewUserHandler(deps.UserUC)
	employees.Post("/", userHandler.AddEmployee)
	employees.Get("/", userHandler.ListEmployees)
	employees.Delete("/:id", userHandler.RemoveEmployee)
}
