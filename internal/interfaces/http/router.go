package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/auth"
	"github.com/tu-usuario/tienda-pro/internal/application/sale"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *sale.SaleUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	staff := RequireRole(entity.RoleAdmin, entity.RoleFuncionario)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido; alta y listados sólo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC, deps.Log)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/birthdays", staff, userHandler.Birthdays)
	users.Put("/:id/image", userHandler.UpdateImage)

	// Products (protegido; mutaciones sólo staff)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/", staff, productHandler.Upsert)
	products.Delete("/:id", staff, productHandler.Delete)

	// Sales (protegido; reporte sólo staff)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)
	sales.Post("/", saleHandler.Register)
	sales.Get("/report", staff, saleHandler.Report)
}
