package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/documents"
	appstock "github.com/jhoicas/stockmaster-api/internal/application/stock"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	DashboardUC *usecase.DashboardUseCase
	DocumentUC  *documents.DocumentUseCase
	StockUC     *appstock.StockUseCase
	AuthUC      *auth.AuthUseCase
	Tokens      *jwt.Manager
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
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Delete)

	// Warehouses + locations
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Post("/:id/archive", RequireRole(entity.RoleAdmin, entity.RoleManager), warehouseHandler.Archive)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)
	warehouses.Post("/:id/locations", warehouseHandler.AddLocation)
	warehouses.Get("/:id/locations", warehouseHandler.ListLocations)
	warehouses.Put("/:id/locations/:locationId", warehouseHandler.RenameLocation)

	// Documentos de inventario: mismo handler por tipo, la ruta fija el tipo.
	documentRoutes := []struct {
		path    string
		docType entity.DocumentType
	}{
		{"/receipts", entity.DocReceipt},
		{"/deliveries", entity.DocDelivery},
		{"/transfers", entity.DocTransfer},
		{"/adjustments", entity.DocAdjustment},
	}
	for _, route := range documentRoutes {
		group := protected.Group(route.path)
		handler := NewDocumentHandler(deps.DocumentUC, route.docType)
		group.Post("/", handler.Create)
		group.Get("/", handler.List)
		group.Get("/:id", handler.GetByID)
		group.Put("/:id", handler.Update)
		group.Delete("/:id", handler.Delete)
		group.Post("/:id/transition", handler.Transition)
		if route.docType == entity.DocDelivery {
			group.Get("/:id/pdf", handler.DeliveryNotePDF)
		}
	}

	// Saldos y libro de movimientos
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.Balance)
	protected.Get("/stock/replay", RequireRole(entity.RoleAdmin, entity.RoleManager), stockHandler.Replay)
	protected.Get("/movements", stockHandler.Movements)
	products.Get("/:id/stock", stockHandler.ByProduct)
	warehouses.Get("/:id/stock", stockHandler.ByWarehouse)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/kpis", dashboardHandler.KPIs)
}
