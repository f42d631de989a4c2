package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-api/internal/application/stock"
	"github.com/tu-usuario/stock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	UpdateStock *stock.UpdateStockUseCase
	DB          Pinger
}

// Router registra las rutas de la API. Fiber sin StrictRouting: /products/ y
// /products resuelven al mismo handler.
func Router(app *fiber.App, deps RouterDeps) {
	productHandler := NewProductHandler(deps.ProductUC, deps.SupplierUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	stockHandler := NewStockHandler(deps.UpdateStock)
	healthHandler := NewHealthHandler(deps.DB)

	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/suppliers", productHandler.ListSuppliers)

	suppliers := app.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Patch("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	app.Post("/update-stock", stockHandler.UpdateStock)
	app.Get("/health", healthHandler.Health)
}
