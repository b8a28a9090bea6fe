package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocketUC       *stock.DocketUseCase
	TransferUC     *stock.TransferUseCase
	AvailabilityUC *stock.AvailabilityUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	ReasonUC       *usecase.ReasonUseCase
	ProductUC      *usecase.ProductUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dockets (protegido)
	dockets := protected.Group("/dockets")
	docketHandler := NewDocketHandler(deps.DocketUC)
	dockets.Post("/", docketHandler.Create)
	dockets.Get("/", docketHandler.List)
	dockets.Get("/:id", docketHandler.GetByID)
	dockets.Patch("/:id/status", docketHandler.AdvanceStatus)
	dockets.Put("/:id/items", docketHandler.UpdateItems)
	dockets.Delete("/:id", docketHandler.Delete)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Patch("/:id/status", transferHandler.AdvanceStatus)
	transfers.Delete("/:id", transferHandler.Delete)

	// Availability (protegido, solo lectura)
	availability := protected.Group("/availability")
	availabilityHandler := NewAvailabilityHandler(deps.AvailabilityUC)
	availability.Get("/products/:id", availabilityHandler.ByProduct)
	availability.Get("/variants/:id", availabilityHandler.ByVariant)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Reasons (protegido)
	reasons := protected.Group("/reasons")
	reasonHandler := NewReasonHandler(deps.ReasonUC)
	reasons.Post("/", reasonHandler.Create)
	reasons.Get("/", reasonHandler.List)
	reasons.Get("/:id", reasonHandler.GetByID)

	// Products y variantes (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/variants", productHandler.CreateVariant)
	products.Get("/:id/variants", productHandler.ListVariants)
}
