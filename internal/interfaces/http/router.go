package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/importer"
	"github.com/jhoicas/catalogo-api/internal/application/report"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	TagUC      *usecase.TagUseCase
	ReportUC   *report.ReportUseCase
	ImportUC   *importer.ImportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas exigen solo token válido;
// las escrituras exigen rol admin o editor y las operaciones de borrado y
// restauración exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleEditor)
	canDelete := RequireRole(entity.RoleAdmin)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/deleted", categoryHandler.ListDeleted)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Put("/:id/name", canWrite, categoryHandler.Rename)
	categories.Post("/:id/products/:productId", canWrite, categoryHandler.AddProduct)
	categories.Delete("/:id/products/:productId", canWrite, categoryHandler.RemoveProduct)
	categories.Delete("/:id", canDelete, categoryHandler.Delete)
	categories.Post("/:id/restore", canDelete, categoryHandler.Restore)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/deleted", productHandler.ListDeleted)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id/name", canWrite, productHandler.Rename)
	products.Put("/:id/description", canWrite, productHandler.Redescribe)
	products.Put("/:id/price", canWrite, productHandler.Reprice)
	products.Put("/:id/category", canWrite, productHandler.ChangeCategory)
	products.Post("/:id/activate", canWrite, productHandler.Activate)
	products.Post("/:id/deactivate", canWrite, productHandler.Deactivate)
	products.Post("/:id/tags/:tagId", canWrite, productHandler.AddTag)
	products.Delete("/:id/tags/:tagId", canWrite, productHandler.RemoveTag)
	products.Delete("/:id/tags", canWrite, productHandler.ClearTags)
	products.Delete("/:id", canDelete, productHandler.Delete)
	products.Post("/:id/restore", canDelete, productHandler.Restore)

	// Tags (protegido)
	tags := protected.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Get("/", tagHandler.List)
	tags.Get("/deleted", tagHandler.ListDeleted)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Post("/", canWrite, tagHandler.Create)
	tags.Put("/:id/name", canWrite, tagHandler.Rename)
	tags.Put("/:id/product/:productId", canWrite, tagHandler.AssignToProduct)
	tags.Delete("/:id", canDelete, tagHandler.Delete)
	tags.Post("/:id/restore", canDelete, tagHandler.Restore)

	// Reports (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/products", reportHandler.JSON)
	reports.Get("/products.csv", reportHandler.CSV)

	// Imports (protegido, escribe el catálogo)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC)
	imports.Post("/products", canWrite, importHandler.Run)
}
