package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/config"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/handler"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/infra"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/middleware"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/service"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	materialRepo := repository.NewMaterialRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	materialSvc := service.NewMaterialService(materialRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, materialRepo, projectRepo)
	orderSvc := service.NewOrderService(materialRepo)
	bomSvc := service.NewBOMService(projectRepo, bookingRepo, materialRepo, dispatcher)
	projectSvc := service.NewProjectService(projectRepo, customerRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	offerSvc := service.NewOfferService(offerRepo, customerRepo)
	categorySvc := service.NewCategoryService(categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	materialsH := handler.NewMaterialsHandler(materialSvc)
	bookingsH := handler.NewBookingsHandler(bookingSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	bomH := handler.NewBOMHandler(bomSvc)
	projectsH := handler.NewProjectsHandler(projectSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	offersH := handler.NewOffersHandler(offerSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	stockH := handler.NewStockLookupHandler(materialRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Stock check — no auth required (field app barcode scanner)
	r.GET("/v1/bestand/:code", stockH.GetByCode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: lager, vertrieb, admin — declared per-endpoint
		allRoles := middleware.RequireRole(middleware.RoleWarehouse, middleware.RoleSales, middleware.RoleAdmin)
		warehouse := middleware.RequireRole(middleware.RoleWarehouse, middleware.RoleAdmin)
		sales := middleware.RequireRole(middleware.RoleSales, middleware.RoleAdmin)
		admin := middleware.RequireRole(middleware.RoleAdmin)

		// Materials — everyone reads, warehouse mutates stock and orders
		v1.GET("/materialien", allRoles, materialsH.List)
		v1.GET("/materialien/:id", allRoles, materialsH.GetByID)
		v1.PATCH("/materialien/:id/bestand", warehouse, materialsH.AdjustStock)
		v1.POST("/materialien/:id/bestellung/anfordern", warehouse, materialsH.RequestOrder)
		v1.POST("/materialien/:id/bestellung/aufgeben", warehouse, materialsH.PlaceOrder)
		v1.POST("/materialien/:id/bestellung/eingang", warehouse, materialsH.ReceiveOrder)
		v1.DELETE("/materialien/:id/bestellung", warehouse, materialsH.CancelOrder)
		mats := v1.Group("/materialien", admin)
		{
			mats.POST("", materialsH.Create)
			mats.PUT("/:id", materialsH.Update)
			mats.DELETE("/:id", materialsH.Deactivate)
		}

		// Booking ledger
		v1.POST("/buchungen", warehouse, bookingsH.Create)
		v1.GET("/buchungen", allRoles, bookingsH.List)

		// Ordering screen
		v1.GET("/bestellungen", warehouse, ordersH.ListRows)
		v1.GET("/bestellungen/statistik", warehouse, ordersH.Stats)

		// Projects and their consolidated material lists
		v1.GET("/projekte", allRoles, projectsH.List)
		v1.GET("/projekte/:id", allRoles, projectsH.GetByID)
		v1.GET("/projekte/:id/stueckliste", allRoles, bomH.Compute)
		v1.POST("/projekte/:id/stueckliste/export", allRoles, bomH.Export)
		projs := v1.Group("/projekte", sales)
		{
			projs.POST("", projectsH.Create)
			projs.PUT("/:id", projectsH.Update)
			projs.DELETE("/:id", projectsH.Delete)
		}

		// Stateless BOM edit helpers for the list editor
		v1.POST("/stueckliste/menge", allRoles, bomH.UpdateQuantity)
		v1.POST("/stueckliste/aufteilen", allRoles, bomH.Split)

		// CRM
		v1.GET("/kunden", sales, customersH.List)
		v1.GET("/kunden/:id", sales, customersH.GetByID)
		kunden := v1.Group("/kunden", sales)
		{
			kunden.POST("", customersH.Create)
			kunden.PUT("/:id", customersH.Update)
			kunden.DELETE("/:id", customersH.Deactivate)
		}

		v1.GET("/angebote", sales, offersH.List)
		v1.GET("/angebote/:id", sales, offersH.GetByID)
		v1.POST("/angebote", sales, offersH.Create)
		v1.PATCH("/angebote/:id/status", sales, offersH.UpdateStatus)

		// Categories — admin writes, everyone reads
		v1.GET("/kategorien", allRoles, categoriesH.List)
		kats := v1.Group("/kategorien", admin)
		{
			kats.POST("", categoriesH.Create)
			kats.PUT("/:id", categoriesH.Update)
			kats.DELETE("/:id", categoriesH.Deactivate)
		}
	}

	return r
}
