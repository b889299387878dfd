package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoicing-backend/internal/handlers"
	"invoicing-backend/internal/repository"
	invoicesvc "invoicing-backend/internal/services/invoice"
	"invoicing-backend/internal/services/numbering"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	vatRateRepo := repository.NewVatRateRepository(db)
	clientRepo := repository.NewClientRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	lookupRepo := repository.NewLookupRepository(db)

	alloc := numbering.NewAllocator(invoiceRepo)
	invoiceService := invoicesvc.NewService(db, invoiceRepo, vatRateRepo, settingsRepo, lookupRepo, alloc)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, invoiceRepo, settingsRepo, alloc)
	clientHandler := handler.NewClientHandler(clientRepo)
	vatRateHandler := handler.NewVatRateHandler(vatRateRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo, lookupRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/overdue", invoiceHandler.Overdue)
		invoices.GET("/next-number", invoiceHandler.NextNumber)
		invoices.GET("/check-number", invoiceHandler.CheckNumber)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.POST("/:id/status", invoiceHandler.ChangeStatus)
		invoices.GET("/:id/transitions", invoiceHandler.Transitions)
	}

	clients := api.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	vatRates := api.Group("/vat-rates")
	{
		vatRates.GET("", vatRateHandler.List)
		vatRates.POST("", vatRateHandler.Create)
		vatRates.PUT("/:id", vatRateHandler.Update)
		vatRates.POST("/:id/default", vatRateHandler.SetDefault)
		vatRates.DELETE("/:id", vatRateHandler.Delete)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
		settings.GET("/payment-terms", settingsHandler.PaymentTerms)
		settings.GET("/penalty-rates", settingsHandler.PenaltyRates)
	}
}
