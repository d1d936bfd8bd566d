package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go-hubstock-ws/internal/handler"
	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/internal/service"
	"go-hubstock-ws/internal/status"
	"go-hubstock-ws/internal/ws"
	"go-hubstock-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Outlet{}, &model.Product{}, &model.StockEntry{},
		&model.TransferRecord{}, &model.TransferItem{},
		&model.SaleRecord{}, &model.SaleItem{},
		&model.StockRequest{}, &model.StockRequestItem{},
	)

	// 3. Repositories
	outletRepo := repository.NewOutletRepo(db)
	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)
	transferRepo := repository.NewTransferRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	requestRepo := repository.NewRequestRepo(db)

	// 4. Seed catalog, outlets, and hub stock on first boot
	seedCatalogAndStock(db, outletRepo, productRepo)

	// 5. Hydrate the authoritative ledger from the persisted entries
	led := ledger.New()
	if err := hydrateLedger(led, stockRepo); err != nil {
		log.Fatal("Failed to hydrate ledger: ", err)
	}

	// 6. WebSocket Hub + durable event journal
	wsHub := ws.NewHub()
	go wsHub.Run()

	eventStore := repository.NewEventStore(db, transferRepo, saleRepo, stockRepo)
	journal := service.NewJournal(eventStore, led, 1024)
	journal.Start()

	// 7. Dependency Injection (Wiring Layers)
	bands := status.Bands{WarnMultiplier: envInt("STATUS_WARN_MULTIPLIER", status.DefaultWarnMultiplier)}

	catalogService := service.NewCatalogService(productRepo, outletRepo, led)
	transferService := service.NewTransferService(outletRepo, productRepo, transferRepo, journal, wsHub)
	saleService := service.NewSaleService(outletRepo, productRepo, saleRepo, journal, wsHub)
	requestService := service.NewRequestService(outletRepo, requestRepo, wsHub)
	dashService := service.NewDashboardService(outletRepo, productRepo, requestRepo, saleRepo, led, bands, status.EstimateWaste)
	reportService := service.NewReportService(saleRepo, outletRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	transferHandler := handler.NewTransferHandler(transferService)
	saleHandler := handler.NewSaleHandler(saleService)
	requestHandler := handler.NewRequestHandler(requestService)
	dashHandler := handler.NewDashboardHandler(dashService)
	reportHandler := handler.NewReportHandler(reportService)

	// 8. Hub refill worker (inbound supplier deliveries stand-in)
	refillCtx, stopRefill := context.WithCancel(context.Background())
	refill := service.NewRefillWorker(
		productRepo, journal,
		envInt("REFILL_QTY", 50),
		time.Duration(envInt("REFILL_INTERVAL_MINUTES", 0))*time.Minute,
	)
	if refill.Enabled() {
		go refill.Run(refillCtx)
		log.Println("Hub refill worker started")
	}

	// 9. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Hub Stock Ledger v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 10. Routes
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	api := app.Group("/api/v1")

	api.Get("/dashboard", dashHandler.GetDashboard)

	api.Get("/products", catalogHandler.GetProducts)
	api.Post("/products", catalogHandler.CreateProduct)

	api.Get("/transfers", transferHandler.GetHistory)
	api.Post("/transfers", transferHandler.SubmitTransfer)

	api.Get("/sales", saleHandler.GetSales)
	api.Post("/sales", saleHandler.SubmitSale)

	api.Get("/requests", requestHandler.GetRequests)
	api.Post("/requests", requestHandler.SubmitRequest)
	api.Put("/requests/:id/status", requestHandler.UpdateStatus)

	api.Get("/reports", reportHandler.GetReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 11. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopRefill()
	if err := app.Shutdown(); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	// Drain pending stock events before exit
	journal.Close()
	log.Println("Server exited")
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
		log.Printf("Warning: invalid %s, using %d", key, fallback)
	}
	return fallback
}

func hydrateLedger(led *ledger.Ledger, stockRepo repository.StockRepository) error {
	rows, err := stockRepo.FindAll()
	if err != nil {
		return err
	}
	entries := make(map[ledger.Key]int, len(rows))
	for _, row := range rows {
		entries[ledger.Key{Location: row.LocationCode, SKU: row.SKU}] = row.Quantity
	}
	led.Load(entries)
	log.Printf("Ledger hydrated with %d stock entries", len(entries))
	return nil
}

// seedCatalogAndStock creates the default outlets, catalog, and initial
// hub stock if the database is empty. Outlets always start at zero:
// transfers are the only path that fills them.
func seedCatalogAndStock(db *gorm.DB, outletRepo repository.OutletRepository, productRepo repository.ProductRepository) {
	if count, err := outletRepo.Count(); err == nil && count == 0 {
		for _, outlet := range model.DefaultOutlets() {
			o := outlet
			o.CreatedBy = "system"
			o.UpdatedBy = "system"
			if err := outletRepo.Create(&o); err != nil {
				log.Printf("Warning: failed to seed outlet %s: %v", o.Code, err)
			}
		}
		log.Println("Seeded default outlets")
	}

	if count, err := productRepo.Count(); err == nil && count == 0 {
		for _, product := range model.DefaultProducts() {
			p := product
			p.CreatedBy = "system"
			p.UpdatedBy = "system"
			if err := productRepo.Create(&p); err != nil {
				log.Printf("Warning: failed to seed product %s: %v", p.SKU, err)
			}
		}

		for sku, qty := range model.DefaultHubStock() {
			entry := model.StockEntry{LocationCode: model.HubCode, SKU: sku, Quantity: qty}
			entry.CreatedBy = "system"
			entry.UpdatedBy = "system"
			if err := db.Create(&entry).Error; err != nil {
				log.Printf("Warning: failed to seed hub stock %s: %v", sku, err)
			}
		}
		log.Println("Seeded catalog and initial hub stock")
	}
}
