package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-sales-console/internal/handler"
	"go-sales-console/internal/repository"
	"go-sales-console/internal/service"
	"go-sales-console/internal/ws"
	"go-sales-console/views"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080/api/v1"
	}

	// 2. Setup Notification Hub
	hub := ws.NewHub()
	go hub.Run()

	// 3. Dependency Injection (Wiring Layers)
	apiClient := repository.NewClient(apiBaseURL)
	productRepo := repository.NewProductRepo(apiClient)
	categoryRepo := repository.NewCategoryRepo(apiClient)
	saleRepo := repository.NewSaleRepo(apiClient)
	statsRepo := repository.NewStatsRepo(apiClient)

	invoiceService := service.NewInvoiceService(saleRepo, productRepo)
	salesService := service.NewSalesService(saleRepo, hub)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	dashService := service.NewDashboardService(statsRepo)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, salesService, hub)
	salesHandler := handler.NewSalesHandler(salesService, catalogService, hub)
	catalogHandler := handler.NewCatalogHandler(catalogService, hub)
	dashHandler := handler.NewDashboardHandler(dashService, hub)

	// 4. Setup Fiber with embedded views
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	app := fiber.New(fiber.Config{
		AppName: "Sales Console v1.0",
		Views:   engine,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	app.Get("/", dashHandler.Page)

	app.Get("/inventory", catalogHandler.InventoryPage)
	app.Post("/products", catalogHandler.CreateProduct)
	app.Put("/products/:id", catalogHandler.UpdateProduct)
	app.Delete("/products/:id", catalogHandler.DeleteProduct)

	app.Get("/categories", catalogHandler.CategoriesPage)
	app.Post("/categories", catalogHandler.CreateCategory)
	app.Put("/categories/:id", catalogHandler.UpdateCategory)
	app.Delete("/categories/:id", catalogHandler.DeleteCategory)

	app.Get("/sales", salesHandler.ListPage)
	app.Post("/sales", salesHandler.Create)

	app.Get("/invoices", invoiceHandler.ListPage)
	app.Get("/invoices/:id", invoiceHandler.DetailPage)
	app.Get("/invoices/:id/print", invoiceHandler.PrintPage)
	app.Get("/invoices/:id/download", invoiceHandler.Download)

	// WebSocket Route (toast notifications)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 6. Graceful Shutdown
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
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
