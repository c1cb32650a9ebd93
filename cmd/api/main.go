package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/elbuensabor/backoffice-api/internal/application/auth"
	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
	"github.com/elbuensabor/backoffice-api/internal/catalog"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/internal/gateway"
	infrapdf "github.com/elbuensabor/backoffice-api/internal/infrastructure/pdf"
	httpRouter "github.com/elbuensabor/backoffice-api/internal/interfaces/http"
	"github.com/elbuensabor/backoffice-api/internal/session"
	"github.com/elbuensabor/backoffice-api/pkg/config"
	"github.com/elbuensabor/backoffice-api/pkg/jwt"
	"github.com/elbuensabor/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	provider := session.NewProvider(cfg.Auth)
	if err := provider.Start(); err != nil {
		log.Fatal().Err(err).Msg("inicialización del proveedor de identidad")
	}

	client := gateway.New(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)
	// El token de servicio se emite recién en la primera petición saliente,
	// nunca en el arranque, y se renueva solo cuando está por vencer.
	client.SetTokenSource(serviceTokenSource(cfg.Auth))

	productsAPI := gateway.NewProductsClient(client)
	suppliesAPI := gateway.NewSuppliesClient(client)
	categoriesAPI := gateway.NewCategoriesClient(client)
	customersAPI := gateway.NewCustomersClient(client)
	employeesAPI := gateway.NewEmployeesClient(client)
	ordersAPI := gateway.NewOrdersClient(client)
	deliveriesAPI := gateway.NewDeliveriesClient(client)
	credentialsAPI := gateway.NewCredentialsClient(client)

	store := catalog.NewStore(productsAPI, log.Named("catalogo"))

	productUC := usecase.NewProductUseCase(store, suppliesAPI, categoriesAPI, log.Named("productos"))
	categoryUC := usecase.NewCategoryUseCase(categoriesAPI)
	customerUC := usecase.NewCustomerUseCase(customersAPI)
	employeeUC := usecase.NewEmployeeUseCase(employeesAPI)
	orderUC := usecase.NewOrderUseCase(ordersAPI)
	deliveryUC := usecase.NewDeliveryUseCase(deliveriesAPI)
	dashboardUC := usecase.NewDashboardUseCase(productsAPI, customersAPI, ordersAPI, suppliesAPI)
	reportUC := usecase.NewReportUseCase(productsAPI, infrapdf.NewMarotoCatalogGenerator())
	authUC := auth.NewAuthUseCase(provider, credentialsAPI)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "El Buen Sabor Back Office",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	err = httpRouter.Router(app, httpRouter.RouterDeps{
		Provider:  provider,
		Auth:      httpRouter.NewAuthHandler(authUC),
		Products:  httpRouter.NewProductHandler(productUC),
		Category:  httpRouter.NewCategoryHandler(categoryUC),
		Customers: httpRouter.NewCustomerHandler(customerUC),
		Employees: httpRouter.NewEmployeeHandler(employeeUC),
		Orders:    httpRouter.NewOrderHandler(orderUC),
		Delivery:  httpRouter.NewDeliveryHandler(deliveryUC),
		Dashboard: httpRouter.NewDashboardHandler(dashboardUC),
		Reports:   httpRouter.NewReportHandler(reportUC),
		Settings:  httpRouter.NewSettingsHandler(cfg),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de rutas inválida")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	store.Close()
	log.Info().Msg("aplicación detenida")
}

// serviceTokenSource emite el token HS256 con el que el gateway se presenta
// ante el API de negocio. Se cachea y se renueva un minuto antes de vencer.
func serviceTokenSource(cfg config.AuthConfig) gateway.TokenSource {
	var (
		mu      sync.Mutex
		token   string
		expires time.Time
	)
	identity := jwt.Identity{
		Sub:  "backoffice-service",
		Name: "Back Office",
		Role: entity.RoleAdmin,
	}
	return func(ctx context.Context) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if token != "" && time.Now().Before(expires.Add(-time.Minute)) {
			return token, nil
		}
		t, err := jwt.Generate(cfg.Secret, identity, cfg.Issuer, cfg.Audience, cfg.Expiration)
		if err != nil {
			return "", err
		}
		token = t
		expires = time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
		return token, nil
	}
}
