package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/guard"
	"github.com/elbuensabor/backoffice-api/internal/session"
)

// RouterDeps reúne todo lo que el router necesita para registrar rutas.
type RouterDeps struct {
	Provider  *session.Provider
	Auth      *AuthHandler
	Products  *ProductHandler
	Category  *CategoryHandler
	Customers *CustomerHandler
	Employees *EmployeeHandler
	Orders    *OrderHandler
	Delivery  *DeliveryHandler
	Dashboard *DashboardHandler
	Reports   *ReportHandler
	Settings  *SettingsHandler
}

// Router registra las rutas del back office. La tabla del guard se valida acá,
// en el arranque: una tabla malformada impide levantar el proceso en lugar de
// descubrirse en la primera navegación.
func Router(app *fiber.App, deps RouterDeps) error {
	if err := guard.ValidateTable(guard.Table); err != nil {
		return err
	}

	app.Use(SessionMiddleware(deps.Provider))

	// La raíz redirige a la página de inicio.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusFound)
	})

	// Rutas públicas y de solo-anónimos.
	app.Get("/login", PublicOnly(), deps.Auth.Login)
	app.Get("/callback", deps.Auth.Callback)
	app.Post("/logout", deps.Auth.Logout)
	app.Post("/change-password", deps.Auth.ChangePassword)
	app.Get("/me", deps.Auth.Me)

	// Cada grupo protegido toma sus roles de la tabla del guard, no de
	// constantes sueltas: la tabla es la única fuente de verdad del acceso.
	dashboard := app.Group("/dashboard", protect(deps.Provider, "/dashboard"))
	dashboard.Get("/", deps.Dashboard.Summary)

	customers := app.Group("/customers", protect(deps.Provider, "/customers"))
	customers.Get("/", deps.Customers.List)
	customers.Post("/", deps.Customers.Create)
	customers.Put("/:id", deps.Customers.Update)
	customers.Delete("/:id", deps.Customers.Delete)

	employees := app.Group("/employees", protect(deps.Provider, "/employees"))
	employees.Get("/", deps.Employees.List)
	employees.Post("/", deps.Employees.Create)
	employees.Put("/:id", deps.Employees.Update)
	employees.Delete("/:id", deps.Employees.Delete)

	orders := app.Group("/orders", protect(deps.Provider, "/orders"))
	orders.Get("/", deps.Orders.List)
	orders.Put("/:id/status", deps.Orders.ChangeStatus)

	products := app.Group("/products", protect(deps.Provider, "/products"))
	// Las categorías cuelgan de /products pero tienen su propia fila en la
	// tabla; hoy comparten roles con /products y el guard lo hace explícito.
	products.Get("/categories", protect(deps.Provider, "/products/categories"), deps.Category.List)
	products.Post("/categories", protect(deps.Provider, "/products/categories"), deps.Category.Create)
	products.Get("/", deps.Products.Page)
	products.Post("/load", deps.Products.Reload)
	products.Post("/editor", deps.Products.OpenEditor)
	products.Get("/editor/:sid", deps.Products.Editor)
	products.Put("/editor/:sid", deps.Products.SetFields)
	products.Delete("/editor/:sid", deps.Products.DiscardEditor)
	products.Post("/editor/:sid/lines", deps.Products.AddLine)
	products.Put("/editor/:sid/lines/:index", deps.Products.UpdateLine)
	products.Delete("/editor/:sid/lines/:index", deps.Products.RemoveLine)
	products.Post("/editor/:sid/submit", deps.Products.Submit)
	products.Get("/delete", deps.Products.DeleteState)
	products.Post("/delete/confirm", deps.Products.ConfirmDelete)
	products.Post("/delete/cancel", deps.Products.CancelDelete)
	products.Post("/:id/delete-request", deps.Products.RequestDelete)

	delivery := app.Group("/delivery", protect(deps.Provider, "/delivery"))
	delivery.Get("/", deps.Delivery.List)
	delivery.Post("/assign", deps.Delivery.Assign)
	delivery.Put("/:id/status", deps.Delivery.ChangeStatus)

	reports := app.Group("/reports", protect(deps.Provider, "/reports"))
	reports.Get("/catalog", deps.Reports.CatalogPDF)

	settings := app.Group("/settings", protect(deps.Provider, "/settings"))
	settings.Get("/", deps.Settings.Show)

	// Página not-found explícita para cualquier path fuera de la tabla.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "la página pedida no existe",
		})
	})

	return nil
}

// protect arma el middleware de roles a partir de la fila de la tabla. Un path
// fuera de la tabla es un bug de registro y revienta en el arranque.
func protect(provider *session.Provider, path string) fiber.Handler {
	for _, r := range guard.Table {
		if r.Path == path && r.Access == guard.Protected {
			return RequireRoles(provider, r.Roles...)
		}
	}
	panic(fmt.Sprintf("router: el path %q no está en la tabla del guard", path))
}
