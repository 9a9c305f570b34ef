package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/analytics"
	"github.com/jhoicas/tekstil-api/internal/application/auth"
	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/internal/application/maintenance"
	"github.com/jhoicas/tekstil-api/internal/application/personnel"
	"github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/internal/application/sales"
	"github.com/jhoicas/tekstil-api/pkg/jwt"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Fulfillment *procurement.FulfillmentUseCase
	Orders      *procurement.OrderUseCase
	Stock       *inventory.StockUseCase
	Reports     *analytics.ReportUseCase
	Personnel   *personnel.UseCase
	Maintenance *maintenance.UseCase
	Sales       *sales.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
// Las lecturas de los paneles son públicas; las escrituras exigen token y rol.
// El middleware se pone por ruta: un Group con handlers se aplicaría a todo el prefijo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(jwt.RoleAdmin)
	factory := RequireRole(jwt.RoleAdmin, jwt.RoleFactory)
	customer := RequireRole(jwt.RoleAdmin, jwt.RoleCustomer)
	staff := RequireRole(jwt.RoleAdmin, jwt.RoleFactory, jwt.RolePersonnel)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/login/admin", authHandler.LoginAdmin)
	api.Post("/login/factory", authHandler.LoginFactory)
	api.Post("/login/personnel", authHandler.LoginPersonnel)
	api.Post("/login/customer", authHandler.LoginCustomer)
	api.Post("/customers/login", authHandler.LoginCustomer)

	// Órdenes de materia prima
	proc := NewProcurementHandler(deps.Fulfillment, deps.Orders, deps.Log)
	api.Get("/raw-material-orders/export.xlsx", proc.ExportXLSX)
	api.Get("/raw-material-orders", proc.List)
	api.Get("/factory/raw-material-orders", proc.List)
	api.Get("/raw-material-orders/:id", proc.Get)
	api.Post("/raw-material-orders", authn, factory, proc.Create)
	// Cambio de estado y entrega sin token: los usan el panel de fábrica y clientes heredados.
	api.Put("/raw-material-orders/:id/status", proc.UpdateStatus)
	api.Put("/raw-material-orders/:id/deliver", proc.Deliver)
	api.Put("/factory/raw-material-orders/:id/status", proc.UpdateStatus)
	api.Put("/fabrika/hammadde-siparisleri/:id/teslim", proc.Deliver)
	api.Put("/raw-material-orders/:id", authn, adminOnly, proc.Update)
	api.Delete("/raw-material-orders/:id", authn, adminOnly, proc.Delete)

	// Materias primas y stock
	inv := NewInventoryHandler(deps.Stock, deps.Log)
	api.Get("/raw-materials", inv.ListMaterials)
	api.Get("/raw-materials/:id/movements", inv.ListMovements)
	api.Post("/raw-materials/:id/restock", authn, factory, inv.Restock)
	api.Get("/raw-material-stock", inv.ListStock)
	api.Get("/raw-material-stock/critical-count", inv.CriticalCount)
	api.Get("/raw-material-stock/report.pdf", inv.StockReportPDF)

	// Reportes
	rep := NewAnalyticsHandler(deps.Reports, deps.Log)
	api.Get("/admin/dashboard", authn, adminOnly, rep.Dashboard)
	api.Get("/reports/kpis", rep.KPIs)
	api.Get("/reports/monthly-sales", rep.MonthlySales)
	api.Get("/reports/order-status-distribution", rep.OrderStatusDistribution)
	api.Get("/reports/raw-material-order-analysis", rep.RawMaterialOrderAnalysis)
	api.Get("/reports/monthly-raw-material-orders", rep.MonthlyRawMaterialOrders)
	api.Get("/analytics/production-by-model", rep.ProductionByModel)
	api.Get("/analytics/production-months", rep.ProductionMonths)
	api.Get("/bom/products/:id/recipe", rep.ProductRecipe)
	api.Get("/bom/materials/:id/products", rep.MaterialUsage)
	api.Get("/bom/consumption", rep.MaterialConsumption)
	api.Get("/bom/critical", rep.CriticalMaterials)

	// Personal y premios
	per := NewPersonnelHandler(deps.Personnel, deps.Log)
	api.Get("/admin/personnel", authn, adminOnly, per.ListPersonnel)
	api.Get("/performance/employee-averages", per.EmployeeAverages)
	api.Get("/rewards/rules", per.ListActiveRules)
	api.Get("/rewards/rules/all", per.ListAllRules)
	api.Post("/rewards/rules", authn, adminOnly, per.CreateRule)
	api.Put("/rewards/rules/:id", authn, adminOnly, per.UpdateRule)
	api.Delete("/rewards/rules/:id", authn, adminOnly, per.DeleteRule)
	api.Get("/rewards/employee-rewards", per.EmployeeRewards)

	// Máquinas
	mnt := NewMaintenanceHandler(deps.Maintenance, deps.Log)
	api.Get("/machines", mnt.ListMachines)
	api.Get("/machine-fault-reports", authn, staff, mnt.ListReports)
	api.Post("/machine-fault-reports", authn, staff, mnt.CreateReport)

	// Clientes y pedidos
	cus := NewCustomerHandler(deps.Sales, deps.Log)
	api.Post("/customers/register", cus.Register)
	api.Get("/customers", authn, adminOnly, cus.List)
	api.Get("/products", cus.ListProducts)
	api.Get("/products/:modelId/price", cus.ProductPrice)
	api.Post("/orders", authn, customer, cus.CreateOrder)
	api.Get("/customer/orders", authn, customer, cus.MyOrders)
	api.Get("/customer/orders/summary", authn, customer, cus.MySummary)
	api.Get("/admin/orders", authn, adminOnly, cus.ListOrders)
	api.Put("/admin/orders/:id", authn, adminOnly, cus.UpdateOrder)
	api.Delete("/admin/orders/:id", authn, adminOnly, cus.DeleteOrder)
	api.Get("/siparisler", authn, adminOnly, cus.ListOrders)
	api.Put("/siparisler/:id", authn, adminOnly, cus.UpdateOrder)
	api.Delete("/siparisler/:id", authn, adminOnly, cus.DeleteOrder)
}
