package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/lionscafe/storefront/internal/api/handler"
	"github.com/lionscafe/storefront/internal/api/middleware"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Users         ports.UserService
	Menu          ports.MenuService
	Orders        ports.OrderService
	Reservations  ports.ReservationService
	Payments      ports.PaymentService
	Notifications ports.NotificationService
	Webhooks      ports.WebhookDecoder

	// StaffJWTSecret enables the staff routes when non-empty.
	StaffJWTSecret string
	// Readiness lists the optional backends probed by /health/ready.
	Readiness      map[string]handler.Pinger
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())

	// --- Handlers ---
	users := handler.NewUserHandler(deps.Users)
	menu := handler.NewMenuHandler(deps.Menu)
	orders := handler.NewOrderHandler(deps.Orders, deps.Logger)
	reservations := handler.NewReservationHandler(deps.Reservations)
	payments := handler.NewPaymentHandler(deps.Payments, deps.Webhooks, deps.Logger)
	notifications := handler.NewNotificationHandler(deps.Notifications)
	health := handler.NewHealthHandler(deps.Readiness)

	// staff is nil when no secret is configured; staff-only routes are
	// then left unmounted.
	var staff []echo.MiddlewareFunc
	if deps.StaffJWTSecret != "" {
		staff = []echo.MiddlewareFunc{
			middleware.Auth(deps.StaffJWTSecret),
			middleware.RBAC(domain.RoleStaff, domain.RoleAdmin),
		}
	}

	// --- Public API ---
	g := e.Group("/api")

	g.POST("/users", users.Register)
	g.GET("/users/:externalAuthId", users.GetByExternalAuthID)

	g.GET("/menu", menu.List)
	g.GET("/menu/:id", menu.Get)

	g.POST("/orders", orders.Create)
	g.GET("/orders/:id", orders.Get)
	g.GET("/orders/user/:userId", orders.ListByUser)
	g.PATCH("/orders/:id/status", orders.UpdateStatus, staff...)

	g.POST("/reservations", reservations.Create)
	g.GET("/reservations/user/:userId", reservations.ListByUser)

	g.POST("/notifications/subscribe", notifications.Subscribe)

	g.POST("/create-payment-intent", payments.CreateIntent)
	g.POST("/payment-webhook", payments.Webhook)
	g.POST("/stripe/webhook", payments.Webhook)

	// --- Staff routes ---
	if staff != nil {
		g.POST("/menu", menu.Create, staff...)
		g.PATCH("/menu/:id", menu.Update, staff...)
		g.PATCH("/reservations/:id/status", reservations.UpdateStatus, staff...)
	}

	// --- Health probes (no auth required) ---
	e.GET("/health", health.Liveness)        // liveness: is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness: are configured dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
