// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"swapmarket/internal/delivery/api/middleware"
	"swapmarket/internal/delivery/api/router/handler"
	"swapmarket/internal/infra/metrics"
	"swapmarket/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	SessionHandler   *handler.SessionHandler
	ProductHandler   *handler.ProductHandler
	ImageHandler     *handler.ImageHandler
	ProfileHandler   *handler.ProfileHandler
	CartHandler      *handler.CartHandler
	OrderHandler     *handler.OrderHandler
	SwapHandler      *handler.SwapHandler
	RoleHandler      *handler.RoleHandler
	DashboardHandler *handler.DashboardHandler
	DeviceHandler    *handler.DeviceHandler
	RealtimeHandler  *handler.RealtimeHandler
	AuthMiddleware   *middleware.AuthMiddleware
	InFlight         *middleware.InFlight
	Metrics          *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	auth      *handler.AuthHandler
	session   *handler.SessionHandler
	product   *handler.ProductHandler
	image     *handler.ImageHandler
	profile   *handler.ProfileHandler
	cart      *handler.CartHandler
	order     *handler.OrderHandler
	swap      *handler.SwapHandler
	role      *handler.RoleHandler
	dashboard *handler.DashboardHandler
	device    *handler.DeviceHandler
	realtime  *handler.RealtimeHandler

	authMiddleware *middleware.AuthMiddleware
	inFlight       *middleware.InFlight
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		session:        params.SessionHandler,
		product:        params.ProductHandler,
		image:          params.ImageHandler,
		profile:        params.ProfileHandler,
		cart:           params.CartHandler,
		order:          params.OrderHandler,
		swap:           params.SwapHandler,
		role:           params.RoleHandler,
		dashboard:      params.DashboardHandler,
		device:         params.DeviceHandler,
		realtime:       params.RealtimeHandler,
		authMiddleware: params.AuthMiddleware,
		inFlight:       params.InFlight,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.GET(storage.DefaultImageRoute+"*", r.image.ServeImage)

	apiV1 := e.Group("/api/v1")

	// Public routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.auth.SignUp)
		authGroup.POST("/signin", r.auth.SignIn)
		authGroup.POST("/signout", r.auth.SignOut)
		authGroup.POST("/refresh", r.auth.Refresh)
		authGroup.POST("/google", r.auth.GoogleSignIn)
	}

	apiV1.GET("/products", r.product.ListProducts)
	apiV1.GET("/products/:id", r.product.GetProduct)
	apiV1.GET("/products/:id/qrcode", r.product.ShareQRCode)

	// The socket resolves its own token so it can accept ?access_token=
	apiV1.GET("/ws/roles", r.realtime.WatchRoles)

	// Authenticated routes
	authed := apiV1.Group("", r.authMiddleware.Authenticate)
	guard := r.inFlight.Guard

	authed.GET("/session", r.session.GetSession)

	productsGroup := authed.Group("/products")
	{
		productsGroup.GET("/mine", r.product.MyProducts)
		productsGroup.POST("", r.product.CreateProduct, guard)
		productsGroup.POST("/images", r.product.UploadImage)
		productsGroup.PATCH("/:id", r.product.UpdateProduct)
		productsGroup.DELETE("/:id", r.product.DeleteProduct)
	}

	authed.GET("/profile", r.profile.GetProfile)
	authed.PATCH("/profile", r.profile.UpdateProfile)

	cartGroup := authed.Group("/cart")
	{
		cartGroup.GET("", r.cart.ViewCart)
		cartGroup.DELETE("", r.cart.ClearCart)
		cartGroup.POST("/items", r.cart.AddItem, guard)
		cartGroup.PATCH("/items/:id", r.cart.SetQuantity)
		cartGroup.DELETE("/items/:id", r.cart.RemoveItem)
	}

	ordersGroup := authed.Group("/orders")
	{
		ordersGroup.GET("", r.order.ListOrders)
		ordersGroup.POST("", r.order.CreateOrders, guard)
		ordersGroup.POST("/checkout", r.order.Checkout, guard)
	}

	swapsGroup := authed.Group("/swap-requests")
	{
		swapsGroup.GET("", r.swap.ListSwapRequests)
		swapsGroup.POST("", r.swap.CreateSwapRequest, guard)
		swapsGroup.PATCH("/:id/status", r.swap.UpdateSwapStatus)
	}

	authed.GET("/roles/me", r.role.MyRole)

	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.device.RegisterDevice)
		devicesGroup.GET("", r.device.GetUserDevices)
		devicesGroup.DELETE("/:id", r.device.DeactivateDevice)
	}

	// Admin routes re-read the role on every request
	adminGroup := authed.Group("/admin", r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/roles", r.role.ListRoles)
		adminGroup.PUT("/roles/:user_id", r.role.UpdateRole)
		adminGroup.GET("/dashboard", r.dashboard.Dashboard)
		adminGroup.GET("/stats", r.dashboard.Stats)
		adminGroup.GET("/analytics", r.dashboard.Analytics)
		adminGroup.GET("/activity", r.dashboard.RecentActivity)
		adminGroup.GET("/health", r.dashboard.Health)
	}
}
