package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carlossbezerra/SuperDelivery/controllers"
	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/middlewares"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/ws"
)

// Deps holds everything the route table needs. main builds it once.
type Deps struct {
	JWTSecret string

	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Orders   *services.OrderService
	Products *services.ProductService
	Delivery *services.DeliveryService
	Chat     *services.ChatService

	ChatHub   *ws.ChatHub
	NotifyHub *ws.NotifyHub
	Positions *ws.PositionFeed
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Controllers
	authCtrl := controllers.NewAuthController(d.Auth)
	restCtrl := controllers.NewRestaurantController(d.Catalog)
	cartCtrl := controllers.NewCartController(d.Cart)
	orderCtrl := controllers.NewOrderController(d.Orders)
	merchantCtrl := controllers.NewMerchantController(d.Orders)
	productCtrl := controllers.NewProductController(d.Products)
	deliveryCtrl := controllers.NewDeliveryController(d.Delivery)
	chatCtrl := controllers.NewChatController(d.Chat)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.GET("/profiles", authCtrl.Profiles)
		a.POST("/login", authCtrl.Login)
	}
	a.POST("/logout", middlewares.AuthMiddleware(d.JWTSecret), authCtrl.Logout)

	// Public catalog
	r.GET("/restaurants", restCtrl.List) // ?category=
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Customer (any authenticated role can read its own orders;
	// cart and checkout are customer actions)
	u := r.Group("/", middlewares.AuthMiddleware(d.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/tracking", orderCtrl.Track)

		u.GET("/orders/:id/messages", chatCtrl.History)
		u.POST("/orders/:id/messages", chatCtrl.Send)
	}

	// Merchant
	m := r.Group("/merchant", middlewares.AuthMiddleware(d.JWTSecret, entity.RoleMerchant))
	{
		m.GET("/orders", merchantCtrl.ListActive)
		m.GET("/orders/history", merchantCtrl.ListHistory)
		m.PATCH("/orders/:id/accept", merchantCtrl.Accept)
		m.PATCH("/orders/:id/reject", merchantCtrl.Reject)
		m.PATCH("/orders/:id/ready", merchantCtrl.MarkReady)
		m.PATCH("/orders/:id/dispatched", merchantCtrl.MarkDispatched)
		m.GET("/stats", merchantCtrl.Stats)

		m.GET("/products", productCtrl.List)
		m.POST("/products", productCtrl.Create)
		m.PATCH("/products/:id", productCtrl.Update)
		m.PATCH("/products/:id/availability", productCtrl.ToggleAvailability)
		m.DELETE("/products/:id", productCtrl.Delete)
	}

	// Courier
	co := r.Group("/courier", middlewares.AuthMiddleware(d.JWTSecret, entity.RoleCourier))
	{
		co.GET("/deliveries", deliveryCtrl.Pool)
		co.GET("/deliveries/active", deliveryCtrl.Active)
		co.POST("/deliveries/:id/accept", deliveryCtrl.Accept)
		co.PATCH("/deliveries/:id/arrived", deliveryCtrl.Arrived)
		co.PATCH("/deliveries/:id/depart", deliveryCtrl.Depart)
		co.PATCH("/deliveries/:id/complete", deliveryCtrl.Complete)
		co.GET("/stats", deliveryCtrl.Stats)
		co.PUT("/availability", deliveryCtrl.SetAvailability)
	}

	// WebSockets (token comes through ?token=)
	wsg := r.Group("/ws", middlewares.AuthMiddleware(d.JWTSecret))
	{
		wsg.GET("/orders/:id/chat", d.ChatHub.HandleWebSocket)
		wsg.GET("/notifications", d.NotifyHub.HandleWebSocket)
	}
	r.GET("/ws/deliveries/:id/position",
		middlewares.AuthMiddleware(d.JWTSecret, entity.RoleCourier),
		d.Positions.HandleWebSocket)
}
