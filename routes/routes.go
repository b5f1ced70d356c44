package routes

import (
	"github.com/itsmelouis/kiosko/configs"
	"github.com/itsmelouis/kiosko/controllers"
	"github.com/itsmelouis/kiosko/middlewares"
	"github.com/itsmelouis/kiosko/pkg/feedback"
	"github.com/itsmelouis/kiosko/repository"
	"github.com/itsmelouis/kiosko/services"
	"github.com/itsmelouis/kiosko/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Kitchen display feed
	hub := ws.NewKitchenHub()
	go hub.Run()

	// Services
	cartSvc := services.NewCartService(feedback.LogEmitter{})
	menuSvc := services.NewMenuService(catalogRepo)
	loyaltySvc := services.NewLoyaltyService(userRepo)
	paymentSvc := services.NewPaymentService()
	orderSvc := services.NewOrderService(cartSvc, orderRepo)
	orderSvc.Notifier = hub
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	sessionCtrl := controllers.NewSessionController(cartSvc, cfg.JWTSecret, cfg.JWTTTL)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, menuSvc)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc, cartSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, orderRepo)
	authCtrl := controllers.NewAuthController(authSvc)

	// Public
	r.POST("/session", sessionCtrl.Start)
	r.GET("/menu/categories", menuCtrl.Categories)
	r.GET("/menu/products", menuCtrl.Products)
	r.GET("/menu/products/:id", menuCtrl.ProductDetail)
	r.GET("/menu/products/:id/options", menuCtrl.ProductOptions)
	r.POST("/payment", paymentCtrl.Process)
	r.POST("/auth/login", authCtrl.Login)

	// Kiosk session (cart mutations)
	s := r.Group("/", middlewares.SessionMiddleware(cfg.JWTSecret))
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.AddItem)
		s.PATCH("/cart/items/:id/qty", cartCtrl.UpdateQuantity)
		s.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		s.DELETE("/cart", cartCtrl.Clear)
		s.PATCH("/cart/dine-mode", cartCtrl.SetDineMode)
		s.PATCH("/cart/open", cartCtrl.SetCartOpen)

		s.POST("/loyalty/scan", loyaltyCtrl.Scan)
		s.DELETE("/loyalty", loyaltyCtrl.Detach)

		s.POST("/orders", orderCtrl.Create)
		s.GET("/orders/:id", orderCtrl.Detail)

		s.DELETE("/session", sessionCtrl.Reset)
	}

	// Kitchen staff
	staff := r.Group("/staff", middlewares.StaffMiddleware(cfg.JWTSecret, "staff"))
	{
		staff.GET("/orders", orderCtrl.ListForStaff)
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}
	r.GET("/ws/kitchen", middlewares.StaffMiddleware(cfg.JWTSecret, "staff"), hub.HandleWebSocket)
}
