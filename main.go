package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/carlossbezerra/SuperDelivery/configs"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"github.com/carlossbezerra/SuperDelivery/routes"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (in-memory; everything resets on restart)
	configs.ConnectionDB()
	configs.SetupDatabase()
	db := configs.DB()

	if err := configs.SeedProfiles(); err != nil {
		log.Fatalf("seed profiles failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedDemoData(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Hubs first: the notify hub fans order events out to every
	// connected client
	notifyHub := ws.NewNotifyHub()

	// Services
	cartSvc := services.NewCartService(db, cartRepo, productRepo, restRepo)
	catalogSvc := services.NewCatalogService(restRepo)
	authSvc := services.NewAuthService(userRepo, cartSvc, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, deliveryRepo,
		userRepo, notifyHub, cfg.TrackStepInterval)
	productSvc := services.NewProductService(db, productRepo, restRepo)
	deliverySvc := services.NewDeliveryService(db, deliveryRepo, userRepo, notifyHub)
	chatSvc := services.NewChatService(chatRepo, orderRepo, restRepo, deliveryRepo, cfg.ChatReplyDelay)

	chatHub := ws.NewChatHub(chatSvc)
	go chatHub.Run()

	positions := ws.NewPositionFeed(deliverySvc, cfg.PositionInterval)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      authSvc,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Orders:    orderSvc,
		Products:  productSvc,
		Delivery:  deliverySvc,
		Chat:      chatSvc,
		ChatHub:   chatHub,
		NotifyHub: notifyHub,
		Positions: positions,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
