package configs

import (
	"log"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedProfiles creates the three demo accounts the profile selector
// offers. Password is the same for all of them ("demo123").
func SeedProfiles() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profiles := []entity.User{
		{Email: "cliente@demo.com", Password: string(hash), Name: "João Silva", Address: "Rua das Flores, 123", Role: entity.RoleCustomer},
		{Email: "loja@demo.com", Password: string(hash), Name: "Pizza Prime", Role: entity.RoleMerchant},
		{Email: "entregador@demo.com", Password: string(hash), Name: "Carlos Oliveira", Role: entity.RoleCourier, Online: true},
	}
	for i := range profiles {
		if err := db.Create(&profiles[i]).Error; err != nil {
			return err
		}
	}
	log.Println("seeded demo profiles")
	return nil
}

// SeedCatalog loads the demo restaurants and their menus.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	var merchant entity.User
	if err := db.Where("role = ?", entity.RoleMerchant).First(&merchant).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{
			Name: "Pizza Prime", Category: "pizza", Rating: 4.8, OwnerID: merchant.ID,
			Address: "Rua das Pizzas, 100", Lat: -23.550520, Lng: -46.633308,
			DeliveryTime: "30-40 min", DeliveryFee: 0,
			Image: "https://images.unsplash.com/photo-1624632961345-c555acdf847e?w=1080",
			Tags:  []string{"Pizza", "Italiana", "Massas"},
			Products: []entity.Product{
				{Name: "Pizza Margherita", Description: "Molho de tomate, mussarela, manjericão fresco", Price: 4290, Category: "Pizzas", Image: "https://images.unsplash.com/photo-1624632961345-c555acdf847e?w=400", Stock: 50, Available: true},
				{Name: "Pizza Pepperoni", Description: "Molho de tomate, mussarela, pepperoni", Price: 4890, Category: "Pizzas", Image: "https://images.unsplash.com/photo-1624632961345-c555acdf847e?w=400", Stock: 40, Available: true},
				{Name: "Pizza Quattro Formaggi", Description: "Mussarela, gorgonzola, parmesão, provolone", Price: 5290, Category: "Pizzas", Image: "https://images.unsplash.com/photo-1624632961345-c555acdf847e?w=400", Stock: 35, Available: true},
				{Name: "Refrigerante Lata", Description: "Coca-Cola, Guaraná, Fanta", Price: 590, Category: "Bebidas", Image: "https://images.unsplash.com/photo-1624632961345-c555acdf847e?w=400", Stock: 0, Available: false},
			},
		},
		{
			Name: "Burger House", Category: "burger", Rating: 4.6,
			Address: "Av. Principal, 200", Lat: -23.548900, Lng: -46.638800,
			DeliveryTime: "25-35 min", DeliveryFee: 599,
			Image: "https://images.unsplash.com/photo-1722125680299-783f98369451?w=1080",
			Tags:  []string{"Hambúrguer", "Fast Food", "Americano"},
			Products: []entity.Product{
				{Name: "Classic Burger", Description: "Hambúrguer 180g, queijo, alface, tomate, cebola", Price: 2890, Category: "Hambúrgueres", Image: "https://images.unsplash.com/photo-1722125680299-783f98369451?w=400", Stock: 30, Available: true},
				{Name: "Bacon Burger", Description: "Hambúrguer 180g, bacon crocante, queijo cheddar", Price: 3490, Category: "Hambúrgueres", Image: "https://images.unsplash.com/photo-1722125680299-783f98369451?w=400", Stock: 25, Available: true},
				{Name: "Batata Frita", Description: "Porção individual de batatas fritas crocantes", Price: 1290, Category: "Acompanhamentos", Image: "https://images.unsplash.com/photo-1722125680299-783f98369451?w=400", Stock: 60, Available: true},
			},
		},
		{
			Name: "Sushi Express", Category: "sushi", Rating: 4.9,
			Address: "Rua Japão, 50", Lat: -23.543200, Lng: -46.629100,
			DeliveryTime: "40-50 min", DeliveryFee: 850,
			Image: "https://images.unsplash.com/photo-1700324822763-956100f79b0d?w=1080",
			Tags:  []string{"Japonês", "Sushi", "Sashimi"},
		},
		{
			Name: "Trattoria Italiana", Category: "pasta", Rating: 4.7,
			Address: "Rua Itália, 77", Lat: -23.552800, Lng: -46.642100,
			DeliveryTime: "35-45 min", DeliveryFee: 0,
			Image: "https://images.unsplash.com/photo-1662197480393-2a82030b7b83?w=1080",
			Tags:  []string{"Massas", "Italiana", "Pizza"},
		},
		{
			Name: "Green Bowl", Category: "healthy", Rating: 4.5,
			Address: "Alameda Verde, 12", Lat: -23.546400, Lng: -46.651900,
			DeliveryTime: "20-30 min", DeliveryFee: 450,
			Image: "https://images.unsplash.com/photo-1649531794884-b8bb1de72e68?w=1080",
			Tags:  []string{"Saudável", "Saladas", "Vegano"},
		},
		{
			Name: "Sweet Dreams", Category: "dessert", Rating: 4.8,
			Address: "Rua Doce, 33", Lat: -23.558700, Lng: -46.636500,
			DeliveryTime: "25-35 min", DeliveryFee: 350,
			Image: "https://images.unsplash.com/photo-1607257882338-70f7dd2ae344?w=1080",
			Tags:  []string{"Sobremesas", "Doces", "Bolos"},
		},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	log.Println("seeded demo catalog")
	return nil
}

// SeedDemoData fills the merchant and courier dashboards so the demo is
// not empty at first login: a few orders in flight, a pool of delivery
// jobs, and an ongoing chat on the first order.
func SeedDemoData() error {
	db := DB()

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	var customer entity.User
	if err := db.Where("role = ?", entity.RoleCustomer).First(&customer).Error; err != nil {
		return err
	}
	var restaurant entity.Restaurant
	if err := db.Where("name = ?", "Pizza Prime").First(&restaurant).Error; err != nil {
		return err
	}

	orders := []entity.Order{
		{
			Number: "001", CustomerName: "João Silva", UserID: customer.ID, RestaurantID: restaurant.ID,
			Address: "Rua das Flores, 123", PaymentMethod: "credit",
			Subtotal: 9470, DeliveryFee: 0, Total: 9470, Status: entity.OrderPending,
			Items: []entity.OrderItem{
				{Name: "Pizza Margherita", Qty: 2, UnitPrice: 4290, Total: 8580},
				{Name: "Refrigerante 2L", Qty: 1, UnitPrice: 890, Total: 890},
			},
		},
		{
			Number: "002", CustomerName: "Maria Santos", UserID: customer.ID, RestaurantID: restaurant.ID,
			Address: "Av. Principal, 456", PaymentMethod: "debit",
			Subtotal: 4180, DeliveryFee: 0, Total: 4180, Status: entity.OrderPreparing,
			Items: []entity.OrderItem{
				{Name: "Hambúrguer Clássico", Qty: 1, UnitPrice: 2890, Total: 2890},
				{Name: "Batata Frita", Qty: 1, UnitPrice: 1290, Total: 1290},
			},
		},
		{
			Number: "003", CustomerName: "Pedro Costa", UserID: customer.ID, RestaurantID: restaurant.ID,
			Address: "Rua do Comércio, 789", PaymentMethod: "cash",
			Subtotal: 6500, DeliveryFee: 0, Total: 6500, Status: entity.OrderReady,
			Items: []entity.OrderItem{
				{Name: "Sushi Combo", Qty: 1, UnitPrice: 6500, Total: 6500},
			},
		},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return err
		}
	}

	deliveries := []entity.Delivery{
		{
			RestaurantName: "Pizza Prime", CustomerName: "João Silva",
			PickupAddress: "Rua das Pizzas, 100", DropoffAddress: "Rua das Flores, 123",
			Distance: "2.3 km", Payment: 850, Status: entity.DeliveryAvailable,
			PickupLat: -23.550520, PickupLng: -46.633308, DropoffLat: -23.561684, DropoffLng: -46.656139,
		},
		{
			RestaurantName: "Burger House", CustomerName: "Maria Santos",
			PickupAddress: "Av. Principal, 200", DropoffAddress: "Rua do Comércio, 456",
			Distance: "1.8 km", Payment: 700, Status: entity.DeliveryAvailable,
			PickupLat: -23.548900, PickupLng: -46.638800, DropoffLat: -23.557300, DropoffLng: -46.649500,
		},
		{
			RestaurantName: "Sushi Express", CustomerName: "Pedro Costa",
			PickupAddress: "Rua Japão, 50", DropoffAddress: "Av. Brasil, 789",
			Distance: "3.5 km", Payment: 1000, Status: entity.DeliveryAvailable,
			PickupLat: -23.543200, PickupLng: -46.629100, DropoffLat: -23.566800, DropoffLng: -46.661200,
		},
	}
	for i := range deliveries {
		if err := db.Create(&deliveries[i]).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	messages := []entity.Message{
		{OrderID: orders[0].ID, UserID: customer.ID, SenderRole: entity.RoleCustomer, Body: "Olá! Pode adicionar bastante molho extra?"},
		{OrderID: orders[0].ID, UserID: customer.ID, SenderRole: entity.RoleMerchant, Body: "Claro! Vou adicionar molho extra sem custo adicional."},
		{OrderID: orders[0].ID, UserID: customer.ID, SenderRole: entity.RoleCourier, Body: "Saí para buscar o pedido. Chego em 5 minutos."},
	}
	for i := range messages {
		messages[i].CreatedAt = now.Add(time.Duration(i-3) * time.Minute)
		if err := db.Create(&messages[i]).Error; err != nil {
			return err
		}
	}

	log.Println("seeded demo orders, deliveries and chat")
	return nil
}
