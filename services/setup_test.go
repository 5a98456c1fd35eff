package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
)

var testDBSeq int64

// newTestDB opens a private in-memory database per test. The shared
// cache keeps gorm's pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Delivery{}, &entity.Message{},
	))
	return db
}

type testEnv struct {
	db *gorm.DB

	Users      *repository.UserRepository
	Rests      *repository.RestaurantRepository
	ProductsRp *repository.ProductRepository
	Carts      *repository.CartRepository
	Orders     *repository.OrderRepository
	Deliveries *repository.DeliveryRepository
	Chats      *repository.ChatRepository

	Auth     *AuthService
	Catalog  *CatalogService
	Cart     *CartService
	Order    *OrderService
	Product  *ProductService
	Delivery *DeliveryService
	Chat     *ChatService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	e := &testEnv{
		db:         db,
		Users:      repository.NewUserRepository(db),
		Rests:      repository.NewRestaurantRepository(db),
		ProductsRp: repository.NewProductRepository(db),
		Carts:      repository.NewCartRepository(db),
		Orders:     repository.NewOrderRepository(db),
		Deliveries: repository.NewDeliveryRepository(db),
		Chats:      repository.NewChatRepository(db),
	}
	e.Cart = NewCartService(db, e.Carts, e.ProductsRp, e.Rests)
	e.Catalog = NewCatalogService(e.Rests)
	e.Auth = NewAuthService(e.Users, e.Cart, "test-secret", time.Hour)
	e.Order = NewOrderService(db, e.Orders, e.Carts, e.Rests, e.Deliveries,
		e.Users, NopNotifier{}, 3*time.Second)
	e.Product = NewProductService(db, e.ProductsRp, e.Rests)
	e.Delivery = NewDeliveryService(db, e.Deliveries, e.Users, NopNotifier{})
	e.Chat = NewChatService(e.Chats, e.Orders, e.Rests, e.Deliveries, 10*time.Millisecond)
	return e
}

func (e *testEnv) user(t *testing.T, email, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &entity.User{Email: email, Password: string(hash), Name: email, Role: role}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) restaurant(t *testing.T, name string, fee int64, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name: name, Category: "pizza", DeliveryFee: fee, OwnerID: ownerID,
		Address: "Rua das Pizzas, 100", Lat: -23.55, Lng: -46.63,
	}
	require.NoError(t, e.db.Create(r).Error)
	return r
}

func (e *testEnv) product(t *testing.T, restID uint, name string, price int64, available bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name: name, Price: price, RestaurantID: restID,
		Available: available, Stock: 10, Category: "main",
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

// placedOrder walks the customer path: fill the cart, check out.
func (e *testEnv) placedOrder(t *testing.T, customer *entity.User, products ...*entity.Product) *entity.Order {
	t.Helper()
	for _, p := range products {
		require.NoError(t, e.Cart.Add(customer.ID, p.ID))
	}
	o, err := e.Order.Checkout(customer.ID, &CheckoutIn{
		Address: "Av. Paulista, 1000", PaymentMethod: "pix",
	})
	require.NoError(t, err)
	return o
}
