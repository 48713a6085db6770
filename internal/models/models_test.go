package models_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pasar/internal/database"
	"pasar/internal/models"
)

// openTestDB migrates the full schema into a fresh in-memory SQLite
// database with foreign-key enforcement switched on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role, tag string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    tag + "@example.com",
		Username: tag,
		Password: "hashed-password",
		Role:     role,
		Name:     "Test User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uint) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:          sellerID,
		Title:             "Hand-carved Bowl",
		Description:       "A lovely hand-carved bowl made of oak.",
		Price:             15.0,
		QuantityAvailable: 3,
		Images:            []string{"/uploads/bowl.png"},
		ImageBinaries:     map[string]string{"/uploads/bowl.png": "ZGF0YQ=="},
		Category:          "home_decor",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestUniqueEmailAndUsername(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, models.RoleBuyer, "alice")

	dupEmail := &models.User{Email: "alice@example.com", Username: "alice2", Password: "x"}
	assert.Error(t, db.Create(dupEmail).Error)

	dupUsername := &models.User{Email: "other@example.com", Username: "alice", Password: "x"}
	assert.Error(t, db.Create(dupUsername).Error)
}

func TestProductPriceCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")

	bad := &models.Product{
		SellerID:    seller.ID,
		Title:       "Cursed Bowl",
		Description: "This one should never make it into the table.",
		Price:       -1,
		Category:    "home_decor",
	}
	assert.Error(t, db.Create(bad).Error, "negative price must be rejected")

	bad.Price = 1
	bad.QuantityAvailable = -1
	assert.Error(t, db.Create(bad).Error, "negative quantity must be rejected")
}

func TestOrderItemQuantityCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")
	buyer := seedUser(t, db, models.RoleBuyer, "buyer")
	product := seedProduct(t, db, seller.ID)

	order := &models.Order{BuyerID: buyer.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(order).Error)

	item := &models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  0,
		UnitPrice: 15.0,
	}
	assert.Error(t, db.Create(item).Error, "zero quantity must be rejected")

	item.Quantity = 1
	assert.NoError(t, db.Create(item).Error)
}

func TestReviewRatingCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")
	buyer := seedUser(t, db, models.RoleBuyer, "buyer")
	product := seedProduct(t, db, seller.ID)

	for _, rating := range []int{0, 6, -1} {
		review := &models.Review{ProductID: product.ID, BuyerID: buyer.ID, Rating: rating}
		assert.Error(t, db.Create(review).Error, "rating %d must be rejected", rating)
	}

	good := &models.Review{ProductID: product.ID, BuyerID: buyer.ID, Rating: 5, Comment: "great"}
	assert.NoError(t, db.Create(good).Error)
}

func TestDeletingUserCascades(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")
	buyer := seedUser(t, db, models.RoleBuyer, "buyer")
	product := seedProduct(t, db, seller.ID)

	order := &models.Order{BuyerID: buyer.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, Quantity: 1, UnitPrice: 15,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		ProductID: product.ID, BuyerID: buyer.ID, Rating: 4,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		UserID: buyer.ID, ProductID: product.ID, Quantity: 2,
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		UserID: buyer.ID, Title: "hi", Type: models.NotificationTypeSystem,
	}).Error)
	require.NoError(t, db.Create(&models.Message{
		SenderID: buyer.ID, ReceiverID: seller.ID, Content: "hello",
	}).Error)

	// Deleting the seller removes their products and, through the product,
	// the dependent rows.
	require.NoError(t, db.Delete(&models.User{}, seller.ID).Error)

	var productCount, itemCount int64
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, productCount, "seller's products must cascade away")
	assert.Zero(t, itemCount, "order items referencing the product must cascade away")

	// Deleting the buyer removes their orders, reviews, cart, notifications,
	// and messages.
	require.NoError(t, db.Delete(&models.User{}, buyer.ID).Error)

	counts := map[string]interface{}{
		"orders":        &models.Order{},
		"reviews":       &models.Review{},
		"cart items":    &models.CartItem{},
		"notifications": &models.Notification{},
		"messages":      &models.Message{},
	}
	for name, model := range counts {
		var n int64
		db.Model(model).Count(&n)
		assert.Zero(t, n, "%s must cascade away with the buyer", name)
	}
}

func TestDeletingOrderCascadesToItems(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")
	buyer := seedUser(t, db, models.RoleBuyer, "buyer")
	product := seedProduct(t, db, seller.ID)

	order := &models.Order{BuyerID: buyer.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, Quantity: 2, UnitPrice: 15,
	}).Error)

	require.NoError(t, db.Delete(&models.Order{}, order.ID).Error)

	var itemCount int64
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, itemCount)
}

func TestProductImageRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller, "seller")
	product := seedProduct(t, db, seller.ID)

	var loaded models.Product
	require.NoError(t, db.First(&loaded, product.ID).Error)

	assert.Equal(t, []string{"/uploads/bowl.png"}, loaded.Images)
	assert.Equal(t, "ZGF0YQ==", loaded.ImageBinaries["/uploads/bowl.png"])
}
