package repository

import (
	"testing"

	"github.com/itsmelouis/kiosko/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Product{}, &entity.ProductOption{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.User{}, &entity.LoyaltyHistory{}, &entity.Staff{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) entity.Product {
	t.Helper()
	p := entity.Product{
		Name:        "Big Kiosko",
		BasePrice:   8.90,
		IsAvailable: true,
		Options: []entity.ProductOption{
			{Label: "Normal", Kind: entity.KindSize, IsDefault: true, SortOrder: 1},
			{Label: "XL", Kind: entity.KindSize, PriceDelta: 2.00, SortOrder: 2},
			{Label: "Bacon", Kind: entity.KindExtra, PriceDelta: 1.50, SortOrder: 3},
		},
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCatalogRepositoryProductLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	p := seedProduct(t, db)

	got, err := repo.GetProductByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Big Kiosko", got.Name)
	assert.Len(t, got.Options, 3)

	missing, err := repo.GetProductByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepositoryOptionsScopedToProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	p := seedProduct(t, db)

	other := entity.Product{Name: "Frites", BasePrice: 3.50, IsAvailable: true,
		Options: []entity.ProductOption{{Label: "Grande", Kind: entity.KindSize, PriceDelta: 1.50}}}
	require.NoError(t, db.Create(&other).Error)

	// another product's option id must not resolve
	opts, err := repo.GetOptionsByIDs(p.ID, []uint{p.Options[0].ID, other.Options[0].ID})
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestCatalogRepositoryListsOnlyAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	seedProduct(t, db)
	require.NoError(t, db.Create(&entity.Product{Name: "86'd", IsAvailable: false}).Error)

	products, err := repo.ListAvailableProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Big Kiosko", products[0].Name)
}

func TestOrderRepositoryCreateOrderWithLoyalty(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	user := entity.User{LoyaltyQR: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Points: 150}
	require.NoError(t, db.Create(&user).Error)

	order := entity.Order{
		TableNumber: "SUR-PLACE",
		TotalAmount: 41.00,
		Status:      entity.OrderStatusPending,
		UserID:      &user.ID,
		Items: []entity.OrderItem{
			{
				ProductID: 1, ProductName: "Big Kiosko",
				Quantity: 2, UnitPrice: 16.50, LineTotal: 33.00,
				Selections: []entity.OrderItemSelection{
					{OptionID: 2, Label: "XL", PriceDelta: 2.00},
				},
			},
			{ProductID: 3, ProductName: "Frites", Quantity: 1, UnitPrice: 8.00, LineTotal: 8.00},
		},
	}
	require.NoError(t, repo.CreateOrder(&order, 41))
	require.NotZero(t, order.ID)

	got, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Len(t, got.Items[0].Selections, 1)
	assert.Equal(t, 41.00, got.TotalAmount)

	var refreshed entity.User
	require.NoError(t, db.First(&refreshed, user.ID).Error)
	assert.Equal(t, 191, refreshed.Points)

	var hist []entity.LoyaltyHistory
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&hist).Error)
	require.Len(t, hist, 1)
	assert.Equal(t, 41, hist[0].PointsChange)
	assert.Equal(t, order.ID, hist[0].OrderID)
}

func TestOrderRepositoryAnonymousOrderNoHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{TableNumber: "A-EMPORTER", TotalAmount: 5.90, Status: entity.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(&order, 0))

	var count int64
	db.Model(&entity.LoyaltyHistory{}).Count(&count)
	assert.Zero(t, count)
}

func TestOrderRepositoryStatusGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{TableNumber: "BORNE-1", Status: entity.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(&order, 0))

	ok, err := repo.UpdateStatusFromTo(order.ID, entity.OrderStatusPending, entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.True(t, ok)

	// second advance from the stale state loses the race
	ok, err = repo.UpdateStatusFromTo(order.ID, entity.OrderStatusPending, entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositoryLoyaltyLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := entity.User{LoyaltyQR: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", FirstName: "Jean", Points: 150}
	require.NoError(t, db.Create(&user).Error)

	got, err := repo.GetByLoyaltyQR(user.LoyaltyQR)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jean", got.FirstName)

	unknown, err := repo.GetByLoyaltyQR("ffffffff-ffff-4fff-8fff-ffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}
