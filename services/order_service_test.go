package services

import (
	"errors"
	"testing"

	"github.com/itsmelouis/kiosko/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	nextID  uint
	failErr error

	created []entity.Order
	points  []int
}

func (f *fakeOrderStore) CreateOrder(o *entity.Order, pointsEarned int) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.nextID++
	o.ID = f.nextID
	f.created = append(f.created, *o)
	f.points = append(f.points, pointsEarned)
	return nil
}

type fakeNotifier struct {
	placed []uint
}

func (f *fakeNotifier) OrderPlaced(o *entity.Order) { f.placed = append(f.placed, o.ID) }

func fillCart(carts *CartService, sid string) {
	carts.AddItem(sid,
		entity.ProductSnapshot{ProductID: 1, Name: "Big Kiosko", BasePrice: 12.00},
		2,
		[]entity.SelectedOption{
			{OptionID: 1, Label: "XL", PriceDelta: 3.00},
			{OptionID: 2, Label: "Bacon", PriceDelta: 1.50},
		})
	carts.AddItem(sid,
		entity.ProductSnapshot{ProductID: 2, Name: "Menu Poulet", BasePrice: 14.00}, 1, nil)
}

func TestSubmitPersistsSnapshotAndClearsCart(t *testing.T) {
	carts := NewCartService(nil)
	store := &fakeOrderStore{}
	svc := NewOrderService(carts, store)

	fillCart(carts, "kiosk-1")
	carts.SetDineMode("kiosk-1", entity.DineModeDineIn)

	out, err := svc.Submit("kiosk-1")
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	order := store.created[0]
	assert.Equal(t, "SUR-PLACE", order.TableNumber)
	assert.Equal(t, 47.00, order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Nil(t, order.UserID)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Big Kiosko", order.Items[0].ProductName)
	assert.Equal(t, 16.50, order.Items[0].UnitPrice)
	assert.Equal(t, 33.00, order.Items[0].LineTotal)
	require.Len(t, order.Items[0].Selections, 2)
	assert.Equal(t, "XL", order.Items[0].Selections[0].Label)

	assert.Equal(t, out.ID, order.ID)
	assert.Equal(t, 47.00, out.Total)
	assert.Equal(t, OrderReference(order.ID), out.Reference)

	// cart cleared only after the store committed
	assert.Equal(t, 0, carts.ItemCount("kiosk-1"))
}

func TestSubmitFailureLeavesCartIntact(t *testing.T) {
	carts := NewCartService(nil)
	store := &fakeOrderStore{failErr: errors.New("db down")}
	svc := NewOrderService(carts, store)

	fillCart(carts, "kiosk-1")

	_, err := svc.Submit("kiosk-1")
	require.Error(t, err)
	assert.Equal(t, "db down", err.Error())

	// nothing lost: the kiosk may retry by re-submitting
	assert.Equal(t, 3, carts.ItemCount("kiosk-1"))
	assert.Equal(t, 47.00, carts.Total("kiosk-1"))

	store.failErr = nil
	out, err := svc.Submit("kiosk-1")
	require.NoError(t, err)
	assert.Equal(t, 47.00, out.Total)
	assert.Equal(t, 0, carts.ItemCount("kiosk-1"))
}

func TestSubmitEmptyCart(t *testing.T) {
	carts := NewCartService(nil)
	svc := NewOrderService(carts, &fakeOrderStore{})

	_, err := svc.Submit("kiosk-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestSubmitAwardsLoyaltyPoints(t *testing.T) {
	carts := NewCartService(nil)
	store := &fakeOrderStore{}
	svc := NewOrderService(carts, store)

	user := &entity.User{FirstName: "Jean"}
	user.ID = 42
	carts.SetUser("kiosk-1", user)
	carts.AddItem("kiosk-1",
		entity.ProductSnapshot{ProductID: 3, Name: "Frites", BasePrice: 41.99}, 1, nil)

	_, err := svc.Submit("kiosk-1")
	require.NoError(t, err)

	require.NotNil(t, store.created[0].UserID)
	assert.Equal(t, uint(42), *store.created[0].UserID)
	assert.Equal(t, 41, store.points[0]) // one point per whole euro

	// the user stays attached for the next order of the same session
	assert.NotNil(t, carts.Snapshot("kiosk-1").User)
}

func TestSubmitNotifiesKitchen(t *testing.T) {
	carts := NewCartService(nil)
	store := &fakeOrderStore{}
	notifier := &fakeNotifier{}
	svc := NewOrderService(carts, store)
	svc.Notifier = notifier

	fillCart(carts, "kiosk-1")
	out, err := svc.Submit("kiosk-1")
	require.NoError(t, err)
	assert.Equal(t, []uint{out.ID}, notifier.placed)
}

func TestTableToken(t *testing.T) {
	assert.Equal(t, "SUR-PLACE", TableToken(entity.DineModeDineIn))
	assert.Equal(t, "A-EMPORTER", TableToken(entity.DineModeTakeaway))
	assert.Equal(t, "BORNE-1", TableToken(""))
}

func TestOrderReference(t *testing.T) {
	assert.Equal(t, "B-001", OrderReference(1))
	assert.Equal(t, "A-026", OrderReference(26))
	// deterministic: same id, same reference
	assert.Equal(t, OrderReference(7), OrderReference(7))
}
