package services

import (
	"testing"

	"github.com/itsmelouis/kiosko/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmitter struct {
	successes int
}

func (r *recordingEmitter) Selection() {}
func (r *recordingEmitter) Success()   { r.successes++ }
func (r *recordingEmitter) Error()     {}
func (r *recordingEmitter) Warning()   {}

var burger = entity.ProductSnapshot{ProductID: 1, Name: "Big Kiosko", BasePrice: 8.90}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	s := NewCartService(nil)

	s.AddItem("kiosk-1", burger, 2, nil)
	s.AddItem("kiosk-2", burger, 1, nil)

	assert.Equal(t, 2, s.ItemCount("kiosk-1"))
	assert.Equal(t, 1, s.ItemCount("kiosk-2"))
	assert.Equal(t, 0, s.ItemCount("kiosk-3"))
}

func TestCartServiceEmitsSuccessOnAdd(t *testing.T) {
	emitter := &recordingEmitter{}
	s := NewCartService(emitter)

	s.AddItem("kiosk-1", burger, 1, nil)
	s.AddItem("kiosk-1", burger, 1, nil)

	assert.Equal(t, 2, emitter.successes)
}

func TestCartServiceSnapshotIsACopy(t *testing.T) {
	s := NewCartService(nil)
	s.AddItem("kiosk-1", burger, 1, nil)

	snap := s.Snapshot("kiosk-1")
	snap.Items[0].Quantity = 50

	assert.Equal(t, 1, s.ItemCount("kiosk-1"))
}

func TestCartServiceResetSessionDropsEverything(t *testing.T) {
	s := NewCartService(nil)
	s.AddItem("kiosk-1", burger, 2, nil)
	s.SetUser("kiosk-1", &entity.User{FirstName: "Jean"})
	s.SetDineMode("kiosk-1", entity.DineModeDineIn)

	s.ResetSession("kiosk-1")

	snap := s.Snapshot("kiosk-1")
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.DineMode)
}

func TestCartServiceClearKeepsIdentity(t *testing.T) {
	s := NewCartService(nil)
	s.AddItem("kiosk-1", burger, 2, nil)
	s.SetUser("kiosk-1", &entity.User{FirstName: "Jean"})
	s.SetDineMode("kiosk-1", entity.DineModeTakeaway)

	s.Clear("kiosk-1")

	snap := s.Snapshot("kiosk-1")
	assert.Empty(t, snap.Items)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Jean", snap.User.FirstName)
	assert.Equal(t, entity.DineModeTakeaway, snap.DineMode)
}

func productOptsFixture() []entity.ProductOption {
	mk := func(id uint, label string, kind entity.OptionKind, delta float64, def bool) entity.ProductOption {
		o := entity.ProductOption{Label: label, Kind: kind, PriceDelta: delta, IsDefault: def}
		o.ID = id
		return o
	}
	return []entity.ProductOption{
		mk(1, "Normal", entity.KindSize, 0, true),
		mk(2, "XL", entity.KindSize, 2.00, false),
		mk(3, "Bacon", entity.KindExtra, 1.50, false),
		mk(4, "Oeuf", entity.KindExtra, 1.00, false),
		mk(5, "À point", entity.KindCooking, 0, true),
		mk(6, "Bien cuit", entity.KindCooking, 0, false),
	}
}

func selectedIDs(sel []entity.SelectedOption) []uint {
	out := make([]uint, 0, len(sel))
	for _, s := range sel {
		out = append(out, s.OptionID)
	}
	return out
}

func TestToggleOptionExclusiveReplaces(t *testing.T) {
	opts := productOptsFixture()
	sel := DefaultSelections(opts) // Normal + À point

	sel = ToggleOption(opts, sel, 2) // XL replaces Normal
	assert.ElementsMatch(t, []uint{2, 5}, selectedIDs(sel))

	sel = ToggleOption(opts, sel, 6) // Bien cuit replaces À point
	assert.ElementsMatch(t, []uint{2, 6}, selectedIDs(sel))

	// re-picking the selected exclusive option keeps it selected
	sel = ToggleOption(opts, sel, 2)
	assert.ElementsMatch(t, []uint{2, 6}, selectedIDs(sel))
}

func TestToggleOptionMultiToggles(t *testing.T) {
	opts := productOptsFixture()
	var sel []entity.SelectedOption

	sel = ToggleOption(opts, sel, 3)
	sel = ToggleOption(opts, sel, 4)
	assert.ElementsMatch(t, []uint{3, 4}, selectedIDs(sel))

	// toggling again removes it, the other extra stays
	sel = ToggleOption(opts, sel, 3)
	assert.ElementsMatch(t, []uint{4}, selectedIDs(sel))
}

func TestToggleOptionUnknownIDNoop(t *testing.T) {
	opts := productOptsFixture()
	sel := DefaultSelections(opts)
	assert.Equal(t, sel, ToggleOption(opts, sel, 999))
}

func TestDefaultSelectionsCarryPriceDeltas(t *testing.T) {
	opts := productOptsFixture()
	sel := DefaultSelections(opts)
	require.Len(t, sel, 2)
	assert.Equal(t, "Normal", sel[0].Label)
	assert.Equal(t, 0.0, sel[0].PriceDelta)
}
