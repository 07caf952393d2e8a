package services

import (
	"strings"
	"testing"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Format(t *testing.T) {
	env := newTestEnv(t)
	resv, err := env.resv.Create(&CreateReservationReq{
		CustomerName:    "Rossi",
		ReservationTime: "2024-05-01 20:00:00",
		NumGuests:       4,
		TableNumber:     intPtr(7),
	})
	require.NoError(t, err)
	order := env.mustOrder(t, resv.ID, "beverage")
	wine := env.mustMenuItem(t, "House Red", 4.50, entity.CategoryBeverage)
	water := env.mustMenuItem(t, "Sparkling Water", 2.00, entity.CategoryBeverage)

	_, err = env.items.Add(order.ID, &AddItemReq{MenuItemID: wine.ID, Quantity: intPtr(2), SpecialRequests: "chilled"})
	require.NoError(t, err)
	_, err = env.items.Add(order.ID, &AddItemReq{MenuItemID: water.ID})
	require.NoError(t, err)

	view, err := env.tickets.Format(order.ID, "")
	require.NoError(t, err)

	assert.Equal(t, order.ID, view.OrderID)
	assert.Equal(t, "Beverage Order", view.Title)
	assert.Equal(t, "Rossi", view.CustomerName)
	require.NotNil(t, view.TableNumber)
	assert.Equal(t, 7, *view.TableNumber)
	assert.InDelta(t, 11.00, view.Total, 1e-9)
	assert.True(t, strings.HasPrefix(view.QRCode, "data:image/png;base64,"))

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "House Red", view.Lines[0].Name)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "chilled", view.Lines[0].SpecialRequests)
	assert.InDelta(t, 9.00, view.Lines[0].LineTotal, 1e-9)
	assert.Equal(t, "Sparkling Water", view.Lines[1].Name)
}

func TestTicketService_TypeFilter(t *testing.T) {
	env := newTestEnv(t)
	resv := env.mustReservation(t)
	order := env.mustOrder(t, resv.ID, "food")

	// matching filter is fine
	view, err := env.tickets.Format(order.ID, "food")
	require.NoError(t, err)
	assert.Equal(t, "Food Order", view.Title)

	// a filter naming the other type is rejected
	var ve *ValidationError
	_, err = env.tickets.Format(order.ID, "beverage")
	require.ErrorAs(t, err, &ve)

	_, err = env.tickets.Format(order.ID, "dessert")
	assert.ErrorAs(t, err, &ve)
}

func TestTicketService_OrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	var nf *NotFoundError
	_, err := env.tickets.Format(42, "")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Order", nf.Entity)
}

func TestTicketService_EmptyOrder(t *testing.T) {
	env := newTestEnv(t)
	resv := env.mustReservation(t)
	order := env.mustOrder(t, resv.ID, "food")

	view, err := env.tickets.Format(order.ID, "")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}
