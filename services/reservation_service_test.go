package services

import (
	"testing"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.resv.Create(&CreateReservationReq{
		CustomerName:    "Rossi",
		PhoneNumber:     "333 1234567",
		ReservationTime: "2024-05-01 20:00:00",
		NumGuests:       4,
		TableNumber:     intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationBooked, created.Status)
	assert.Equal(t, "Rossi", created.CustomerName)
	assert.Equal(t, "2024-05-01 20:00:00", created.ReservationTime)
	assert.Equal(t, 4, created.NumGuests)
	require.NotNil(t, created.TableNumber)
	assert.Equal(t, 12, *created.TableNumber)
	assert.Empty(t, created.Orders)

	got, err := env.resv.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rossi", got.CustomerName)
	assert.Equal(t, entity.ReservationBooked, got.Status)
}

func TestReservationService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		req   CreateReservationReq
		field string
	}{
		{
			name:  "missing_customer_name",
			req:   CreateReservationReq{ReservationTime: "2024-05-01 20:00:00", NumGuests: 2},
			field: "customer_name",
		},
		{
			name:  "bad_reservation_time",
			req:   CreateReservationReq{CustomerName: "Verdi", ReservationTime: "tonight", NumGuests: 2},
			field: "reservation_time",
		},
		{
			name:  "zero_guests",
			req:   CreateReservationReq{CustomerName: "Verdi", ReservationTime: "2024-05-01 20:00:00"},
			field: "num_guests",
		},
		{
			name: "negative_table_number",
			req: CreateReservationReq{
				CustomerName: "Verdi", ReservationTime: "2024-05-01 20:00:00",
				NumGuests: 2, TableNumber: intPtr(-1),
			},
			field: "table_number",
		},
		{
			name: "unknown_status",
			req: CreateReservationReq{
				CustomerName: "Verdi", ReservationTime: "2024-05-01 20:00:00",
				NumGuests: 2, Status: "waiting",
			},
			field: "status",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.resv.Create(&tc.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestReservationService_GetIncludesOrderGraph(t *testing.T) {
	env := newTestEnv(t)
	resv := env.mustReservation(t)
	order := env.mustOrder(t, resv.ID, "food")
	menu := env.mustMenuItem(t, "Carbonara", 12.50, entity.CategoryMainCourse)

	_, err := env.items.Add(order.ID, &AddItemReq{MenuItemID: menu.ID, Quantity: intPtr(2)})
	require.NoError(t, err)

	got, err := env.resv.Get(resv.ID)
	require.NoError(t, err)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, order.ID, got.Orders[0].ID)
	assert.InDelta(t, 25.00, got.Orders[0].Total, 1e-9)
	require.Len(t, got.Orders[0].Items, 1)
	assert.Equal(t, "Carbonara", got.Orders[0].Items[0].MenuItemName)
	assert.Equal(t, 2, got.Orders[0].Items[0].Quantity)

	// listing carries the same graph
	all, err := env.resv.List("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Orders, 1)
	assert.InDelta(t, 25.00, all[0].Orders[0].Total, 1e-9)
}

func TestReservationService_ListByDate(t *testing.T) {
	env := newTestEnv(t)

	for _, tm := range []string{"2024-05-01 21:00:00", "2024-05-01 19:00:00", "2024-05-02 20:00:00"} {
		_, err := env.resv.Create(&CreateReservationReq{
			CustomerName: "Bianchi", ReservationTime: tm, NumGuests: 2,
		})
		require.NoError(t, err)
	}

	all, err := env.resv.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ordered by reservation time ascending
	assert.Equal(t, "2024-05-01 19:00:00", all[0].ReservationTime)
	assert.Equal(t, "2024-05-01 21:00:00", all[1].ReservationTime)

	day, err := env.resv.List("2024-05-01")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	_, err = env.resv.List("01/05/2024")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestReservationService_Update(t *testing.T) {
	env := newTestEnv(t)
	created := env.mustReservation(t)

	out, err := env.resv.Update(created.ID, &UpdateReservationReq{
		NumGuests:   intPtr(6),
		TableNumber: intPtr(3),
		Status:      strPtr("seated"),
	})
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumGuests)
	require.NotNil(t, out.TableNumber)
	assert.Equal(t, 3, *out.TableNumber)
	assert.Equal(t, entity.ReservationSeated, out.Status)
	// untouched fields survive
	assert.Equal(t, "Rossi", out.CustomerName)

	_, err = env.resv.Update(created.ID, &UpdateReservationReq{NumGuests: intPtr(0)})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "num_guests", ve.Field)

	_, err = env.resv.Update(9999, &UpdateReservationReq{NumGuests: intPtr(2)})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestReservationService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	resv := env.mustReservation(t)
	order := env.mustOrder(t, resv.ID, "food")
	menu := env.mustMenuItem(t, "Carbonara", 12.50, entity.CategoryMainCourse)

	_, err := env.items.Add(order.ID, &AddItemReq{MenuItemID: menu.ID, Quantity: intPtr(2)})
	require.NoError(t, err)

	require.NoError(t, env.resv.Delete(resv.ID))

	var nf *NotFoundError
	_, err = env.resv.Get(resv.ID)
	assert.ErrorAs(t, err, &nf)

	// orders owned by the reservation are gone too
	_, err = env.orders.Get(order.ID)
	assert.ErrorAs(t, err, &nf)

	items, err := env.items.List(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// delete is not idempotent: the second call reports NotFound
	err = env.resv.Delete(resv.ID)
	assert.ErrorAs(t, err, &nf)
}
