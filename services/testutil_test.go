package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/AlexMaina05/Comande/configs"
	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory store per test, migrated to the
// current schema. The named DSN keeps the database alive across the pooled
// connections of a single test without leaking into other tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type testEnv struct {
	db      *gorm.DB
	menus   *MenuService
	resv    *ReservationService
	orders  *OrderService
	items   *OrderItemService
	tickets *TicketService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepository(db)
	resvRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return &testEnv{
		db:      db,
		menus:   NewMenuService(db, menuRepo),
		resv:    NewReservationService(db, resvRepo),
		orders:  NewOrderService(db, orderRepo),
		items:   NewOrderItemService(db, orderRepo, menuRepo),
		tickets: NewTicketService(orderRepo, resvRepo, "http://localhost:8000"),
	}
}

func (e *testEnv) mustReservation(t *testing.T) *ReservationOut {
	t.Helper()
	out, err := e.resv.Create(&CreateReservationReq{
		CustomerName:    "Rossi",
		PhoneNumber:     "333 1234567",
		ReservationTime: "2024-05-01 20:00:00",
		NumGuests:       4,
	})
	require.NoError(t, err)
	return out
}

func (e *testEnv) mustOrder(t *testing.T, reservationID uint, orderType string) *OrderOut {
	t.Helper()
	out, err := e.orders.Create(reservationID, &CreateOrderReq{OrderType: orderType})
	require.NoError(t, err)
	return out
}

func (e *testEnv) mustMenuItem(t *testing.T, name string, price float64, category entity.Category) *MenuItemOut {
	t.Helper()
	out, err := e.menus.Create(&MenuItemIn{Name: name, Price: price, Category: string(category)})
	require.NoError(t, err)
	return out
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
