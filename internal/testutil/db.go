// Package testutil поднимает sqlite-базу в памяти с полной схемой и
// заполняет её тестовыми данными.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/config"
	"github.com/Leganyst/rentlok/internal/db"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/repository"
)

// NewDB открывает sqlite :memory: (на одном соединении, иначе каждое новое
// соединение пула видит пустую базу) и выполняет миграции.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.NewGormDB(&config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, "silent")
	require.NoError(t, err, "open sqlite")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.AutoMigrate(gdb), "auto migrate")
	return gdb
}

// Seed создаёт записи напрямую через репозитории, минуя проверки ядра.
type Seed struct {
	t     *testing.T
	repos *repository.Repositories
}

func NewSeed(t *testing.T, gdb *gorm.DB) *Seed {
	return &Seed{t: t, repos: repository.NewGormRepositories(gdb)}
}

func (s *Seed) Property(name string, rooms int) *model.Property {
	s.t.Helper()
	p := &model.Property{Name: name, Address: name + " street", NoOfRooms: rooms, OwnerID: model.DefaultOwnerID}
	require.NoError(s.t, s.repos.Properties.Create(context.Background(), p))
	return p
}

func (s *Seed) Room(propertyID model.ID, no string, status model.OperationalStatus) *model.Room {
	s.t.Helper()
	r := &model.Room{RoomNo: no, FloorNo: 1, PropertyID: propertyID, OperationalStatus: status, RentPerMonth: 500}
	require.NoError(s.t, s.repos.Rooms.Create(context.Background(), r))
	return r
}

func (s *Seed) Tenant(name string) *model.Tenant {
	s.t.Helper()
	tn := &model.Tenant{Name: name, PhoneNo: "+10000000000"}
	require.NoError(s.t, s.repos.Tenants.Create(context.Background(), tn))
	return tn
}

func (s *Seed) Booking(room *model.Room, tenantID model.ID, status model.BookingStatus) *model.Booking {
	s.t.Helper()
	b := &model.Booking{
		RoomID:     room.ID,
		TenantID:   tenantID,
		PropertyID: room.PropertyID,
		MoveInDate: model.DateOf(time.Now()),
		Status:     status,
	}
	require.NoError(s.t, s.repos.Bookings.Create(context.Background(), b))
	return b
}

func (s *Seed) Payment(bookingID model.ID, amount float64) *model.Payment {
	s.t.Helper()
	p := &model.Payment{
		BookingID:     bookingID,
		PaymentType:   "rent",
		PaymentStatus: "paid",
		Amount:        amount,
		PaymentDate:   model.DateOf(time.Now()),
	}
	require.NoError(s.t, s.repos.Payments.Create(context.Background(), p))
	return p
}

// Deactivate гасит запись напрямую, без каскадов.
func Deactivate[T model.Entity](t *testing.T, gdb *gorm.DB, entity *T) {
	t.Helper()
	require.NoError(t, gdb.Model(entity).Update("is_active", false).Error)
}
