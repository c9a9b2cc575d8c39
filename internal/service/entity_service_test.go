package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

func TestPropertyRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Properties.Create(ctx, model.PropertyCreate{Name: "Oak", Address: "2 Elm", NoOfRooms: 4})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := f.svc.Properties.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Oak", got.Name)
	assert.Equal(t, "2 Elm", got.Address)
	assert.Equal(t, 4, got.NoOfRooms)
	assert.Equal(t, model.DefaultOwnerID, got.OwnerID)
	assert.True(t, got.Active)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)

	owner := model.ID(7)
	withOwner, err := f.svc.Properties.Create(ctx, model.PropertyCreate{Name: "Pine", Address: "3 Elm", NoOfRooms: 1, OwnerID: &owner})
	require.NoError(t, err)
	assert.Equal(t, owner, withOwner.OwnerID)
}

func TestPropertyUpdate_FullReplaceKeepsOwnerAndCreatedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.property(t, 3)
	got, err := f.svc.Properties.Update(ctx, p.ID, model.PropertyUpdate{Name: "Renamed", Address: "9 Oak", NoOfRooms: 5})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 5, got.NoOfRooms)

	stored, err := f.svc.Properties.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "9 Oak", stored.Address)
	assert.Equal(t, p.OwnerID, stored.OwnerID)
	assert.WithinDuration(t, p.CreatedAt, stored.CreatedAt, time.Second)
}

func TestRoomCreateAndUpdate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.property(t, 1)
	closed := f.property(t, 1)
	_, err := f.svc.Properties.Deactivate(ctx, closed.ID)
	require.NoError(t, err)

	_, err = f.svc.Rooms.Create(ctx, model.RoomCreate{RoomNo: "1", PropertyID: p.ID, OperationalStatus: "flooded"})
	assert.ErrorIs(t, err, apperr.ErrInvalidEnumValue)

	_, err = f.svc.Rooms.Create(ctx, model.RoomCreate{RoomNo: "1", PropertyID: closed.ID, OperationalStatus: model.RoomVacant})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotActive)

	_, err = f.svc.Rooms.Create(ctx, model.RoomCreate{RoomNo: "1", PropertyID: 77, OperationalStatus: model.RoomVacant})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)
	assert.Zero(t, f.count(t, f.repos.Rooms))

	suite := "suite"
	room := f.room(t, p.ID, "101")
	other := f.property(t, 2)
	moved, err := f.svc.Rooms.Update(ctx, room.ID, model.RoomUpdate{
		RoomNo: "201", FloorNo: 2, PropertyID: other.ID, OperationalStatus: model.RoomVacant, RoomType: &suite, RentPerMonth: 900,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.PropertyID)
	require.NotNil(t, moved.RoomType)
	assert.Equal(t, "suite", *moved.RoomType)

	_, err = f.svc.Rooms.Update(ctx, room.ID, model.RoomUpdate{RoomNo: "201", PropertyID: other.ID, OperationalStatus: "broken"})
	assert.ErrorIs(t, err, apperr.ErrInvalidEnumValue)
	_, err = f.svc.Rooms.Update(ctx, room.ID, model.RoomUpdate{RoomNo: "201", PropertyID: closed.ID, OperationalStatus: model.RoomVacant})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotActive)

	stored, err := f.svc.Rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, stored.PropertyID)
	assert.Equal(t, 900.0, stored.RentPerMonth)
}

func TestRoomAndTenantDeactivate_DoNotCascadeToBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.property(t, 1)
	room := f.room(t, p.ID, "101")
	tn := f.tenant(t, "ann")
	b := f.booking(t, room, tn.ID)

	res, err := f.svc.Rooms.Deactivate(ctx, room.ID)
	require.NoError(t, err)
	assert.Zero(t, res.AffectedCount)
	_, err = f.svc.Tenants.Deactivate(ctx, tn.ID)
	require.NoError(t, err)

	got, err := f.svc.Bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.Equal(t, model.BookingStatusActive, got.Status)
}

func TestList_ActiveOnlyFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	keep := f.tenant(t, "keep")
	drop := f.tenant(t, "drop")
	_, err := f.svc.Tenants.Deactivate(ctx, drop.ID)
	require.NoError(t, err)

	active, err := f.svc.Tenants.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	all, err := f.svc.Tenants.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRequests_NewestFirstAndPropertyChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.property(t, 1)
	day := func(d int) *time.Time {
		v := time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC)
		return &v
	}
	for _, d := range []int{5, 20, 11} {
		_, err := f.svc.Requests.Create(ctx, model.RequestCreate{
			PropertyID: p.ID, TenantName: "lead", PhoneNo: "1", RequestDate: day(d),
		})
		require.NoError(t, err)
	}

	list, err := f.svc.Requests.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 20, time.Time(list[0].RequestDate).Day())
	assert.Equal(t, 11, time.Time(list[1].RequestDate).Day())
	assert.Equal(t, 5, time.Time(list[2].RequestDate).Day())

	// смена объекта на неактивный отклоняется, без смены разрешена
	closed := f.property(t, 1)
	_, err = f.svc.Properties.Deactivate(ctx, closed.ID)
	require.NoError(t, err)
	req := list[0]
	_, err = f.svc.Requests.Update(ctx, req.ID, model.RequestUpdate{PropertyID: closed.ID, TenantName: "lead", PhoneNo: "2"})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotActive)

	_, err = f.svc.Properties.Deactivate(ctx, p.ID)
	require.NoError(t, err)
	details := "call after 6pm"
	updated, err := f.svc.Requests.Update(ctx, req.ID, model.RequestUpdate{PropertyID: p.ID, TenantName: "lead", PhoneNo: "2", Details: &details})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.PhoneNo)

	_, err = f.svc.Requests.Create(ctx, model.RequestCreate{PropertyID: p.ID, TenantName: "late", PhoneNo: "3"})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotActive)
}

func TestPaymentUpdate_RequiresActiveBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.property(t, 2)
	b1 := f.booking(t, f.room(t, p.ID, "101"), f.tenant(t, "ann").ID)
	b2 := f.booking(t, f.room(t, p.ID, "102"), f.tenant(t, "bob").ID)

	pay, err := f.svc.Payments.Create(ctx, model.PaymentCreate{BookingID: b1.ID, PaymentType: "deposit", PaymentStatus: "pending", Amount: 50})
	require.NoError(t, err)
	assert.True(t, time.Time(pay.PaymentDate).Equal(time.Time(model.DateOf(time.Now()))))

	moved, err := f.svc.Payments.Update(ctx, pay.ID, model.PaymentUpdate{BookingID: b2.ID, PaymentType: "deposit", PaymentStatus: "paid", Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, b2.ID, moved.BookingID)
	assert.Equal(t, "paid", moved.PaymentStatus)

	_, err = f.svc.Bookings.Deactivate(ctx, b2.ID)
	require.NoError(t, err)
	_, err = f.svc.Payments.Update(ctx, pay.ID, model.PaymentUpdate{BookingID: b2.ID, PaymentType: "deposit", PaymentStatus: "refunded", Amount: 50})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotActive)
}
