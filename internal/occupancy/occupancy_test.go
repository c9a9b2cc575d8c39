package occupancy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name    string
		current model.OperationalStatus
		ev      Event
		want    model.OperationalStatus
		ok      bool
	}{
		{"create on vacant", model.RoomVacant, BookingCreated, model.RoomOccupied, true},
		{"create on occupied", model.RoomOccupied, BookingCreated, model.RoomOccupied, false},
		{"create on damaged", model.RoomDamaged, BookingCreated, model.RoomDamaged, false},
		{"close occupied", model.RoomOccupied, BookingClosed, model.RoomVacant, true},
		{"close vacant", model.RoomVacant, BookingClosed, model.RoomVacant, true},
		{"close damaged", model.RoomDamaged, BookingClosed, model.RoomDamaged, false},
		{"deactivate occupied", model.RoomOccupied, BookingDeactivated, model.RoomVacant, true},
		{"deactivate damaged", model.RoomDamaged, BookingDeactivated, model.RoomDamaged, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Next(tc.current, tc.ev)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

// memRooms — условная запись статуса поверх map.
type memRooms struct {
	status map[model.ID]model.OperationalStatus
	err    error
}

func (m *memRooms) CompareAndSetStatus(_ context.Context, id model.ID, from []model.OperationalStatus, to model.OperationalStatus) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	cur, ok := m.status[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if cur == f {
			m.status[id] = to
			return true, nil
		}
	}
	return false, nil
}

func TestOccupy(t *testing.T) {
	rooms := &memRooms{status: map[model.ID]model.OperationalStatus{
		1: model.RoomVacant,
		2: model.RoomOccupied,
		3: model.RoomDamaged,
	}}
	ctx := context.Background()

	require.NoError(t, Occupy(ctx, rooms, 1))
	assert.Equal(t, model.RoomOccupied, rooms.status[1])

	assert.ErrorIs(t, Occupy(ctx, rooms, 2), apperr.ErrRoomUnavailable)
	assert.ErrorIs(t, Occupy(ctx, rooms, 3), apperr.ErrRoomUnavailable)
	assert.Equal(t, model.RoomDamaged, rooms.status[3])
}

func TestVacate(t *testing.T) {
	rooms := &memRooms{status: map[model.ID]model.OperationalStatus{
		1: model.RoomOccupied,
		2: model.RoomDamaged,
	}}
	ctx := context.Background()

	require.NoError(t, Vacate(ctx, rooms, 1, BookingClosed))
	assert.Equal(t, model.RoomVacant, rooms.status[1])

	require.NoError(t, Vacate(ctx, rooms, 2, BookingDeactivated))
	assert.Equal(t, model.RoomDamaged, rooms.status[2])

	// отсутствующая комната — не ошибка
	require.NoError(t, Vacate(ctx, rooms, 99, BookingClosed))
}

func TestVacate_StoreError(t *testing.T) {
	boom := errors.New("db down")
	err := Vacate(context.Background(), &memRooms{err: boom}, 1, BookingClosed)
	assert.Same(t, boom, err)
}
