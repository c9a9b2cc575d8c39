// Package occupancy выводит эксплуатационный статус комнаты из событий
// жизненного цикла бронирования. Статус damaged выставляется только
// прямым обновлением комнаты и автоматически не снимается.
package occupancy

import (
	"context"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

type Event string

const (
	// Бронирование создано (с любым статусом).
	BookingCreated Event = "booking_created"
	// Статус бронирования стал completed или terminated.
	BookingClosed Event = "booking_closed"
	// Бронирование деактивировано.
	BookingDeactivated Event = "booking_deactivated"
)

// Next возвращает статус комнаты после события и признак того, что
// переход допустим. Для недопустимого перехода возвращается текущий статус.
func Next(current model.OperationalStatus, ev Event) (model.OperationalStatus, bool) {
	switch ev {
	case BookingCreated:
		if current == model.RoomVacant {
			return model.RoomOccupied, true
		}
		return current, false
	case BookingClosed, BookingDeactivated:
		if current == model.RoomOccupied {
			return model.RoomVacant, true
		}
		// vacant остаётся vacant, damaged не трогаем.
		return current, current == model.RoomVacant
	default:
		return current, false
	}
}

// sources перечисляет статусы, из которых событие переводит комнату в новый.
func sources(ev Event) ([]model.OperationalStatus, model.OperationalStatus) {
	var (
		from []model.OperationalStatus
		to   model.OperationalStatus
	)
	for _, s := range []model.OperationalStatus{model.RoomVacant, model.RoomOccupied, model.RoomDamaged} {
		next, ok := Next(s, ev)
		if ok && next != s {
			from = append(from, s)
			to = next
		}
	}
	return from, to
}

// RoomStatusWriter — условная запись статуса комнаты в текущей транзакции.
type RoomStatusWriter interface {
	CompareAndSetStatus(ctx context.Context, id model.ID, from []model.OperationalStatus, to model.OperationalStatus) (bool, error)
}

// Occupy занимает комнату под новое бронирование. Комната должна быть
// свободна: занятая или повреждённая комната даёт RoomUnavailable, так
// что на одну комнату приходится не больше одного бронирования.
func Occupy(ctx context.Context, rooms RoomStatusWriter, roomID model.ID) error {
	from, to := sources(BookingCreated)
	ok, err := rooms.CompareAndSetStatus(ctx, roomID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.RoomUnavailable(roomID)
	}
	return nil
}

// Vacate освобождает комнату при закрытии или деактивации бронирования.
// Свободная, повреждённая или отсутствующая комната не меняется.
func Vacate(ctx context.Context, rooms RoomStatusWriter, roomID model.ID, ev Event) error {
	from, to := sources(ev)
	_, err := rooms.CompareAndSetStatus(ctx, roomID, from, to)
	return err
}
