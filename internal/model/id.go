package model

import "strconv"

// ID — суррогатный идентификатор записи. Нулевое значение означает
// «идентификатор не задан» и никогда не выдаётся хранилищем.
type ID uint64

func (id ID) IsZero() bool { return id == 0 }

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// DefaultOwnerID — владелец объекта, если он не указан при создании.
const DefaultOwnerID ID = 1

// Kind называет тип сущности в ошибках, метриках и логах.
type Kind string

const (
	KindProperty Kind = "property"
	KindRoom     Kind = "room"
	KindTenant   Kind = "tenant"
	KindBooking  Kind = "booking"
	KindPayment  Kind = "payment"
	KindRequest  Kind = "request"
)

// Entity — общий контракт всех записей с флагом активности.
type Entity interface {
	Property | Room | Tenant | Booking | Payment | Request
}

// SoftDeletable реализуют все сущности: запись не удаляется физически,
// а помечается неактивной.
type SoftDeletable interface {
	IsActive() bool
}
