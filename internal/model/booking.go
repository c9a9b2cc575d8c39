package model

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusActive     BookingStatus = "active"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusTerminated BookingStatus = "terminated"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusActive, BookingStatusCompleted, BookingStatusTerminated:
		return true
	}
	return false
}

// Closed сообщает, что бронирование завершено и комната больше не занята им.
func (s BookingStatus) Closed() bool {
	return s == BookingStatusCompleted || s == BookingStatusTerminated
}

// bookings
type Booking struct {
	ID          ID              `gorm:"column:booking_id;primaryKey;autoIncrement"`
	RoomID      ID              `gorm:"column:room_id;not null;index"`
	TenantID    ID              `gorm:"column:tenant_id;not null;index"`
	PropertyID  ID              `gorm:"column:property_id;not null;index"`
	MoveInDate  datatypes.Date  `gorm:"type:date;not null"`
	MoveOutDate *datatypes.Date `gorm:"type:date"`
	Status      BookingStatus   `gorm:"type:varchar(20);not null;index;check:check_booking_status,status IN ('active','completed','terminated')"`
	Active      bool            `gorm:"column:is_active;not null;default:true;index"`

	Room     *Room     `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Tenant   *Tenant   `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (b Booking) IsActive() bool { return b.Active }

// BookingCreate — данные для создания бронирования.
// MoveInDate по умолчанию — дата создания.
type BookingCreate struct {
	RoomID      ID
	TenantID    ID
	PropertyID  ID
	MoveInDate  *time.Time
	MoveOutDate *time.Time
	Status      BookingStatus
}

// BookingUpdate — полный набор изменяемых полей. MoveOutDate == nil
// очищает дату выезда.
type BookingUpdate struct {
	RoomID      ID
	TenantID    ID
	PropertyID  ID
	MoveOutDate *time.Time
	Status      BookingStatus
}
