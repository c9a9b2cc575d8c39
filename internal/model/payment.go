package model

import (
	"time"

	"gorm.io/datatypes"
)

// payments
type Payment struct {
	ID            ID             `gorm:"column:payment_id;primaryKey;autoIncrement"`
	BookingID     ID             `gorm:"column:booking_id;not null;index"`
	PaymentType   string         `gorm:"type:varchar(20);not null"`
	PaymentStatus string         `gorm:"type:varchar(20);not null"`
	Amount        float64        `gorm:"not null"`
	PaymentDate   datatypes.Date `gorm:"type:date;not null"`
	Active        bool           `gorm:"column:is_active;not null;default:true;index"`

	Booking *Booking `gorm:"foreignKey:BookingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (p Payment) IsActive() bool { return p.Active }

type PaymentCreate struct {
	BookingID     ID
	PaymentType   string
	PaymentStatus string
	Amount        float64
	PaymentDate   *time.Time
}

type PaymentUpdate struct {
	BookingID     ID
	PaymentType   string
	PaymentStatus string
	Amount        float64
}
