package model

// Эксплуатационный статус комнаты.
type OperationalStatus string

const (
	RoomVacant   OperationalStatus = "vacant"
	RoomOccupied OperationalStatus = "occupied"
	RoomDamaged  OperationalStatus = "damaged"
)

func (s OperationalStatus) Valid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomDamaged:
		return true
	}
	return false
}

// rooms
type Room struct {
	ID                ID                `gorm:"column:room_id;primaryKey;autoIncrement"`
	RoomNo            string            `gorm:"type:varchar(20);not null"`
	FloorNo           int               `gorm:"not null"`
	PropertyID        ID                `gorm:"column:property_id;not null;index"`
	OperationalStatus OperationalStatus `gorm:"type:varchar(20);not null;check:check_operational_status,operational_status IN ('vacant','occupied','damaged')"`
	RoomType          *string           `gorm:"type:varchar(50)"`
	RentPerMonth      float64           `gorm:"not null"`
	Active            bool              `gorm:"column:is_active;not null;default:true;index"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (r Room) IsActive() bool { return r.Active }

// RoomCreate — данные для создания комнаты.
type RoomCreate struct {
	RoomNo            string
	FloorNo           int
	PropertyID        ID
	OperationalStatus OperationalStatus
	RoomType          *string
	RentPerMonth      float64
}

// RoomUpdate — полный набор изменяемых полей комнаты, включая владельца.
type RoomUpdate RoomCreate
