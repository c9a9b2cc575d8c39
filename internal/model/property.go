package model

import "time"

// properties
type Property struct {
	ID        ID        `gorm:"column:property_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:property_name;type:varchar(100);not null"`
	Address   string    `gorm:"type:text;not null"`
	NoOfRooms int       `gorm:"column:no_of_rooms;not null"`
	OwnerID   ID        `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	Active    bool      `gorm:"column:is_active;not null;default:true;index"`
}

func (p Property) IsActive() bool { return p.Active }

// PropertyCreate — данные для создания объекта. OwnerID необязателен.
type PropertyCreate struct {
	Name      string
	Address   string
	NoOfRooms int
	OwnerID   *ID
}

// PropertyUpdate — полный набор изменяемых полей.
type PropertyUpdate struct {
	Name      string
	Address   string
	NoOfRooms int
}
