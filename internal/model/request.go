package model

import (
	"time"

	"gorm.io/datatypes"
)

// requests — заявки потенциальных арендаторов по объекту.
type Request struct {
	ID          ID             `gorm:"column:request_id;primaryKey;autoIncrement"`
	PropertyID  ID             `gorm:"column:property_id;not null;index"`
	TenantName  string         `gorm:"type:varchar(100);not null"`
	PhoneNo     string         `gorm:"type:varchar(20);not null"`
	Details     *string        `gorm:"type:text"`
	RequestDate datatypes.Date `gorm:"type:date;not null;index"`
	Active      bool           `gorm:"column:is_active;not null;default:true;index"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (r Request) IsActive() bool { return r.Active }

type RequestCreate struct {
	PropertyID  ID
	TenantName  string
	PhoneNo     string
	Details     *string
	RequestDate *time.Time
}

type RequestUpdate struct {
	PropertyID ID
	TenantName string
	PhoneNo    string
	Details    *string
}
