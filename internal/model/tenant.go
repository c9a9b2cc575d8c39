package model

// tenants
type Tenant struct {
	ID      ID      `gorm:"column:tenant_id;primaryKey;autoIncrement"`
	Name    string  `gorm:"type:varchar(100);not null"`
	PhoneNo string  `gorm:"type:varchar(20);not null"`
	Details *string `gorm:"type:text"`
	Active  bool    `gorm:"column:is_active;not null;default:true;index"`
}

func (t Tenant) IsActive() bool { return t.Active }

type TenantCreate struct {
	Name    string
	PhoneNo string
	Details *string
}

type TenantUpdate TenantCreate
