package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей арендного ядра.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Property{},
		&Room{},
		&Tenant{},
		&Booking{},
		&Payment{},
		&Request{},
	)
}
