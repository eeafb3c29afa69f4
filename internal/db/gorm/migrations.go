// Package gorm provides GORM-based database operations for stockroom.
package gorm

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// runMigrations runs all database migrations using gormigrate.
// Each catalog table gets its own migration so resources can be added
// independently.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "001_sneakers",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Sneaker{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("sneakers")
			},
		},
		{
			ID: "002_energy_drinks",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&EnergyDrink{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("energy_drinks")
			},
		},
		{
			ID: "003_vapes",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Vape{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("vapes")
			},
		},
	})

	return m.Migrate()
}
