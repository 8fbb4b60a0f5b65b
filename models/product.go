package models

import "time"

// Product is immutable reference data: there are no write endpoints,
// the catalog is synced at startup (see seed.go).
type Product struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Manufacturer string    `gorm:"not null" json:"manufacturer"`
	Price        float64   `gorm:"not null" json:"price"`
	Description  string    `gorm:"not null" json:"description"`
	ReleaseDate  time.Time `gorm:"not null" json:"release_date"`
}
