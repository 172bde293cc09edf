// Package model holds the GORM persistence models. Domain aggregates never
// leave the repositories as these types; every repository maps in both
// directions.
package model

import (
	"time"

	"github.com/google/uuid"
)

type Owner struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"not null;size:255"`
	Street     string    `gorm:"not null;size:255"`
	City       string    `gorm:"not null;size:128"`
	PostalCode string    `gorm:"not null;size:32"`
	Country    string    `gorm:"not null;size:128"`
	BirthDate  time.Time `gorm:"not null"`
	PhotoURL   string    `gorm:"size:1024"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time

	Properties []Property `gorm:"foreignKey:OwnerID"`
}

type Property struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Name          string    `gorm:"not null;size:255"`
	Street        string    `gorm:"not null;size:255"`
	City          string    `gorm:"not null;size:128"`
	PostalCode    string    `gorm:"not null;size:32"`
	Country       string    `gorm:"not null;size:128"`
	PriceAmount   int64     `gorm:"not null"`
	PriceCurrency string    `gorm:"type:varchar(3);not null;default:'USD'"`
	CodeInternal  string    `gorm:"uniqueIndex;not null;size:64"`
	Year          int       `gorm:"not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Owner  *Owner          `gorm:"foreignKey:OwnerID"`
	Images []PropertyImage `gorm:"foreignKey:PropertyID"`
}

type PropertyImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null"`
	FileName   string    `gorm:"not null;size:1024"`
	Enabled    bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

type PropertyTrace struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	PropertyID    uuid.UUID `gorm:"type:uuid;index;not null"`
	DateSale      time.Time `gorm:"not null;index"`
	ValueAmount   int64     `gorm:"not null"`
	ValueCurrency string    `gorm:"type:varchar(3);not null;default:'USD'"`
	TaxPercentage float64   `gorm:"not null"`
	TaxAmount     int64     `gorm:"not null"`
	CreatedAt     time.Time
}
