package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the persisted brand row. Name is the natural key: product writes
// upsert brands by name, so duplicates never accumulate.
type Brand struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	YearFounded *int      `json:"year_founded"`
	Street      *string   `gorm:"type:text" json:"street"`
	City        *string   `gorm:"type:text" json:"city"`
	State       *string   `gorm:"type:text" json:"state"`
	PostalCode  *string   `gorm:"type:text" json:"postal_code"`
	Country     *string   `gorm:"type:text" json:"country"`

	Products []Product `gorm:"foreignKey:BrandID;references:ID" json:"products,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Brand) TableName() string { return "brands" }

// Product is the persisted catalog row. ProductID is the external
// identifier (client-supplied or generated on create) and is distinct from
// the storage key ID. Deletes are hard deletes.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string    `gorm:"type:text;not null;uniqueIndex" json:"product_id"`

	ProductName string    `gorm:"type:text;not null" json:"product_name"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index" json:"brand_id"`
	Brand       *Brand    `gorm:"foreignKey:BrandID;references:ID" json:"brand,omitempty"`

	CategoryName    *string    `gorm:"type:text" json:"category_name"`
	DescriptionText *string    `gorm:"type:text" json:"description_text"`
	Price           *float64   `json:"price"`
	Currency        *string    `gorm:"type:text" json:"currency"`
	Processor       *string    `gorm:"type:text" json:"processor"`
	Memory          *string    `gorm:"type:text" json:"memory"`
	ReleaseDate     *time.Time `gorm:"index" json:"release_date"`
	AverageRating   *float64   `json:"average_rating"`
	RatingCount     *int       `json:"rating_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "products" }
