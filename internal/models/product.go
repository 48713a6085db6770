package models

import "time"

// ProductCategories are the categories a product can be listed under. The
// form and the bulk importer both reject anything outside this list.
var ProductCategories = []string{
	"electronics",
	"clothing",
	"home_decor",
	"art_collectibles",
	"jewelry",
	"toys_games",
	"books",
	"other",
}

// ValidCategory reports whether category is one of ProductCategories.
func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Product is a seller's listing. Images holds the ordered upload URLs;
// ImageBinaries maps each URL to its base64 payload so clients can render a
// preview without a second fetch. Deleting the seller deletes the listing.
type Product struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	SellerID          uint              `json:"sellerId" gorm:"index;not null"`
	Seller            User              `json:"-" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Title             string            `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=5"`
	Description       string            `json:"description" gorm:"type:text;not null" validate:"required,min=20"`
	Price             float64           `json:"price" gorm:"not null;check:price >= 0" validate:"gte=0"`
	QuantityAvailable int               `json:"quantityAvailable" gorm:"not null;default:0;check:quantity_available >= 0" validate:"gte=0"`
	Images            []string          `json:"images" gorm:"serializer:json"`
	ImageBinaries     map[string]string `json:"imageBinaries" gorm:"serializer:json"`
	Category          string            `json:"category" gorm:"type:varchar(50);not null" validate:"required"`
	ColorOptions      []string          `json:"colorOptions,omitempty" gorm:"serializer:json"`
	VariantOptions    []string          `json:"variantOptions,omitempty" gorm:"serializer:json"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
