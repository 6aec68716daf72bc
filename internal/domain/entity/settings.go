package entity

import "time"

// StoreSettings holds the single store's display data and the PIX merchant
// fields used when encoding charge payloads. Exactly one row exists.
type StoreSettings struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	StoreName       string    `gorm:"size:255;not null" json:"store_name"`
	Address         *string   `gorm:"type:text" json:"address,omitempty"`
	Phone           *string   `gorm:"size:50" json:"phone,omitempty"`
	CNPJ            *string   `gorm:"size:18" json:"cnpj,omitempty"`
	PixKey          string    `gorm:"size:255" json:"pix_key"`
	PixMerchantName string    `gorm:"size:25" json:"pix_merchant_name"`
	PixMerchantCity string    `gorm:"size:15" json:"pix_merchant_city"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
