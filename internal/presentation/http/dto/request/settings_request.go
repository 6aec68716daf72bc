package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	StoreName       *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	CNPJ            *string `json:"cnpj" binding:"omitempty,max=18"`
	PixKey          *string `json:"pix_key" binding:"omitempty,max=255"`
	PixMerchantName *string `json:"pix_merchant_name" binding:"omitempty,max=25"`
	PixMerchantCity *string `json:"pix_merchant_city" binding:"omitempty,max=15"`
}
