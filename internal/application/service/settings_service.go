package service

import (
	"context"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/pkg/apperror"
)

// SettingsService manages the single store settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the store settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Store settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	StoreName       *string
	Address         *string
	Phone           *string
	CNPJ            *string
	PixKey          *string
	PixMerchantName *string
	PixMerchantCity *string
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		if *input.StoreName == "" {
			return nil, apperror.NewBadRequestError("Store name cannot be empty")
		}
		settings.StoreName = *input.StoreName
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.CNPJ != nil {
		settings.CNPJ = input.CNPJ
	}
	if input.PixKey != nil {
		settings.PixKey = *input.PixKey
	}
	if input.PixMerchantName != nil {
		settings.PixMerchantName = *input.PixMerchantName
	}
	if input.PixMerchantCity != nil {
		settings.PixMerchantCity = *input.PixMerchantCity
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
