package repository

import (
	"context"

	"github.com/colorikids/retail-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings data access.
// The store has exactly one settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
