package interfaces

import (
	"context"

	"tms_gruas/internal/domain/entities"
)

// ISettingsRepository abstracts the singleton settings row and the folio
// counters (atomic ADD on a counters item per sequence name).

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) (entities.Settings, error)
	NextFolio(ctx context.Context, sequence string) (int64, error)
}
