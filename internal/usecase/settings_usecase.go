package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var ErrInvalidSettingsInput = errors.New("invalid settings input")

// ISettingsUseCase reads and writes the singleton company settings row.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns stored settings, falling back to defaults for unset fields so
// callers never see a zero photo limit.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if s.MaxPhotosPerSet <= 0 {
		s.MaxPhotosPerSet = entities.DefaultMaxPhotosPerSet
	}
	return s, nil
}

func (u *SettingsUseCase) Save(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	if s.CompanyRUT != "" && !entities.ValidRUT(s.CompanyRUT) {
		return entities.Settings{}, ErrInvalidSettingsInput
	}
	if s.MaxPhotosPerSet < 0 {
		return entities.Settings{}, ErrInvalidSettingsInput
	}
	if s.MaxPhotosPerSet == 0 {
		s.MaxPhotosPerSet = entities.DefaultMaxPhotosPerSet
	}
	if s.CompanyRUT != "" {
		s.CompanyRUT = entities.NormalizeRUT(s.CompanyRUT)
	}
	s.ID = entities.SettingsID
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, s)
}
