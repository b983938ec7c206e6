package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tms_gruas/internal/usecase/interfaces"
)

var ErrInvalidBackupType = errors.New("invalid backup type")

// IBackupUseCase produces downloadable exports of the business tables.

type IBackupUseCase interface {
	Generate(ctx context.Context, backupType string) (interfaces.BackupResult, error)
}

type BackupUseCase struct {
	exporter interfaces.IBackupExporter
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(exporter interfaces.IBackupExporter) *BackupUseCase {
	return &BackupUseCase{exporter: exporter}
}

func (u *BackupUseCase) Generate(ctx context.Context, backupType string) (interfaces.BackupResult, error) {
	backupType = strings.ToLower(strings.TrimSpace(backupType))
	if backupType == "" {
		backupType = interfaces.BackupTypeFull
	}
	if backupType != interfaces.BackupTypeFull && backupType != interfaces.BackupTypeQuick {
		return interfaces.BackupResult{}, ErrInvalidBackupType
	}

	result, err := u.exporter.Export(ctx, backupType)
	if err != nil {
		log.Printf("[backup][usecase] export failed type=%s err=%v", backupType, err)
		return interfaces.BackupResult{}, err
	}
	log.Printf("[backup][usecase] export done type=%s file=%s size=%d", backupType, result.FileName, result.Size)
	return result, nil
}
