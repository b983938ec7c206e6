package interfaces

import "context"

// Backup types accepted by Export.
const (
	BackupTypeFull  = "full"
	BackupTypeQuick = "quick"
)

// BackupResult mirrors the generate-backup function contract.
type BackupResult struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
	Type     string `json:"type"`
}

// IBackupExporter produces a downloadable export of the business tables.
// "full" covers every table; "quick" covers services and invoices only.

type IBackupExporter interface {
	Export(ctx context.Context, backupType string) (BackupResult, error)
}
