// Package backup exports the business tables as a downloadable JSON
// document. "full" covers every table; "quick" covers the operational core
// (services and invoices) for fast day-to-day snapshots.
package backup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"tms_gruas/internal/usecase/interfaces"
)

type Exporter struct {
	ddb *dynamodb.Client
}

var _ interfaces.IBackupExporter = (*Exporter)(nil)

func NewExporter(ddb *dynamodb.Client) *Exporter {
	return &Exporter{ddb: ddb}
}

func tableNames(backupType string) []string {
	quick := []string{
		getenvDefault("SERVICES_TABLE", "services"),
		getenvDefault("INVOICES_TABLE", "invoices"),
	}
	if backupType == interfaces.BackupTypeQuick {
		return quick
	}
	return append(quick,
		getenvDefault("CLIENTS_TABLE", "clients"),
		getenvDefault("CRANES_TABLE", "cranes"),
		getenvDefault("OPERATORS_TABLE", "operators"),
		getenvDefault("PAYMENTS_TABLE", "payments"),
		getenvDefault("CLOSURES_TABLE", "closures"),
		getenvDefault("SETTINGS_TABLE", "settings"),
	)
}

func (e *Exporter) Export(ctx context.Context, backupType string) (interfaces.BackupResult, error) {
	if backupType != interfaces.BackupTypeFull && backupType != interfaces.BackupTypeQuick {
		return interfaces.BackupResult{}, fmt.Errorf("unknown backup type %q", backupType)
	}
	log.Printf("[backup][exporter] export start type=%s", backupType)

	tables := make(map[string][]map[string]any)
	for _, table := range tableNames(backupType) {
		items, err := e.scanTable(ctx, table)
		if err != nil {
			log.Printf("[backup][exporter] scan failed table=%s err=%v", table, err)
			return interfaces.BackupResult{}, err
		}
		tables[table] = items
	}

	doc := map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"type":         backupType,
		"tables":       tables,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return interfaces.BackupResult{}, err
	}

	result := interfaces.BackupResult{
		Success:  true,
		FileName: fmt.Sprintf("tms-backup-%s-%s.json", backupType, time.Now().UTC().Format("2006-01-02T15-04-05")),
		Content:  base64.StdEncoding.EncodeToString(raw),
		Size:     len(raw),
		Type:     "application/json",
	}
	log.Printf("[backup][exporter] export success type=%s file=%s size=%d", backupType, result.FileName, result.Size)
	return result, nil
}

func (e *Exporter) scanTable(ctx context.Context, table string) ([]map[string]any, error) {
	items := make([]map[string]any, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := e.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []map[string]any
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
