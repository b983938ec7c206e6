package repository

import (
	"context"
	"strconv"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

// Folio counters live in the settings table as one item per sequence, keyed
// "folio-<sequence>", bumped with an atomic ADD.
const folioKeyPrefix = "folio-"

type settingsItem struct {
	ID              string `dynamodbav:"id"`
	CompanyName     string `dynamodbav:"company_name,omitempty"`
	CompanyRUT      string `dynamodbav:"company_rut,omitempty"`
	EmailFrom       string `dynamodbav:"email_from,omitempty"`
	LogoDataURL     string `dynamodbav:"logo_data_url,omitempty"`
	MaxPhotosPerSet int    `dynamodbav:"max_photos_per_set,omitempty"`
	UpdatedAt       string `dynamodbav:"updated_at,omitempty"`
}

// SettingsDynamoRepository persists the singleton Settings row and the folio
// counters in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.SettingsID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if len(out.Item) == 0 {
		return entities.Settings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}

	// The settings row is a singleton; saves are full replaces.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

// NextFolio atomically increments and returns the named sequence. ADD
// creates the counter item on first use.
func (r *SettingsDynamoRepository) NextFolio(ctx context.Context, sequence string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: folioKeyPrefix + sequence},
		},
		UpdateExpression: aws.String("ADD #counter :one"),
		ExpressionAttributeNames: map[string]string{
			"#counter": "counter",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["counter"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(raw.Value, 10, 64)
}

func toSettingsItem(s entities.Settings) settingsItem {
	return settingsItem{
		ID:              entities.SettingsID,
		CompanyName:     s.CompanyName,
		CompanyRUT:      s.CompanyRUT,
		EmailFrom:       s.EmailFrom,
		LogoDataURL:     s.LogoDataURL,
		MaxPhotosPerSet: s.MaxPhotosPerSet,
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Settings{
		ID:              it.ID,
		CompanyName:     it.CompanyName,
		CompanyRUT:      it.CompanyRUT,
		EmailFrom:       it.EmailFrom,
		LogoDataURL:     it.LogoDataURL,
		MaxPhotosPerSet: it.MaxPhotosPerSet,
		UpdatedAt:       updatedAt,
	}
}
