package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClosuresTableName = "closures"

type closureItem struct {
	ID         string   `dynamodbav:"id"`
	Folio      int64    `dynamodbav:"folio"`
	ClientID   string   `dynamodbav:"client_id"`
	ServiceIDs []string `dynamodbav:"service_ids"`
	DateFrom   string   `dynamodbav:"date_from"`
	DateTo     string   `dynamodbav:"date_to"`
	Total      string   `dynamodbav:"total"`
	Status     string   `dynamodbav:"status"`
	CreatedAt  string   `dynamodbav:"created_at"`
	UpdatedAt  string   `dynamodbav:"updated_at"`
}

// ClosureDynamoRepository persists ServiceClosure entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClosureDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClosureRepository = (*ClosureDynamoRepository)(nil)

func NewClosureDynamoRepository(ddb *dynamodb.Client) *ClosureDynamoRepository {
	return &ClosureDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLOSURES_TABLE", defaultClosuresTableName),
	}
}

func (r *ClosureDynamoRepository) Create(ctx context.Context, c entities.ServiceClosure) (entities.ServiceClosure, error) {
	av, err := attributevalue.MarshalMap(toClosureItem(c))
	if err != nil {
		return entities.ServiceClosure{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceClosure{}, err
	}
	return c, nil
}

func (r *ClosureDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceClosure, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceClosure{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceClosure{}, nil
	}

	var it closureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceClosure{}, err
	}
	return fromClosureItem(it), nil
}

func (r *ClosureDynamoRepository) List(ctx context.Context, clientID string) ([]entities.ServiceClosure, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if clientID != "" {
		input.FilterExpression = aws.String("#client_id = :client_id")
		input.ExpressionAttributeNames = map[string]string{"#client_id": "client_id"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		}
	}

	var closures []entities.ServiceClosure
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it closureItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			closures = append(closures, fromClosureItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return closures, nil
}

func (r *ClosureDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ClosureStatus) (entities.ServiceClosure, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceClosure{}, nil
		}
		return entities.ServiceClosure{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceClosure{}, nil
	}

	var it closureItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceClosure{}, err
	}
	return fromClosureItem(it), nil
}

func toClosureItem(c entities.ServiceClosure) closureItem {
	return closureItem{
		ID:         c.ID,
		Folio:      c.Folio,
		ClientID:   c.ClientID,
		ServiceIDs: c.ServiceIDs,
		DateFrom:   c.DateFrom.UTC().Format(time.RFC3339Nano),
		DateTo:     c.DateTo.UTC().Format(time.RFC3339Nano),
		Total:      floatToString(c.Total),
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClosureItem(it closureItem) entities.ServiceClosure {
	dateFrom, _ := time.Parse(time.RFC3339Nano, it.DateFrom)
	dateTo, _ := time.Parse(time.RFC3339Nano, it.DateTo)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.ServiceClosure{
		ID:         it.ID,
		Folio:      it.Folio,
		ClientID:   it.ClientID,
		ServiceIDs: it.ServiceIDs,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Total:      total,
		Status:     entities.ClosureStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
