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

const (
	defaultCranesTableName    = "cranes"
	defaultOperatorsTableName = "operators"
)

type craneItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Brand       string `dynamodbav:"brand,omitempty"`
	Model       string `dynamodbav:"model,omitempty"`
	PlateNumber string `dynamodbav:"plate_number"`
	CapacityTon string `dynamodbav:"capacity_ton,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type operatorItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	RUT           string `dynamodbav:"rut"`
	Email         string `dynamodbav:"email,omitempty"`
	Phone         string `dynamodbav:"phone,omitempty"`
	LicenseNumber string `dynamodbav:"license_number,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CraneDynamoRepository persists Crane entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CraneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICraneRepository = (*CraneDynamoRepository)(nil)

func NewCraneDynamoRepository(ddb *dynamodb.Client) *CraneDynamoRepository {
	return &CraneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CRANES_TABLE", defaultCranesTableName),
	}
}

func (r *CraneDynamoRepository) Create(ctx context.Context, c entities.Crane) (entities.Crane, error) {
	av, err := attributevalue.MarshalMap(toCraneItem(c))
	if err != nil {
		return entities.Crane{}, err
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
		return entities.Crane{}, err
	}
	return c, nil
}

func (r *CraneDynamoRepository) GetByID(ctx context.Context, id string) (entities.Crane, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Crane{}, err
	}
	if len(out.Item) == 0 {
		return entities.Crane{}, nil
	}

	var it craneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Crane{}, err
	}
	return fromCraneItem(it), nil
}

func (r *CraneDynamoRepository) List(ctx context.Context) ([]entities.Crane, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var cranes []entities.Crane
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it craneItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			cranes = append(cranes, fromCraneItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return cranes, nil
}

func (r *CraneDynamoRepository) Update(ctx context.Context, c entities.Crane) (entities.Crane, error) {
	av, err := attributevalue.MarshalMap(toCraneItem(c))
	if err != nil {
		return entities.Crane{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Crane{}, nil
		}
		return entities.Crane{}, err
	}
	return c, nil
}

func (r *CraneDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCraneItem(c entities.Crane) craneItem {
	it := craneItem{
		ID:          c.ID,
		Name:        c.Name,
		Brand:       c.Brand,
		Model:       c.Model,
		PlateNumber: c.PlateNumber,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.CapacityTon > 0 {
		it.CapacityTon = floatToString(c.CapacityTon)
	}
	return it
}

func fromCraneItem(it craneItem) entities.Crane {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	capacity, _ := strconv.ParseFloat(it.CapacityTon, 64)
	return entities.Crane{
		ID:          it.ID,
		Name:        it.Name,
		Brand:       it.Brand,
		Model:       it.Model,
		PlateNumber: it.PlateNumber,
		CapacityTon: capacity,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// OperatorDynamoRepository persists Operator entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OperatorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOperatorRepository = (*OperatorDynamoRepository)(nil)

func NewOperatorDynamoRepository(ddb *dynamodb.Client) *OperatorDynamoRepository {
	return &OperatorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPERATORS_TABLE", defaultOperatorsTableName),
	}
}

func (r *OperatorDynamoRepository) Create(ctx context.Context, o entities.Operator) (entities.Operator, error) {
	av, err := attributevalue.MarshalMap(toOperatorItem(o))
	if err != nil {
		return entities.Operator{}, err
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
		return entities.Operator{}, err
	}
	return o, nil
}

func (r *OperatorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Operator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Operator{}, err
	}
	if len(out.Item) == 0 {
		return entities.Operator{}, nil
	}

	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func (r *OperatorDynamoRepository) List(ctx context.Context) ([]entities.Operator, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var operators []entities.Operator
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it operatorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			operators = append(operators, fromOperatorItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return operators, nil
}

func (r *OperatorDynamoRepository) Update(ctx context.Context, o entities.Operator) (entities.Operator, error) {
	av, err := attributevalue.MarshalMap(toOperatorItem(o))
	if err != nil {
		return entities.Operator{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Operator{}, nil
		}
		return entities.Operator{}, err
	}
	return o, nil
}

func (r *OperatorDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOperatorItem(o entities.Operator) operatorItem {
	return operatorItem{
		ID:            o.ID,
		Name:          o.Name,
		RUT:           o.RUT,
		Email:         o.Email,
		Phone:         o.Phone,
		LicenseNumber: o.LicenseNumber,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOperatorItem(it operatorItem) entities.Operator {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Operator{
		ID:            it.ID,
		Name:          it.Name,
		RUT:           it.RUT,
		Email:         it.Email,
		Phone:         it.Phone,
		LicenseNumber: it.LicenseNumber,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
