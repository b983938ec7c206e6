package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Folio       int64  `dynamodbav:"folio"`
	ClientID    string `dynamodbav:"client_id"`
	CraneID     string `dynamodbav:"crane_id"`
	OperatorID  string `dynamodbav:"operator_id"`
	Origin      string `dynamodbav:"origin"`
	Destination string `dynamodbav:"destination"`
	ServiceDate string `dynamodbav:"service_date"`
	Value       string `dynamodbav:"value"`
	Status      string `dynamodbav:"status"`
	ClosureID   string `dynamodbav:"closure_id,omitempty"`
	Inspection  string `dynamodbav:"inspection,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The embedded inspection form is stored as a JSON document string; it is
// written once on submit and never partially updated.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	it, err := toServiceItem(s)
	if err != nil {
		return entities.Service{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

// List scans the table applying the filter server-side. Service volume is
// low (a regional crane fleet); a Scan with a filter expression is cheaper
// to operate than maintaining extra indexes for every dashboard view.
func (r *ServiceDynamoRepository) List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	var (
		exprs []string
		vals  = map[string]types.AttributeValue{}
		names = map[string]string{}
	)
	if filter.ClientID != "" {
		exprs = append(exprs, "#client_id = :client_id")
		names["#client_id"] = "client_id"
		vals[":client_id"] = &types.AttributeValueMemberS{Value: filter.ClientID}
	}
	if filter.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		vals[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		exprs = append(exprs, "#service_date BETWEEN :from AND :to")
		names["#service_date"] = "service_date"
		vals[":from"] = &types.AttributeValueMemberS{Value: filter.From.UTC().Format(time.RFC3339Nano)}
		// Upper bound is inclusive of the whole day when a date-only value
		// comes in at midnight.
		vals[":to"] = &types.AttributeValueMemberS{Value: filter.To.UTC().Add(24*time.Hour - time.Nanosecond).Format(time.RFC3339Nano)}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = vals
	}

	var services []entities.Service
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			s, err := fromServiceItem(it)
			if err != nil {
				return nil, err
			}
			services = append(services, s)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	it, err := toServiceItem(s)
	if err != nil {
		return entities.Service{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Service{}, err
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
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

// UpdateStatus performs a conditional status change: the write only lands
// when the row is still in the expected status. A lost condition returns the
// zero value, never an error.
func (r *ServiceDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ServiceStatus) (entities.Service, error) {
	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :from",
		func(vals map[string]types.AttributeValue, names map[string]string) {
			vals[":from"] = &types.AttributeValueMemberS{Value: string(from)}
			vals[":to"] = &types.AttributeValueMemberS{Value: string(to)}
			names["#status"] = "status"
		})
}

func (r *ServiceDynamoRepository) UpdateInspection(ctx context.Context, id string, form entities.InspectionForm) (entities.Service, error) {
	doc, err := json.Marshal(form)
	if err != nil {
		return entities.Service{}, err
	}
	return r.update(ctx, id,
		"SET #inspection = :inspection, #updated_at = :updated_at",
		"attribute_exists(#id)",
		func(vals map[string]types.AttributeValue, names map[string]string) {
			vals[":inspection"] = &types.AttributeValueMemberS{Value: string(doc)}
			names["#inspection"] = "inspection"
		})
}

func (r *ServiceDynamoRepository) AssignClosure(ctx context.Context, id, closureID string) (entities.Service, error) {
	return r.update(ctx, id,
		"SET #closure_id = :closure_id, #updated_at = :updated_at",
		"attribute_exists(#id)",
		func(vals map[string]types.AttributeValue, names map[string]string) {
			vals[":closure_id"] = &types.AttributeValueMemberS{Value: closureID}
			names["#closure_id"] = "closure_id"
		})
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	bind func(vals map[string]types.AttributeValue, names map[string]string),
) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	bind(vals, names)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func toServiceItem(s entities.Service) (serviceItem, error) {
	it := serviceItem{
		ID:          s.ID,
		Folio:       s.Folio,
		ClientID:    s.ClientID,
		CraneID:     s.CraneID,
		OperatorID:  s.OperatorID,
		Origin:      s.Origin,
		Destination: s.Destination,
		ServiceDate: s.ServiceDate.UTC().Format(time.RFC3339Nano),
		Value:       floatToString(s.Value),
		Status:      string(s.Status),
		ClosureID:   s.ClosureID,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Inspection != nil {
		doc, err := json.Marshal(s.Inspection)
		if err != nil {
			return serviceItem{}, err
		}
		it.Inspection = string(doc)
	}
	return it, nil
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	serviceDate, _ := time.Parse(time.RFC3339Nano, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	value, _ := strconv.ParseFloat(it.Value, 64)

	s := entities.Service{
		ID:          it.ID,
		Folio:       it.Folio,
		ClientID:    it.ClientID,
		CraneID:     it.CraneID,
		OperatorID:  it.OperatorID,
		Origin:      it.Origin,
		Destination: it.Destination,
		ServiceDate: serviceDate,
		Value:       value,
		Status:      entities.ServiceStatus(it.Status),
		ClosureID:   it.ClosureID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.Inspection != "" {
		var form entities.InspectionForm
		if err := json.Unmarshal([]byte(it.Inspection), &form); err != nil {
			return entities.Service{}, err
		}
		s.Inspection = &form
	}
	return s, nil
}
