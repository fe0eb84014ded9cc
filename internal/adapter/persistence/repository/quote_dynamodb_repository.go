package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ID        int    `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
}

type quoteExtraCost struct {
	Description string `dynamodbav:"description"`
	Amount      int64  `dynamodbav:"amount"`
}

type quoteItem struct {
	ID                 string           `dynamodbav:"id"`
	CustomerName       string           `dynamodbav:"customer_name"`
	CustomerPhone      string           `dynamodbav:"customer_phone"`
	CustomerEmail      string           `dynamodbav:"customer_email"`
	ProjectDescription string           `dynamodbav:"project_description"`
	LineItems          []quoteLineItem  `dynamodbav:"line_items"`
	LaborFee           int64            `dynamodbav:"labor_fee"`
	ExtraCosts         []quoteExtraCost `dynamodbav:"extra_costs"`
	Notes              string           `dynamodbav:"notes"`
	TotalAmount        int64            `dynamodbav:"total_amount"`
	Status             string           `dynamodbav:"status"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the table and orders by creation time, so reads are stable
// across calls regardless of DynamoDB's scan order.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].CreatedAt.Equal(quotes[j].CreatedAt) {
			return quotes[i].ID < quotes[j].ID
		}
		return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// SeedIfEmpty loads the built-in sample quotes when the table has no items
// yet. First run only; an already-populated table is left alone.
func (r *QuoteDynamoRepository) SeedIfEmpty(ctx context.Context, quotes []entities.Quote) error {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return err
	}
	if out.Count > 0 {
		return nil
	}

	log.Printf("[quotes][repository] empty table, seeding %d sample quotes", len(quotes))
	for _, q := range quotes {
		if _, err := r.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, quoteLineItem(li))
	}
	costs := make([]quoteExtraCost, 0, len(q.ExtraCosts))
	for _, c := range q.ExtraCosts {
		costs = append(costs, quoteExtraCost(c))
	}

	return quoteItem{
		ID:                 q.ID,
		CustomerName:       q.CustomerName,
		CustomerPhone:      q.CustomerPhone,
		CustomerEmail:      q.CustomerEmail,
		ProjectDescription: q.ProjectDescription,
		LineItems:          items,
		LaborFee:           q.LaborFee,
		ExtraCosts:         costs,
		Notes:              q.Notes,
		TotalAmount:        q.TotalAmount,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem(li))
	}

	// Records stored before extra costs existed come back without the
	// attribute; normalize to an empty sequence on load.
	costs := make([]entities.ExtraCost, 0, len(it.ExtraCosts))
	for _, c := range it.ExtraCosts {
		costs = append(costs, entities.ExtraCost(c))
	}

	return entities.Quote{
		ID:                 it.ID,
		CustomerName:       it.CustomerName,
		CustomerPhone:      it.CustomerPhone,
		CustomerEmail:      it.CustomerEmail,
		ProjectDescription: it.ProjectDescription,
		LineItems:          items,
		LaborFee:           it.LaborFee,
		ExtraCosts:         costs,
		Notes:              it.Notes,
		TotalAmount:        it.TotalAmount,
		Status:             entities.QuoteStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
