package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMaterialsTableName = "materials"

type materialItem struct {
	ID        int    `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice int64  `dynamodbav:"unit_price"`
}

// MaterialDynamoRepository persists the material catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// New ids are assigned as max(existing)+1, computed from a scan. The catalog
// is a single-operator table with a few dozen rows, so the scan is cheap and
// there is no concurrent writer to race with.
type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	var materials []entities.Material

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
			var it materialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			materials = append(materials, entities.Material(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return materials, nil
}

// nextMaterialID assigns max(existing)+1. Deleting the highest id frees it
// for the next creation; lower gaps are never reused.
func nextMaterialID(existing []entities.Material) int {
	nextID := 1
	for _, m := range existing {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}
	return nextID
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, name string, unitPrice int64) (entities.Material, error) {
	existing, err := r.List(ctx)
	if err != nil {
		return entities.Material{}, err
	}

	material := entities.Material{ID: nextMaterialID(existing), Name: name, UnitPrice: unitPrice}
	av, err := attributevalue.MarshalMap(materialItem(material))
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return material, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id int) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return entities.Material(it), nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(materialItem(m))
	if err != nil {
		return entities.Material{}, err
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
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *MaterialDynamoRepository) SeedIfEmpty(ctx context.Context, materials []entities.Material) error {
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

	log.Printf("[materials][repository] empty table, seeding %d catalog entries", len(materials))
	for _, m := range materials {
		av, err := attributevalue.MarshalMap(materialItem(m))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
