package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultDraftsTableName = "quote_drafts"

type haulageItem struct {
	OfferID        string `dynamodbav:"offer_id"`
	Tariff         string `dynamodbav:"tariff"`
	Quantity       int    `dynamodbav:"quantity"`
	OvertimeTariff string `dynamodbav:"overtime_tariff"`
	MultiStop      string `dynamodbav:"multi_stop"`
}

type surchargeItem struct {
	Name  string `dynamodbav:"name"`
	Value string `dynamodbav:"value"`
}

type seafreightItem struct {
	OfferID         string          `dynamodbav:"offer_id"`
	Carrier         string          `dynamodbav:"carrier"`
	ContainerType   string          `dynamodbav:"container_type"`
	TEU             int             `dynamodbav:"teu"`
	BasePrice       string          `dynamodbav:"base_price"`
	DefaultQuantity int             `dynamodbav:"default_quantity"`
	Surcharges      []surchargeItem `dynamodbav:"surcharges"`
}

type serviceItem struct {
	ServiceID       string `dynamodbav:"service_id"`
	ServiceName     string `dynamodbav:"service_name"`
	Price           string `dynamodbav:"price"`
	DefaultQuantity int    `dynamodbav:"default_quantity"`
}

type selectionItem struct {
	Haulage             *haulageItem     `dynamodbav:"haulage,omitempty"`
	Seafreights         []seafreightItem `dynamodbav:"seafreights"`
	Miscellaneous       []serviceItem    `dynamodbav:"miscellaneous"`
	ContainerQuantities map[string]int   `dynamodbav:"container_quantities,omitempty"`
	SurchargeQuantities map[string]int   `dynamodbav:"surcharge_quantities,omitempty"`
	ServiceQuantities   map[string]int   `dynamodbav:"service_quantities,omitempty"`
	MarginType          string           `dynamodbav:"margin_type"`
	MarginValue         string           `dynamodbav:"margin_value"`
}

type totalsItem struct {
	HaulageTotal    string `dynamodbav:"haulage_total"`
	SeafreightTotal string `dynamodbav:"seafreight_total"`
	MiscTotal       string `dynamodbav:"misc_total"`
	CostPrice       string `dynamodbav:"cost_price"`
	Margin          string `dynamodbav:"margin"`
	MarginPercent   string `dynamodbav:"margin_percent"`
	SellPrice       string `dynamodbav:"sell_price"`
}

type optionItem struct {
	Label     string        `dynamodbav:"label"`
	Selection selectionItem `dynamodbav:"selection"`
	Totals    totalsItem    `dynamodbav:"totals"`
	CreatedAt string        `dynamodbav:"created_at"`
}

type customerItem struct {
	ContactID   string `dynamodbav:"contact_id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	CompanyName string `dynamodbav:"company_name"`
}

type shipmentItem struct {
	Origin      string `dynamodbav:"origin"`
	Destination string `dynamodbav:"destination"`
	Incoterm    string `dynamodbav:"incoterm"`
	Commodity   string `dynamodbav:"commodity"`
}

type draftItem struct {
	ID        string        `dynamodbav:"id"`
	RequestID string        `dynamodbav:"request_id"`
	Customer  customerItem  `dynamodbav:"customer"`
	Shipment  shipmentItem  `dynamodbav:"shipment"`
	Selection selectionItem `dynamodbav:"selection"`
	Options   []optionItem  `dynamodbav:"options,omitempty"`
	Status    string        `dynamodbav:"status"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists DraftQuote aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The conditional PutItem on create is what enforces "exactly one durable
// draft per id": a second create for the same id fails the condition instead
// of overwriting.
//
// The options list has a single writer: AddOption appends to it, while create
// and update never touch it, so a draft save can neither duplicate appended
// options nor clobber them.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) CreateDraft(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	av, err := draftCreateItem(d)
	if err != nil {
		return entities.DraftQuote{}, err
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
		return entities.DraftQuote{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) UpdateDraft(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
	d.UpdatedAt = time.Now().UTC()

	input, err := draftUpdateInput(r.tableName, d)
	if err != nil {
		return entities.DraftQuote{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DraftQuote{}, nil
		}
		return entities.DraftQuote{}, err
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DraftQuote{}, err
	}
	return fromDraftItem(it), nil
}

// addOptionConditionError classifies a refused option append: a surviving
// item means the size cap fired, no item means the draft is gone and the
// zero-value not-found convention applies.
func addOptionConditionError(cfe *types.ConditionalCheckFailedException) error {
	if len(cfe.Item) > 0 {
		return interfaces.ErrOptionLimitReached
	}
	return nil
}

// draftCreateItem builds the PutItem payload for a first create. The options
// list is never part of it.
func draftCreateItem(d entities.DraftQuote) (map[string]types.AttributeValue, error) {
	it := toDraftItem(d)
	it.Options = nil
	return attributevalue.MarshalMap(it)
}

// draftUpdateInput builds the UpdateItem call for an already-persisted draft:
// every attribute except the key and the options list is SET, so appended
// options survive any later draft save.
func draftUpdateInput(tableName string, d entities.DraftQuote) (*dynamodb.UpdateItemInput, error) {
	it := toDraftItem(d)
	it.Options = nil
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	delete(av, "id")

	names := map[string]string{"#id": "id"}
	values := make(map[string]types.AttributeValue, len(av))
	sets := make([]string, 0, len(av))
	for attr, val := range av {
		names["#"+attr] = attr
		values[":"+attr] = val
		sets = append(sets, "#"+attr+" = :"+attr)
	}
	sort.Strings(sets)

	return &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}, nil
}

func (r *DraftDynamoRepository) GetDraft(ctx context.Context, id string) (entities.DraftQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.DraftQuote{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DraftQuote{}, err
	}
	return fromDraftItem(it), nil
}

func (r *DraftDynamoRepository) AddOption(ctx context.Context, draftID string, opt entities.Option) (entities.DraftQuote, error) {
	optAV, err := attributevalue.Marshal(toOptionItem(opt))
	if err != nil {
		return entities.DraftQuote{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: draftID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#options) OR size(#options) < :max)"),
		UpdateExpression:    aws.String("SET #options = list_append(if_not_exists(#options, :empty), :opt), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#options":    "options",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":opt":        &types.AttributeValueMemberL{Value: []types.AttributeValue{optAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":max":        &types.AttributeValueMemberN{Value: intToString(entities.MaxOptions)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DraftQuote{}, addOptionConditionError(cfe)
		}
		return entities.DraftQuote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DraftQuote{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DraftQuote{}, err
	}
	return fromDraftItem(it), nil
}
