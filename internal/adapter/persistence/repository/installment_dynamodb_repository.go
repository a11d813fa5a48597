package repository

import (
	"context"
	"sort"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type installmentItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	OwnerID     string `dynamodbav:"owner_id"`
	Number      int    `dynamodbav:"installment_number"`
	Total       int    `dynamodbav:"total_installments"`
	AmountCents int64  `dynamodbav:"amount_cents"`
	Currency    string `dynamodbav:"currency"`
	DueDate     string `dynamodbav:"due_date"`
	Status      string `dynamodbav:"status"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	PaymentLink string `dynamodbav:"payment_link,omitempty"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type scheduleMarkerItem struct {
	ID             string   `dynamodbav:"id"`
	InvoiceID      string   `dynamodbav:"invoice_id"`
	InstallmentIDs []string `dynamodbav:"installment_ids"`
}

// InstallmentDynamoRepository persists installment schedules.
//
// Table requirements:
//   - PK: id (string)
//
// A "schedule#<invoice_id>" marker item guards against a second schedule
// and lists the installment ids in order.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{ddb: ddb, tableName: installmentsTable()}
}

func scheduleMarkerID(invoiceID string) string { return "schedule#" + invoiceID }

// CreateSchedule fits in one transaction: at most 60 installments plus the
// marker, below the 100 item limit.
func (r *InstallmentDynamoRepository) CreateSchedule(ctx context.Context, invoiceID string, items []entities.Installment) error {
	ids := make([]string, 0, len(items))
	writes := make([]types.TransactWriteItem, 0, len(items)+1)
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toInstallmentItem(it))
		if err != nil {
			return err
		}
		ids = append(ids, it.ID)
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}
	marker, err := attributevalue.MarshalMap(scheduleMarkerItem{
		ID:             scheduleMarkerID(invoiceID),
		InvoiceID:      invoiceID,
		InstallmentIDs: ids,
	})
	if err != nil {
		return err
	}
	writes = append(writes, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     marker,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return conditionErr(err)
}

func (r *InstallmentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", scheduleMarkerID(invoiceID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.Installment{}, nil
	}
	var marker scheduleMarkerItem
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return nil, err
	}

	keys := make([]map[string]types.AttributeValue, 0, len(marker.InstallmentIDs))
	for _, id := range marker.InstallmentIDs {
		keys = append(keys, keyOf("id", id))
	}
	items := make([]entities.Installment, 0, len(keys))
	for len(keys) > 0 {
		resp, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range resp.Responses[r.tableName] {
			var it installmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInstallmentItem(it))
		}
		keys = resp.UnprocessedKeys[r.tableName].Keys
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Number < items[j].Number })
	return items, nil
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}
	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.InstallmentStatus, patch interfaces.InstallmentPatch) (entities.Installment, error) {
	expr := "SET #status = :to"
	names := map[string]string{"#id": "id", "#status": "status"}
	values := map[string]types.AttributeValue{
		":from": strAttr(string(from)),
		":to":   strAttr(string(to)),
	}
	if patch.PaymentID != "" {
		expr += ", #payment_id = :payment_id"
		names["#payment_id"] = "payment_id"
		values[":payment_id"] = strAttr(patch.PaymentID)
	}
	if patch.PaymentLink != "" {
		expr += ", #payment_link = :payment_link"
		names["#payment_link"] = "payment_link"
		values[":payment_link"] = strAttr(patch.PaymentLink)
	}
	if patch.PaidAt != nil {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		values[":paid_at"] = strAttr(formatTime(*patch.PaidAt))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyOf("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Installment{}, conditionErr(err)
	}
	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func toInstallmentItem(i entities.Installment) installmentItem {
	return installmentItem{
		ID:          i.ID,
		InvoiceID:   i.InvoiceID,
		OwnerID:     i.OwnerID,
		Number:      i.Number,
		Total:       i.Total,
		AmountCents: i.AmountCents,
		Currency:    i.Currency,
		DueDate:     formatTime(i.DueDate),
		Status:      string(i.Status),
		PaymentID:   i.PaymentID,
		PaymentLink: i.PaymentLink,
		PaidAt:      formatTimePtr(i.PaidAt),
		CreatedAt:   formatTime(i.CreatedAt),
	}
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	return entities.Installment{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		OwnerID:     it.OwnerID,
		Number:      it.Number,
		Total:       it.Total,
		AmountCents: it.AmountCents,
		Currency:    it.Currency,
		DueDate:     parseTime(it.DueDate),
		Status:      entities.InstallmentStatus(it.Status),
		PaymentID:   it.PaymentID,
		PaymentLink: it.PaymentLink,
		PaidAt:      parseTimePtr(it.PaidAt),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
