package repository

import (
	"context"
	"errors"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	DocumentID        string `dynamodbav:"document_id"`
	OwnerID           string `dynamodbav:"owner_id"`
	Type              string `dynamodbav:"payment_type"`
	InstallmentID     string `dynamodbav:"installment_id,omitempty"`
	AmountCents       int64  `dynamodbav:"amount_cents"`
	Currency          string `dynamodbav:"currency"`
	ChargeKey         string `dynamodbav:"charge_key"`
	ExternalSessionID string `dynamodbav:"external_session_id,omitempty"`
	ExternalIntentID  string `dynamodbav:"external_intent_id,omitempty"`
	CheckoutURL       string `dynamodbav:"checkout_url,omitempty"`
	Status            string `dynamodbav:"status"`
	Paid              bool   `dynamodbav:"paid"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
}

type chargeClaimItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: document_id-index (PK: document_id)
//
// Charge claims live in the same table as "charge#<key>" items. They carry
// no document_id so they stay out of the index.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: paymentsTable()}
}

func chargeClaimID(key string) string { return "charge#" + key }

func (r *PaymentDynamoRepository) ClaimCharge(ctx context.Context, chargeKey, paymentID string) (string, error) {
	av, err := attributevalue.MarshalMap(chargeClaimItem{ID: chargeClaimID(chargeKey), PaymentID: paymentID})
	if err != nil {
		return "", err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err == nil {
		return paymentID, nil
	}
	if !errors.Is(conditionErr(err), interfaces.ErrConditionFailed) {
		return "", err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", chargeClaimID(chargeKey)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	var claim chargeClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return "", err
	}
	return claim.PaymentID, nil
}

// Upsert writes the whole row unless the stored one is already paid.
func (r *PaymentDynamoRepository) Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	p.Paid = p.Status == entities.PaymentStatusPaid
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": strAttr(string(entities.PaymentStatusPaid)),
		},
	})
	if err != nil {
		return entities.Payment{}, conditionErr(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByDocumentID(ctx context.Context, documentID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentIDIndex),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": strAttr(documentID),
		},
	})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, externalIntentID string, at time.Time) (entities.Payment, error) {
	expr := "SET #status = :to, #paid = :paid, #updated_at = :at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#paid":       "paid",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from": strAttr(string(from)),
		":to":   strAttr(string(to)),
		":paid": &types.AttributeValueMemberBOOL{Value: to == entities.PaymentStatusPaid},
		":at":   strAttr(formatTime(at)),
	}
	if externalIntentID != "" {
		expr += ", #intent = :intent"
		names["#intent"] = "external_intent_id"
		values[":intent"] = strAttr(externalIntentID)
	}
	if to == entities.PaymentStatusPaid {
		expr += ", #paid_at = :at"
		names["#paid_at"] = "paid_at"
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
		return entities.Payment{}, conditionErr(err)
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		DocumentID:        p.DocumentID,
		OwnerID:           p.OwnerID,
		Type:              string(p.Type),
		InstallmentID:     p.InstallmentID,
		AmountCents:       p.AmountCents,
		Currency:          p.Currency,
		ChargeKey:         p.ChargeKey,
		ExternalSessionID: p.ExternalSessionID,
		ExternalIntentID:  p.ExternalIntentID,
		CheckoutURL:       p.CheckoutURL,
		Status:            string(p.Status),
		Paid:              p.Paid,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
		PaidAt:            formatTimePtr(p.PaidAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		DocumentID:        it.DocumentID,
		OwnerID:           it.OwnerID,
		Type:              entities.PaymentType(it.Type),
		InstallmentID:     it.InstallmentID,
		AmountCents:       it.AmountCents,
		Currency:          it.Currency,
		ChargeKey:         it.ChargeKey,
		ExternalSessionID: it.ExternalSessionID,
		ExternalIntentID:  it.ExternalIntentID,
		CheckoutURL:       it.CheckoutURL,
		Status:            entities.PaymentStatus(it.Status),
		Paid:              it.Paid,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		PaidAt:            parseTimePtr(it.PaidAt),
	}
}
