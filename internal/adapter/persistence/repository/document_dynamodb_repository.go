package repository

import (
	"context"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type signatureItem struct {
	SessionID   string `dynamodbav:"session_id"`
	SignerName  string `dynamodbav:"signer_name"`
	SignerEmail string `dynamodbav:"signer_email"`
	Payload     string `dynamodbav:"payload"`
	IPAddress   string `dynamodbav:"ip_address,omitempty"`
	UserAgent   string `dynamodbav:"user_agent,omitempty"`
	SignedAt    string `dynamodbav:"signed_at"`
}

type documentItem struct {
	ID                 string         `dynamodbav:"id"`
	Kind               string         `dynamodbav:"kind"`
	Number             string         `dynamodbav:"number"`
	OwnerID            string         `dynamodbav:"owner_id"`
	ClientName         string         `dynamodbav:"client_name"`
	ClientEmail        string         `dynamodbav:"client_email"`
	AmountExclTaxCents int64          `dynamodbav:"amount_excl_tax_cents"`
	AmountCents        int64          `dynamodbav:"amount_cents"`
	Currency           string         `dynamodbav:"currency"`
	Status             string         `dynamodbav:"status"`
	Signature          *signatureItem `dynamodbav:"signature,omitempty"`
	CreatedAt          string         `dynamodbav:"created_at"`
	UpdatedAt          string         `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists quotes and invoices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes are compare-and-swap on the status attribute.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{ddb: ddb, tableName: documentsTable()}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, conditionErr(err)
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.DocumentStatus) (entities.Document, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 keyOf("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": strAttr(string(from)),
			":to":   strAttr(string(to)),
			":now":  strAttr(formatTime(nowUTC())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Document{}, conditionErr(err)
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

// signUpdate is the document half of a signature completion transaction.
func signUpdate(c interfaces.SignatureCompletion) (*types.Update, error) {
	sig, err := attributevalue.Marshal(toSignatureItem(c.Signature))
	if err != nil {
		return nil, err
	}
	return &types.Update{
		TableName:           aws.String(documentsTable()),
		Key:                 keyOf("id", c.DocumentID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :signed, #signature = :sig, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#signature":  "signature",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":   strAttr(string(c.DocumentFrom)),
			":signed": strAttr(string(entities.DocumentStatusSigned)),
			":sig":    sig,
			":now":    strAttr(formatTime(c.Signature.SignedAt)),
		},
	}, nil
}

func toSignatureItem(s entities.SignatureRecord) signatureItem {
	return signatureItem{
		SessionID:   s.SessionID,
		SignerName:  s.SignerName,
		SignerEmail: s.SignerEmail,
		Payload:     s.Payload,
		IPAddress:   s.IPAddress,
		UserAgent:   s.UserAgent,
		SignedAt:    formatTime(s.SignedAt),
	}
}

func toDocumentItem(d entities.Document) documentItem {
	it := documentItem{
		ID:                 d.ID,
		Kind:               string(d.Kind),
		Number:             d.Number,
		OwnerID:            d.OwnerID,
		ClientName:         d.ClientName,
		ClientEmail:        d.ClientEmail,
		AmountExclTaxCents: d.AmountExclTaxCents,
		AmountCents:        d.AmountCents,
		Currency:           d.Currency,
		Status:             string(d.Status),
		CreatedAt:          formatTime(d.CreatedAt),
		UpdatedAt:          formatTime(d.UpdatedAt),
	}
	if d.Signature != nil {
		sig := toSignatureItem(*d.Signature)
		it.Signature = &sig
	}
	return it
}

func fromDocumentItem(it documentItem) entities.Document {
	d := entities.Document{
		ID:                 it.ID,
		Kind:               entities.DocumentKind(it.Kind),
		Number:             it.Number,
		OwnerID:            it.OwnerID,
		ClientName:         it.ClientName,
		ClientEmail:        it.ClientEmail,
		AmountExclTaxCents: it.AmountExclTaxCents,
		AmountCents:        it.AmountCents,
		Currency:           it.Currency,
		Status:             entities.DocumentStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.Signature != nil {
		d.Signature = &entities.SignatureRecord{
			SessionID:   it.Signature.SessionID,
			SignerName:  it.Signature.SignerName,
			SignerEmail: it.Signature.SignerEmail,
			Payload:     it.Signature.Payload,
			IPAddress:   it.Signature.IPAddress,
			UserAgent:   it.Signature.UserAgent,
			SignedAt:    parseTime(it.Signature.SignedAt),
		}
	}
	return d
}

type accountItem struct {
	OwnerID       string `dynamodbav:"owner_id"`
	PublicBaseURL string `dynamodbav:"public_base_url,omitempty"`
	BusinessName  string `dynamodbav:"business_name,omitempty"`
}

// AccountSettingsDynamoRepository reads account settings (PK: owner_id).
type AccountSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountSettingsRepository = (*AccountSettingsDynamoRepository)(nil)

func NewAccountSettingsDynamoRepository(ddb *dynamodb.Client) *AccountSettingsDynamoRepository {
	return &AccountSettingsDynamoRepository{ddb: ddb, tableName: accountsTable()}
}

func (r *AccountSettingsDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.AccountSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyOf("owner_id", ownerID),
	})
	if err != nil {
		return entities.AccountSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.AccountSettings{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccountSettings{}, err
	}
	return entities.AccountSettings{OwnerID: it.OwnerID, PublicBaseURL: it.PublicBaseURL, BusinessName: it.BusinessName}, nil
}
