package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tokenItem struct {
	Value      string `dynamodbav:"value"`
	Purpose    string `dynamodbav:"purpose"`
	DocumentID string `dynamodbav:"document_id"`
	SubjectID  string `dynamodbav:"subject_id"`
	ExpiresAt  string `dynamodbav:"expires_at"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// TokenDynamoRepository stores public tokens (PK: value). Tokens are never
// overwritten.
type TokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb *dynamodb.Client) *TokenDynamoRepository {
	return &TokenDynamoRepository{ddb: ddb, tableName: tokensTable()}
}

func (r *TokenDynamoRepository) Create(ctx context.Context, t entities.Token) error {
	av, err := attributevalue.MarshalMap(tokenItem{
		Value:      t.Value,
		Purpose:    string(t.Purpose),
		DocumentID: t.DocumentID,
		SubjectID:  t.SubjectID,
		ExpiresAt:  formatTime(t.ExpiresAt),
		CreatedAt:  formatTime(t.CreatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#value)"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
	})
	return conditionErr(err)
}

func (r *TokenDynamoRepository) Get(ctx context.Context, value string) (entities.Token, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("value", value),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Token{}, err
	}
	if len(out.Item) == 0 {
		return entities.Token{}, nil
	}
	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Token{}, err
	}
	return entities.Token{
		Value:      it.Value,
		Purpose:    entities.TokenPurpose(it.Purpose),
		DocumentID: it.DocumentID,
		SubjectID:  it.SubjectID,
		ExpiresAt:  parseTime(it.ExpiresAt),
		CreatedAt:  parseTime(it.CreatedAt),
	}, nil
}

type sessionItem struct {
	ID          string `dynamodbav:"id"`
	DocumentID  string `dynamodbav:"document_id"`
	Token       string `dynamodbav:"token"`
	SignerEmail string `dynamodbav:"signer_email"`
	SignerName  string `dynamodbav:"signer_name"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	ExpiresAt   string `dynamodbav:"expires_at"`
}

// SignatureSessionDynamoRepository persists signature sessions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: document_id-index (PK: document_id)

type SignatureSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignatureSessionRepository = (*SignatureSessionDynamoRepository)(nil)

func NewSignatureSessionDynamoRepository(ddb *dynamodb.Client) *SignatureSessionDynamoRepository {
	return &SignatureSessionDynamoRepository{ddb: ddb, tableName: sessionsTable()}
}

// liveSessionItem claims the live slot of one signer on one document. It
// shares the sessions table but carries no document_id, so it stays out of
// the index.
type liveSessionItem struct {
	ID        string `dynamodbav:"id"`
	SessionID string `dynamodbav:"session_id"`
	ExpiresAt int64  `dynamodbav:"expires_at_unix"`
}

func liveSessionID(documentID, email string) string {
	return "live-session#" + documentID + "|" + strings.ToLower(strings.TrimSpace(email))
}

// Create writes the session together with its signer's live-session claim.
// The claim only moves once the previous holder is past its expiry.
func (r *SignatureSessionDynamoRepository) Create(ctx context.Context, s entities.SignatureSession) error {
	av, err := attributevalue.MarshalMap(sessionItem{
		ID:          s.ID,
		DocumentID:  s.DocumentID,
		Token:       s.Token,
		SignerEmail: s.SignerEmail,
		SignerName:  s.SignerName,
		Status:      string(s.Status),
		CreatedAt:   formatTime(s.CreatedAt),
		ExpiresAt:   formatTime(s.ExpiresAt),
	})
	if err != nil {
		return err
	}
	claim, err := attributevalue.MarshalMap(liveSessionItem{
		ID:        liveSessionID(s.DocumentID, s.SignerEmail),
		SessionID: s.ID,
		ExpiresAt: s.ExpiresAt.Unix(),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                claim,
				ConditionExpression: aws.String("attribute_not_exists(#id) OR #expires <= :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#expires": "expires_at_unix",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(s.CreatedAt.Unix(), 10)},
				},
			}},
		},
	})
	return conditionErr(err)
}

func (r *SignatureSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.SignatureSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignatureSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignatureSession{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignatureSession{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SignatureSessionDynamoRepository) ListByDocumentID(ctx context.Context, documentID string) ([]entities.SignatureSession, error) {
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
	sessions := make([]entities.SignatureSession, 0, len(raw))
	for _, item := range raw {
		var it sessionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		sessions = append(sessions, fromSessionItem(it))
	}
	return sessions, nil
}

func (r *SignatureSessionDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SignatureSessionStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyOf("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String("SET #status = :to"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":from": strAttr(string(from)), ":to": strAttr(string(to))},
	})
	return conditionErr(err)
}

// Complete closes the session, signs the document and appends the signed
// event in one transaction.
func (r *SignatureSessionDynamoRepository) Complete(ctx context.Context, c interfaces.SignatureCompletion) error {
	doc, err := signUpdate(c)
	if err != nil {
		return err
	}
	event, err := eventPut(c.Event)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:                aws.String(r.tableName),
				Key:                      keyOf("id", c.SessionID),
				ConditionExpression:      aws.String("#status = :pending"),
				UpdateExpression:         aws.String("SET #status = :completed"),
				ExpressionAttributeNames: map[string]string{"#status": "status"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending":   strAttr(string(entities.SignatureSessionPending)),
					":completed": strAttr(string(entities.SignatureSessionCompleted)),
				},
			}},
			{Update: doc},
			{Put: event},
		},
	})
	return conditionErr(err)
}

func fromSessionItem(it sessionItem) entities.SignatureSession {
	return entities.SignatureSession{
		ID:          it.ID,
		DocumentID:  it.DocumentID,
		Token:       it.Token,
		SignerEmail: it.SignerEmail,
		SignerName:  it.SignerName,
		Status:      entities.SignatureSessionStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		ExpiresAt:   parseTime(it.ExpiresAt),
	}
}

type challengeItem struct {
	ID           string `dynamodbav:"id"`
	DocumentID   string `dynamodbav:"document_id"`
	SessionToken string `dynamodbav:"session_token"`
	Email        string `dynamodbav:"email"`
	CodeHash     string `dynamodbav:"code_hash"`
	ExpiresAt    string `dynamodbav:"expires_at"`
	IPAddress    string `dynamodbav:"ip_address,omitempty"`
	Attempts     int    `dynamodbav:"attempts"`
	Consumed     bool   `dynamodbav:"consumed"`
	ConsumedAt   string `dynamodbav:"consumed_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

type livePointerItem struct {
	ID          string `dynamodbav:"id"`
	ChallengeID string `dynamodbav:"challenge_id"`
}

// OTPChallengeDynamoRepository persists OTP challenges.
//
// Table requirements:
//   - PK: id (string)
//
// The live challenge of a session token is tracked by a pointer item
// "live#<token>" in the same table; issuing a challenge overwrites it.

type OTPChallengeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOTPChallengeRepository = (*OTPChallengeDynamoRepository)(nil)

func NewOTPChallengeDynamoRepository(ddb *dynamodb.Client) *OTPChallengeDynamoRepository {
	return &OTPChallengeDynamoRepository{ddb: ddb, tableName: challengesTable()}
}

func livePointerID(sessionToken string) string { return "live#" + sessionToken }

func (r *OTPChallengeDynamoRepository) Create(ctx context.Context, c entities.OTPChallenge, sent entities.SignatureEvent) error {
	challenge, err := attributevalue.MarshalMap(challengeItem{
		ID:           c.ID,
		DocumentID:   c.DocumentID,
		SessionToken: c.SessionToken,
		Email:        c.Email,
		CodeHash:     c.CodeHash,
		ExpiresAt:    formatTime(c.ExpiresAt),
		IPAddress:    c.IPAddress,
		Attempts:     c.Attempts,
		Consumed:     c.Consumed,
		CreatedAt:    formatTime(c.CreatedAt),
	})
	if err != nil {
		return err
	}
	pointer, err := attributevalue.MarshalMap(livePointerItem{ID: livePointerID(c.SessionToken), ChallengeID: c.ID})
	if err != nil {
		return err
	}
	event, err := eventPut(sent)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     challenge,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: pointer}},
			{Put: event},
		},
	})
	return conditionErr(err)
}

func (r *OTPChallengeDynamoRepository) GetLive(ctx context.Context, sessionToken string) (entities.OTPChallenge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", livePointerID(sessionToken)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OTPChallenge{}, err
	}
	if len(out.Item) == 0 {
		return entities.OTPChallenge{}, nil
	}
	var ptr livePointerItem
	if err := attributevalue.UnmarshalMap(out.Item, &ptr); err != nil {
		return entities.OTPChallenge{}, err
	}
	return r.get(ctx, ptr.ChallengeID)
}

func (r *OTPChallengeDynamoRepository) get(ctx context.Context, id string) (entities.OTPChallenge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OTPChallenge{}, err
	}
	if len(out.Item) == 0 {
		return entities.OTPChallenge{}, nil
	}
	var it challengeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OTPChallenge{}, err
	}
	return entities.OTPChallenge{
		ID:           it.ID,
		DocumentID:   it.DocumentID,
		SessionToken: it.SessionToken,
		Email:        it.Email,
		CodeHash:     it.CodeHash,
		ExpiresAt:    parseTime(it.ExpiresAt),
		IPAddress:    it.IPAddress,
		Attempts:     it.Attempts,
		Consumed:     it.Consumed,
		ConsumedAt:   parseTimePtr(it.ConsumedAt),
		CreatedAt:    parseTime(it.CreatedAt),
	}, nil
}

// ReserveAttempt takes one attempt before the code is compared, so parallel
// guesses cannot exceed max.
func (r *OTPChallengeDynamoRepository) ReserveAttempt(ctx context.Context, id string, max int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      keyOf("id", id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #consumed = :false AND (attribute_not_exists(#attempts) OR #attempts < :max)"),
		UpdateExpression:         aws.String("ADD #attempts :one"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#attempts": "attempts", "#consumed": "consumed"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":   &types.AttributeValueMemberN{Value: "1"},
			":max":   &types.AttributeValueMemberN{Value: strconv.Itoa(max)},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, conditionErr(err)
	}
	var it struct {
		Attempts int `dynamodbav:"attempts"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	return it.Attempts, nil
}

// Consume flips consumed with a condition on consumed = false, together with
// the otp_verified event.
func (r *OTPChallengeDynamoRepository) Consume(ctx context.Context, id string, at time.Time, verified entities.SignatureEvent) error {
	event, err := eventPut(verified)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:                aws.String(r.tableName),
				Key:                      keyOf("id", id),
				ConditionExpression:      aws.String("attribute_exists(#id) AND #consumed = :false"),
				UpdateExpression:         aws.String("SET #consumed = :true, #consumed_at = :at"),
				ExpressionAttributeNames: map[string]string{"#id": "id", "#consumed": "consumed", "#consumed_at": "consumed_at"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
					":true":  &types.AttributeValueMemberBOOL{Value: true},
					":at":    strAttr(formatTime(at)),
				},
			}},
			{Put: event},
		},
	})
	return conditionErr(err)
}

type eventItem struct {
	DocumentID   string         `dynamodbav:"document_id"`
	Seq          int64          `dynamodbav:"seq"`
	ID           string         `dynamodbav:"id"`
	SessionToken string         `dynamodbav:"session_token,omitempty"`
	Type         string         `dynamodbav:"event_type"`
	Data         map[string]any `dynamodbav:"event_data,omitempty"`
	IPAddress    string         `dynamodbav:"ip_address,omitempty"`
	UserAgent    string         `dynamodbav:"user_agent,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// SignatureEventDynamoRepository is the append-only audit trail.
//
// Table requirements:
//   - PK: document_id (string), SK: seq (number)
//
// Item seq=0 of each document holds the sequence counter.

type SignatureEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignatureEventRepository = (*SignatureEventDynamoRepository)(nil)

func NewSignatureEventDynamoRepository(ddb *dynamodb.Client) *SignatureEventDynamoRepository {
	return &SignatureEventDynamoRepository{ddb: ddb, tableName: eventsTable()}
}

func eventKey(documentID string, seq int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"document_id": strAttr(documentID),
		"seq":         &types.AttributeValueMemberN{Value: strconv.FormatInt(seq, 10)},
	}
}

func (r *SignatureEventDynamoRepository) NextSeq(ctx context.Context, documentID string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       eventKey(documentID, 0),
		UpdateExpression:          aws.String("ADD #counter :one"),
		ExpressionAttributeNames:  map[string]string{"#counter": "counter"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	var it struct {
		Counter int64 `dynamodbav:"counter"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	return it.Counter, nil
}

func (r *SignatureEventDynamoRepository) Append(ctx context.Context, e entities.SignatureEvent) error {
	put, err := eventPut(e)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                put.TableName,
		Item:                     put.Item,
		ConditionExpression:      put.ConditionExpression,
		ExpressionAttributeNames: put.ExpressionAttributeNames,
	})
	return conditionErr(err)
}

func (r *SignatureEventDynamoRepository) ListByDocumentID(ctx context.Context, documentID string) ([]entities.SignatureEvent, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		KeyConditionExpression:   aws.String("document_id = :did AND #seq > :zero"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did":  strAttr(documentID),
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	events := make([]entities.SignatureEvent, 0, len(raw))
	for _, item := range raw {
		var it eventItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		events = append(events, entities.SignatureEvent{
			ID:           it.ID,
			DocumentID:   it.DocumentID,
			Seq:          it.Seq,
			SessionToken: it.SessionToken,
			Type:         entities.SignatureEventType(it.Type),
			Data:         it.Data,
			IPAddress:    it.IPAddress,
			UserAgent:    it.UserAgent,
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return events, nil
}

// eventPut builds the insert-only put of an audit event, reused inside the
// transactions of the security steps.
func eventPut(e entities.SignatureEvent) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(eventItem{
		DocumentID:   e.DocumentID,
		Seq:          e.Seq,
		ID:           e.ID,
		SessionToken: e.SessionToken,
		Type:         string(e.Type),
		Data:         e.Data,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		CreatedAt:    formatTime(e.CreatedAt),
	})
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(eventsTable()),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#seq)"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
	}, nil
}
