package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"doctrust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table names, overridable through the environment.
func documentsTable() string    { return getenvDefault("DOCUMENTS_TABLE", "documents") }
func accountsTable() string     { return getenvDefault("ACCOUNT_SETTINGS_TABLE", "account_settings") }
func tokensTable() string       { return getenvDefault("TOKENS_TABLE", "tokens") }
func sessionsTable() string     { return getenvDefault("SIGNATURE_SESSIONS_TABLE", "signature_sessions") }
func challengesTable() string   { return getenvDefault("OTP_CHALLENGES_TABLE", "otp_challenges") }
func eventsTable() string       { return getenvDefault("SIGNATURE_EVENTS_TABLE", "signature_events") }
func paymentsTable() string     { return getenvDefault("PAYMENTS_TABLE", "payments") }
func installmentsTable() string { return getenvDefault("INSTALLMENTS_TABLE", "installments") }

const documentIDIndex = "document_id-index"

var nowUTC = func() time.Time { return time.Now().UTC() }

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// conditionErr maps a failed condition, on a single write or inside a
// transaction, to interfaces.ErrConditionFailed.
func conditionErr(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if aws.ToString(r.Code) == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}

func queryAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func strAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func keyOf(name, v string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: strAttr(v)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
