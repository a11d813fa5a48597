package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature checks the x-signature header Mercado Pago sends
// with notifications: "ts=<unix>,v1=<hex hmac-sha256>" over the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func VerifyWebhookSignature(secret, signature, requestID, dataID string) error {
	if secret == "" {
		return nil
	}
	var ts, v1 string
	for _, part := range strings.Split(signature, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return ErrInvalidWebhookSignature
	}

	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest.String()))
	expected := mac.Sum(nil)
	got, err := hex.DecodeString(v1)
	if err != nil || !hmac.Equal(expected, got) {
		return ErrInvalidWebhookSignature
	}
	return nil
}
