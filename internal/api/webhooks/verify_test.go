package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SkylineKAI/platform-api/internal/types"
)

func TestCRCDigest(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("challenge"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, CRCDigest("secret", "challenge"))
}

func TestTwitterCRCResponsePrefersIntegrationSecret(t *testing.T) {
	store := &fakeStore{
		integration: &types.IntegrationChannel{
			Channel:       "twitter",
			Status:        types.IntegrationConnected,
			WebhookSecret: "per-tenant",
		},
	}
	svc := NewService(store, nil, "verify", "insta-verify", "consumer-wide")

	got := svc.TwitterCRCResponse(context.Background(), "biz-1", "tok")
	assert.Equal(t, "sha256="+CRCDigest("per-tenant", "tok"), got)
}

func TestTwitterCRCResponseFallsBackToConsumerSecret(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, "verify", "insta-verify", "consumer-wide")

	got := svc.TwitterCRCResponse(context.Background(), "biz-1", "tok")
	assert.Equal(t, "sha256="+CRCDigest("consumer-wide", "tok"), got)
}

func TestVerifyMetaSubscription(t *testing.T) {
	store := &fakeStore{
		integration: &types.IntegrationChannel{
			Channel:       "instagram",
			Status:        types.IntegrationConnected,
			WebhookSecret: "tenant-token",
		},
	}
	svc := NewService(store, nil, "platform-token", "insta-verify", "")

	assert.True(t, svc.VerifyMetaSubscription(context.Background(), "instagram", "biz-1", "subscribe", "tenant-token"))
	assert.False(t, svc.VerifyMetaSubscription(context.Background(), "instagram", "biz-1", "subscribe", "platform-token"))
	assert.False(t, svc.VerifyMetaSubscription(context.Background(), "instagram", "biz-1", "unsubscribe", "tenant-token"))
	assert.False(t, svc.VerifyMetaSubscription(context.Background(), "instagram", "biz-1", "subscribe", ""))
}

func TestVerifyMetaSubscriptionPlatformFallback(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, "platform-token", "insta-verify", "")

	assert.True(t, svc.VerifyMetaSubscription(context.Background(), "messenger", "biz-1", "subscribe", "platform-token"))
	assert.False(t, svc.VerifyMetaSubscription(context.Background(), "messenger", "biz-1", "subscribe", "wrong"))
}
