package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/utils"
)

// VerifyMetaSubscription checks a Meta-family verification handshake:
// the presented token must match the integration's stored webhook
// secret, falling back to the platform-wide verify token. No replay
// protection and no timestamp checking exist in this contract.
func (s *Service) VerifyMetaSubscription(ctx context.Context, channelName, businessID, mode, token string) bool {
	if mode != "subscribe" {
		return false
	}

	expected := s.metaVerifyToken
	integration, err := s.store.GetIntegrationChannel(ctx, businessID, channelName)
	if err != nil {
		utils.Zlog.Warn("Failed to load integration for verification",
			zap.String("channel", channelName),
			zap.String("business_id", businessID),
			zap.Error(err))
	}
	if integration != nil && integration.WebhookSecret != "" {
		expected = integration.WebhookSecret
	}

	return token != "" && token == expected
}

// TwitterCRCResponse answers the Twitter webhook CRC challenge: an
// HMAC-SHA256 digest of the challenge token, base64-encoded and
// prefixed per the platform contract.
func (s *Service) TwitterCRCResponse(ctx context.Context, businessID, crcToken string) string {
	secret := s.twitterConsumerSecret
	integration, err := s.store.GetIntegrationChannel(ctx, businessID, "twitter")
	if err != nil {
		utils.Zlog.Warn("Failed to load twitter integration for CRC",
			zap.String("business_id", businessID),
			zap.Error(err))
	}
	if integration != nil && integration.WebhookSecret != "" {
		secret = integration.WebhookSecret
	}

	return "sha256=" + CRCDigest(secret, crcToken)
}

// CRCDigest computes base64(HMAC-SHA256(secret, token)).
func CRCDigest(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
