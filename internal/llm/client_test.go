package llm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

func TestMain(m *testing.M) {
	utils.Zlog = zap.NewNop()
	os.Exit(m.Run())
}

func TestNewFromConfigWithoutKey(t *testing.T) {
	client := NewFromConfig(&config.Config{})
	assert.Nil(t, client)
}

func TestNewFromConfigWithKey(t *testing.T) {
	client := NewFromConfig(&config.Config{
		AIAPIKey: "sk-test",
		AIModel:  "deepseek/deepseek-chat",
	})
	assert.NotNil(t, client)
	assert.Equal(t, "deepseek/deepseek-chat", client.defaultModel)
}
