package msg

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/configs"
)

func TestGetMessage_DefaultCatalogue(t *testing.T) {
	require.NoError(t, Load(configs.DefaultMessages))

	assert.Equal(t, "Cidade não encontrada", GetMessage("weather.geocoding.not-found"))
	assert.NotEqual(t, GetMessage("weather.geocoding.not-found"), GetMessage("weather.geocoding.http"))
	assert.NotEqual(t, GetMessage("weather.geocoding.not-found"), GetMessage("weather.forecast.http"))
}

func TestGetMessage_Placeholders(t *testing.T) {
	require.NoError(t, Load([]byte(`
test:
  greeting: "Olá {0}, você tem {1} mensagens"
  failure: "Falhou: {0}"
  payload: "Dados: {0}"
  elapsed: "Levou {0}"
`)))
	t.Cleanup(func() { _ = Load(configs.DefaultMessages) })

	assert.Equal(t, "Olá Ana, você tem 3 mensagens", GetMessage("test.greeting", "Ana", 3))
	assert.Equal(t, "Falhou: boom", GetMessage("test.failure", errors.New("boom")))
	assert.Equal(t, `Dados: {"a":1}`, GetMessage("test.payload", map[string]int{"a": 1}))
	assert.Equal(t, "Levou 1.5s", GetMessage("test.elapsed", 1500*time.Millisecond))
}

func TestGetMessage_UnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nothing", GetMessage("nope.nothing"))
}
