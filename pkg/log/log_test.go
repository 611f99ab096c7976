package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	out := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(out) })
	return buf
}

func TestConfigure_InvalidLevel(t *testing.T) {
	err := Configure("verbose", "production")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.False(t, IsDevelopment())

	require.NoError(t, Configure("debug", "dev"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.True(t, IsDevelopment())
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	require.NoError(t, Configure("info", "development"))
	buf := captureOutput(t)

	L.WithFields(Fields{"selection": "repeat", "user_agent": "curl"}).Info("renderizado")

	assert.Contains(t, buf.String(), "selection=repeat")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	require.NoError(t, Configure("info", "production"))
	defer Configure("info", "development")
	buf := captureOutput(t)

	L.WithField("user_agent", "curl").Info("requisição")

	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
