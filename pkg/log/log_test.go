package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (Logger, *test.Hook) {
	t.Helper()
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	return &logger{entry: logrus.NewEntry(base)}, hook
}

func TestLogger_WithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, hook := newTestLogger(t)

	l.WithFields(Fields{
		"report_kind":  "yearly",
		"year":         1980,
		"remote_addr":  "127.0.0.1",
		"dataset_size": 528,
	}).Info("renderizando")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "yearly", entry.Data["report_kind"])
	assert.Equal(t, 1980, entry.Data["year"])
	assert.Equal(t, 528, entry.Data["dataset_size"])
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestLogger_WithField_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, hook := newTestLogger(t)

	l.WithField("remote_addr", "127.0.0.1").Info("requisição")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "127.0.0.1", entry.Data["remote_addr"])
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
