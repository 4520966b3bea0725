package telemetry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narender/product-console/common/config"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.NewConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestCreateMasterShutdownJoinsErrors(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("exporter stuck")

	shutdown := createMasterShutdown([]shutdownFunc{
		func(context.Context) error { calls.Add(1); return nil },
		func(context.Context) error { calls.Add(1); return boom },
	}, time.Second)

	err := shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), calls.Load())
}
