package fx

import (
	"testing"

	"royale-tracker/internal/metrics"
	"royale-tracker/internal/server"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraphResolves(t *testing.T) {
	err := fx.ValidateApp(
		Module,
		fx.Invoke(func(*server.TrackerServer, *metrics.Metrics) {}),
	)
	require.NoError(t, err)
}
