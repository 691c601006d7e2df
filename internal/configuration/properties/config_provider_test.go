package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderExposesConfigSections(t *testing.T) {
	cfg := &Config{
		Application: ApplicationConfigProperties{LogLevel: "debug"},
		Node:        NodeConfigProperties{ID: "node-1", ClusterViewID: "cv1"},
		Discovery:   DiscoveryConfigProperties{SweepInterval: 500},
		Transport:   TransportConfigProperties{Port: "7946"},
		Journal:     JournalConfigProperties{Dir: "/tmp/journal"},
		Metrics:     MetricsConfigProperties{Address: ":9100"},
	}

	var provider ConfigProvider = NewProvider(cfg)

	require.NotNil(t, provider.GetApplication())
	assert.Equal(t, "debug", provider.GetApplication().LogLevel)
	assert.Equal(t, "node-1", provider.GetNode().ID)
	assert.Equal(t, uint64(500), provider.GetDiscovery().SweepInterval)
	assert.Equal(t, "7946", provider.GetTransport().Port)
	assert.Equal(t, "/tmp/journal", provider.GetJournal().Dir)
	assert.Equal(t, ":9100", provider.GetMetrics().Address)
}
