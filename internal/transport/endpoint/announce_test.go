package endpoint

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toposcope/internal/discovery"
	"toposcope/internal/topology"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

func TestAnnounce_registersCaller(t *testing.T) {
	registry := discovery.NewRegistry()
	server := &GRPCServer{Registry: registry}

	response, err := server.Announce(context.Background(), &discoverypb.AnnounceRequest{
		Instance: &discoverypb.Instance{
			Id:            "node-2",
			ClusterViewId: "cv1",
			Address:       "127.0.0.1:7947",
		},
	})

	require.NoError(t, err)
	require.Equal(t, 1, registry.Len())
	require.Len(t, response.GetInstances(), 1)
	assert.Equal(t, "node-2", response.GetInstances()[0].GetId())
}

func TestAnnounce_respondsWithKnownInstances(t *testing.T) {
	registry := discovery.NewRegistry()
	registry.Upsert(topology.InstanceDescriptor{ID: "node-1", ClusterViewID: "cv1"}, "127.0.0.1:7946", time.Now())
	server := &GRPCServer{Registry: registry}

	response, err := server.Announce(context.Background(), &discoverypb.AnnounceRequest{
		Instance: &discoverypb.Instance{Id: "node-2"},
	})

	require.NoError(t, err)
	require.Len(t, response.GetInstances(), 2)
}

func TestAnnounce_dropsMissingID(t *testing.T) {
	registry := discovery.NewRegistry()
	server := &GRPCServer{Registry: registry}

	response, err := server.Announce(context.Background(), &discoverypb.AnnounceRequest{})

	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
	assert.Empty(t, response.GetInstances())
}
