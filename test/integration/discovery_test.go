package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toposcope/internal/configuration/properties"
	"toposcope/internal/discovery"
	"toposcope/internal/topology"
	"toposcope/internal/transport"
)

type node struct {
	id        string
	address   string
	registry  *discovery.Registry
	service   *discovery.Service
	transport *transport.Service
	announcer *transport.Announcer
}

func startNode(t *testing.T, id string, seeds []string) *node {
	t.Helper()

	registry := discovery.NewRegistry()

	transportSvc := transport.NewService(&properties.TransportConfigProperties{
		Network: "tcp",
		Address: "127.0.0.1",
		Port:    "0",
		Timeout: 1,
	}, registry)

	lis, err := transportSvc.StartServer()
	require.NoError(t, err)
	address := lis.Addr().String()

	local := topology.InstanceDescriptor{
		ID:            id,
		Local:         true,
		ClusterViewID: "cv1",
	}

	service := discovery.NewService(discovery.Config{
		LocalInstance:   local,
		LocalAddress:    address,
		SweepInterval:   50 * time.Millisecond,
		LivenessTimeout: 5 * time.Second,
	}, registry, nil)

	announcer := transport.NewAnnouncer(&properties.DiscoveryConfigProperties{
		HeartbeatInterval: 50,
		AnnounceTimeout:   1000,
		Seeds:             seeds,
	}, registry, local, address)
	announcer.Start()

	n := &node{
		id:        id,
		address:   address,
		registry:  registry,
		service:   service,
		transport: transportSvc,
		announcer: announcer,
	}
	t.Cleanup(func() {
		n.announcer.Stop()
		n.transport.Stop()
	})
	return n
}

func TestTwoNodesConverge(t *testing.T) {
	first := startNode(t, "node-1", nil)
	second := startNode(t, "node-2", []string{first.address})

	require.Eventually(t, func() bool {
		return first.registry.Len() >= 1 && second.registry.Len() >= 1
	}, 5*time.Second, 50*time.Millisecond, "nodes did not learn about each other")

	firstEvent := first.service.Sweep(time.Now())
	require.NotNil(t, firstEvent)

	view := first.service.CurrentView()
	require.NotNil(t, view)

	ids := map[string]bool{}
	leaders := 0
	for _, instance := range view.Instances() {
		ids[instance.ID] = true
		if instance.Leader {
			leaders++
		}
	}

	assert.True(t, ids["node-1"])
	assert.True(t, ids["node-2"])
	assert.Equal(t, 1, leaders, "exactly one leader per cluster view")
}

func TestJoinProducesChangeEvent(t *testing.T) {
	first := startNode(t, "node-1", nil)

	initEvent := first.service.Sweep(time.Now())
	require.NotNil(t, initEvent)
	require.Equal(t, discovery.EventInit, initEvent.Type())

	second := startNode(t, "node-2", []string{first.address})
	_ = second

	require.Eventually(t, func() bool {
		event := first.service.Sweep(time.Now())
		if event == nil {
			return false
		}
		if event.Type() != discovery.EventChanged {
			return false
		}
		added := topology.NewViewChangeFromEvent(event).Added().Get()
		_, ok := added["node-2"]
		return ok
	}, 5*time.Second, 50*time.Millisecond, "join never observed")
}
