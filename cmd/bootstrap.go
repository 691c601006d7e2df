package main

import (
	"net"
	"time"

	"toposcope/internal/configuration/properties"
	"toposcope/internal/discovery"
	"toposcope/internal/journal"
	"toposcope/internal/metrics"
	"toposcope/internal/topology"
	"toposcope/internal/transport"
)

type Services struct {
	Registry  *discovery.Registry
	Journal   *journal.Journal
	Discovery *discovery.Service
	Transport *transport.Service
	Announcer *transport.Announcer
	Metrics   *metrics.Server
}

func NewServices(provider properties.ConfigProvider) (*Services, error) {
	registry := discovery.NewRegistry()

	var jnl *journal.Journal
	if dir := provider.GetJournal().Dir; dir != "" {
		opened, err := journal.Open(dir, provider.GetJournal().NoSync)
		if err != nil {
			return nil, err
		}
		jnl = opened
	}

	node := provider.GetNode()
	transportCfg := provider.GetTransport()
	discoveryCfg := provider.GetDiscovery()

	localAddress := net.JoinHostPort(transportCfg.Address, transportCfg.Port)
	local := topology.InstanceDescriptor{
		ID:            node.ID,
		Local:         true,
		ClusterViewID: node.ClusterViewID,
		Properties:    node.Properties,
	}

	var changeJournal discovery.Journal
	if jnl != nil {
		changeJournal = jnl
	}

	discoverySvc := discovery.NewService(discovery.Config{
		LocalInstance:   local,
		LocalAddress:    localAddress,
		SweepInterval:   time.Duration(discoveryCfg.SweepInterval) * time.Millisecond,
		LivenessTimeout: time.Duration(discoveryCfg.LivenessTimeout) * time.Millisecond,
	}, registry, changeJournal)

	services := &Services{
		Registry:  registry,
		Journal:   jnl,
		Discovery: discoverySvc,
		Transport: transport.NewService(transportCfg, registry),
		Announcer: transport.NewAnnouncer(discoveryCfg, registry, local, localAddress),
	}

	if address := provider.GetMetrics().Address; address != "" {
		services.Metrics = metrics.NewServer(address)
	}

	return services, nil
}
