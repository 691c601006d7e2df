package transport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"toposcope/internal/configuration/properties"
	"toposcope/internal/discovery"
	"toposcope/internal/metrics"
	"toposcope/internal/topology"
	discoverypb "toposcope/internal/transport/gen/discovery"
	"toposcope/internal/transport/util"
)

// Announcer periodically announces the local instance to the seed peers and
// to every peer learned from announce responses, and merges what they know
// back into the registry.
type Announcer struct {
	seeds        []string
	interval     time.Duration
	timeout      time.Duration
	registry     *discovery.Registry
	local        topology.InstanceDescriptor
	localAddress string

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewAnnouncer(
	discoveryConfig *properties.DiscoveryConfigProperties,
	registry *discovery.Registry,
	local topology.InstanceDescriptor,
	localAddress string,
) *Announcer {
	return &Announcer{
		seeds:        discoveryConfig.Seeds,
		interval:     time.Duration(discoveryConfig.HeartbeatInterval) * time.Millisecond,
		timeout:      time.Duration(discoveryConfig.AnnounceTimeout) * time.Millisecond,
		registry:     registry,
		local:        local,
		localAddress: localAddress,
		conns:        make(map[string]*grpc.ClientConn),
		stopCh:       make(chan struct{}),
	}
}

func (a *Announcer) Start() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		a.announceAll()
		for {
			select {
			case <-a.stopCh:
				return
			case <-ticker.C:
				a.announceAll()
			}
		}
	}()
}

func (a *Announcer) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
	a.wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()
	for addr, conn := range a.conns {
		if err := conn.Close(); err != nil {
			slog.Warn("Failed to close peer connection", "addr", addr, "Error", err.Error())
		}
		delete(a.conns, addr)
	}
}

func (a *Announcer) announceAll() {
	for _, target := range a.targets() {
		a.announce(target)
	}
}

// targets joins the configured seeds with the peer addresses learned so far,
// excluding the local address.
func (a *Announcer) targets() []string {
	seen := map[string]struct{}{a.localAddress: {}}
	var out []string
	for _, addr := range a.seeds {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	for _, addr := range a.registry.Addresses(a.local.ID) {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}

func (a *Announcer) announce(target string) {
	conn, err := a.conn(target)
	if err != nil {
		metrics.AnnouncesSent.WithLabelValues("error").Inc()
		slog.Warn("Failed to connect to peer", "addr", target, "Error", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	client := discoverypb.NewDiscoveryClient(conn)
	response, err := client.Announce(ctx, &discoverypb.AnnounceRequest{
		Instance: util.ToProtoInstance(a.local, a.localAddress),
	})
	if err != nil {
		metrics.AnnouncesSent.WithLabelValues("error").Inc()
		slog.Warn("Announce failed", "addr", target, "Error", err.Error())
		return
	}
	metrics.AnnouncesSent.WithLabelValues("ok").Inc()

	now := time.Now()
	for _, instance := range response.GetInstances() {
		descriptor, address := util.FromProtoInstance(instance)
		if descriptor.ID == "" || descriptor.ID == a.local.ID {
			continue
		}
		a.registry.Upsert(descriptor, address, now)
	}
}

func (a *Announcer) conn(target string) (*grpc.ClientConn, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if conn, ok := a.conns[target]; ok {
		return conn, nil
	}

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	a.conns[target] = conn
	return conn, nil
}
