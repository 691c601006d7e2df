package discovery

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"toposcope/internal/metrics"
	"toposcope/internal/topology"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

// Listener receives topology events. Listeners are invoked sequentially on
// the sweep goroutine; a slow listener delays change delivery.
type Listener interface {
	HandleTopologyEvent(event *Event)
}

// Journal persists one record per observed change.
type Journal interface {
	Append(record *discoverypb.ChangeRecord) error
}

type Config struct {
	LocalInstance   topology.InstanceDescriptor
	LocalAddress    string
	SweepInterval   time.Duration
	LivenessTimeout time.Duration
}

// Service owns the current topology view. A sweep prunes members that
// stopped announcing, rebuilds the view, and compares it to the previous one
// with a ViewChange; when the two differ an event is classified, journaled
// and delivered to the listeners.
type Service struct {
	registry *Registry
	journal  Journal

	localInstance topology.InstanceDescriptor
	localAddress  string

	sweepInterval   time.Duration
	livenessTimeout time.Duration

	mu        sync.Mutex
	current   *View
	viewSeq   uint64
	eventSeq  uint64
	listeners []Listener

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService wires a discovery service. The journal may be nil, in which
// case changes are not persisted.
func NewService(cfg Config, registry *Registry, journal Journal) *Service {
	return &Service{
		registry:        registry,
		journal:         journal,
		localInstance:   cfg.LocalInstance,
		localAddress:    cfg.LocalAddress,
		sweepInterval:   cfg.SweepInterval,
		livenessTimeout: cfg.LivenessTimeout,
		stopCh:          make(chan struct{}),
	}
}

func (s *Service) RegisterListener(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Service) UnregisterListener(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, registered := range s.listeners {
		if registered == listener {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// CurrentView returns the last published view, or nil before the first
// sweep.
func (s *Service) CurrentView() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) Start() {
	slog.Info(fmt.Sprintf("Starting discovery sweep every %s, liveness timeout %s",
		s.sweepInterval, s.livenessTimeout))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case now := <-ticker.C:
				s.Sweep(now)
			}
		}
	}()
}

func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Discovery service stopped")
}

// Sweep runs one discovery round at the given time. It refreshes the local
// instance, prunes stale members, publishes the new view if it differs from
// the current one, and returns the fired event, or nil when nothing changed.
func (s *Service) Sweep(now time.Time) *Event {
	start := time.Now()
	defer func() {
		metrics.DiscoverySweepDuration.Observe(time.Since(start).Seconds())
	}()

	s.registry.Upsert(s.localInstance, s.localAddress, now)
	if dropped := s.registry.Prune(now.Add(-s.livenessTimeout)); len(dropped) > 0 {
		sort.Strings(dropped)
		slog.Info("Pruned stale instances", "ids", dropped)
	}

	instances := s.assembleInstances()

	s.mu.Lock()

	candidate := NewView(fmt.Sprintf("view-%d", s.viewSeq+1), instances)

	var oldView topology.View
	if s.current != nil {
		oldView = s.current
	}
	change := topology.NewViewChange(oldView, candidate)

	added := change.Added().Get()
	removed := change.Removed().Get()
	propertyChanged := change.RetainedWhereProperties(true, true).Get()

	var typ EventType
	switch {
	case s.current == nil:
		typ = EventInit
	case len(added) > 0 || len(removed) > 0:
		typ = EventChanged
	case clusterViewShifted(s.current, candidate):
		typ = EventChanged
	case len(propertyChanged) > 0:
		typ = EventPropertiesChanged
	default:
		s.observeView(candidate)
		s.mu.Unlock()
		return nil
	}

	previous := s.current
	s.current = candidate
	s.viewSeq++
	s.eventSeq++
	eventID := s.eventSeq
	s.observeView(candidate)

	// Snapshot the listeners and release the lock before any callbacks, so
	// a listener may call back into the service without deadlocking.
	notify := make([]Listener, len(s.listeners))
	copy(notify, s.listeners)
	s.mu.Unlock()

	event := NewEvent(typ, previous, candidate)
	s.appendRecord(now, eventID, added, removed, propertyChanged)

	metrics.DiscoveryChangesTotal.WithLabelValues(typ.String()).Inc()
	metrics.DiscoveryInstancesJoined.Add(float64(len(added)))
	metrics.DiscoveryInstancesLeft.Add(float64(len(removed)))
	metrics.DiscoveryPropertyChanges.Add(float64(len(propertyChanged)))

	slog.Info("Topology changed",
		"type", typ.String(),
		"view", candidate.ID(),
		"joined", len(added),
		"left", len(removed),
		"property-changed", len(propertyChanged))

	for _, listener := range notify {
		listener.HandleTopologyEvent(event)
	}

	return event
}

func (s *Service) assembleInstances() []topology.InstanceDescriptor {
	members := s.registry.Members()
	instances := make([]topology.InstanceDescriptor, 0, len(members))
	for _, member := range members {
		descriptor := member.Descriptor
		descriptor.Local = descriptor.ID == s.localInstance.ID
		instances = append(instances, descriptor)
	}
	return electLeaders(instances)
}

func (s *Service) observeView(view *View) {
	metrics.DiscoveryClusterSize.Set(float64(len(view.instances)))

	leading := 0.0
	if local, ok := view.LocalInstance(); ok && local.Leader {
		leading = 1.0
	}
	metrics.DiscoveryIsLeader.Set(leading)
}

func (s *Service) appendRecord(now time.Time, eventID uint64, added, removed, propertyChanged map[string]struct{}) {
	if s.journal == nil {
		return
	}

	record := &discoverypb.ChangeRecord{
		EventId:    eventID,
		UnixMillis: now.UnixMilli(),
		Joined:     sortedKeys(added),
		Left:       sortedKeys(removed),
		Changed:    sortedKeys(propertyChanged),
	}
	if err := s.journal.Append(record); err != nil {
		metrics.JournalAppendErrors.Inc()
		slog.Error("Failed to journal topology change", "Error", err.Error())
	}
}

// clusterViewShifted reports whether any instance present in both views moved
// to a different cluster view. Such a move changes leadership scope even when
// membership and properties stay the same.
func clusterViewShifted(oldView, newView *View) bool {
	previous := make(map[string]string, len(oldView.instances))
	for _, instance := range oldView.instances {
		previous[instance.ID] = instance.ClusterViewID
	}
	for _, instance := range newView.instances {
		if before, ok := previous[instance.ID]; ok && before != instance.ClusterViewID {
			return true
		}
	}
	return false
}

func sortedKeys(ids map[string]struct{}) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
