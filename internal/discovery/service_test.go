package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toposcope/internal/topology"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

type recordingListener struct {
	events []*Event
}

func (l *recordingListener) HandleTopologyEvent(event *Event) {
	l.events = append(l.events, event)
}

type memoryJournal struct {
	records []*discoverypb.ChangeRecord
}

func (j *memoryJournal) Append(record *discoverypb.ChangeRecord) error {
	j.records = append(j.records, record)
	return nil
}

func newTestService(journal Journal) (*Service, *Registry) {
	registry := NewRegistry()
	service := NewService(Config{
		LocalInstance: topology.InstanceDescriptor{
			ID:            "node-1",
			Local:         true,
			ClusterViewID: "cv1",
		},
		LocalAddress:    "127.0.0.1:7946",
		SweepInterval:   time.Second,
		LivenessTimeout: 5 * time.Second,
	}, registry, journal)
	return service, registry
}

func TestService_firstSweepFiresInit(t *testing.T) {
	service, _ := newTestService(nil)
	listener := &recordingListener{}
	service.RegisterListener(listener)

	event := service.Sweep(time.Now())

	require.NotNil(t, event)
	assert.Equal(t, EventInit, event.Type())
	assert.Nil(t, event.OldView())
	require.NotNil(t, event.NewView())

	view := service.CurrentView()
	require.NotNil(t, view)
	local, ok := view.LocalInstance()
	require.True(t, ok)
	assert.Equal(t, "node-1", local.ID)
	assert.True(t, local.Leader, "sole instance should lead its cluster view")

	require.Len(t, listener.events, 1)
	assert.Same(t, event, listener.events[0])
}

func TestService_joinFiresChanged(t *testing.T) {
	service, registry := newTestService(nil)
	base := time.Now()

	require.NotNil(t, service.Sweep(base))

	registry.Upsert(topology.InstanceDescriptor{ID: "node-2", ClusterViewID: "cv1"}, "127.0.0.1:7947", base)
	event := service.Sweep(base.Add(time.Second))

	require.NotNil(t, event)
	assert.Equal(t, EventChanged, event.Type())

	change := topology.NewViewChangeFromEvent(event)
	added := change.Added().Get()
	require.Len(t, added, 1)
	_, ok := added["node-2"]
	assert.True(t, ok)
}

func TestService_noChangeYieldsNoEvent(t *testing.T) {
	service, _ := newTestService(nil)
	base := time.Now()

	require.NotNil(t, service.Sweep(base))
	assert.Nil(t, service.Sweep(base.Add(time.Second)))
	assert.Nil(t, service.Sweep(base.Add(2*time.Second)))
}

func TestService_staleInstanceFiresChanged(t *testing.T) {
	service, registry := newTestService(nil)
	base := time.Now()

	registry.Upsert(topology.InstanceDescriptor{ID: "node-2", ClusterViewID: "cv1"}, "", base)
	require.NotNil(t, service.Sweep(base))

	// node-2 never announces again; local refreshes itself on every sweep
	event := service.Sweep(base.Add(10 * time.Second))

	require.NotNil(t, event)
	assert.Equal(t, EventChanged, event.Type())

	change := topology.NewViewChangeFromEvent(event)
	removed := change.Removed().Get()
	_, ok := removed["node-2"]
	assert.True(t, ok)
}

func TestService_propertyChangeFiresPropertiesChanged(t *testing.T) {
	service, registry := newTestService(nil)
	base := time.Now()

	registry.Upsert(topology.InstanceDescriptor{
		ID:            "node-2",
		ClusterViewID: "cv1",
		Properties:    map[string]string{"zone": "a"},
	}, "", base)
	require.NotNil(t, service.Sweep(base))

	registry.Upsert(topology.InstanceDescriptor{
		ID:            "node-2",
		ClusterViewID: "cv1",
		Properties:    map[string]string{"zone": "b"},
	}, "", base.Add(time.Second))
	event := service.Sweep(base.Add(time.Second))

	require.NotNil(t, event)
	assert.Equal(t, EventPropertiesChanged, event.Type())
}

func TestService_clusterViewMoveFiresChanged(t *testing.T) {
	service, registry := newTestService(nil)
	base := time.Now()

	registry.Upsert(topology.InstanceDescriptor{ID: "node-2", ClusterViewID: "cv1"}, "", base)
	require.NotNil(t, service.Sweep(base))

	// same membership, same properties, but node-2 now reports another cluster view
	registry.Upsert(topology.InstanceDescriptor{ID: "node-2", ClusterViewID: "cv2"}, "", base.Add(time.Second))
	event := service.Sweep(base.Add(time.Second))

	require.NotNil(t, event)
	assert.Equal(t, EventChanged, event.Type())
}

func TestService_journalsChanges(t *testing.T) {
	journal := &memoryJournal{}
	service, registry := newTestService(journal)
	base := time.Now()

	require.NotNil(t, service.Sweep(base))

	registry.Upsert(topology.InstanceDescriptor{ID: "node-2", ClusterViewID: "cv1"}, "", base.Add(time.Second))
	require.NotNil(t, service.Sweep(base.Add(time.Second)))

	require.Len(t, journal.records, 2)

	first := journal.records[0]
	assert.Equal(t, uint64(1), first.GetEventId())
	assert.Equal(t, []string{"node-1"}, first.GetJoined())

	second := journal.records[1]
	assert.Equal(t, uint64(2), second.GetEventId())
	assert.Equal(t, []string{"node-2"}, second.GetJoined())
	assert.Empty(t, second.GetLeft())
}

// reentrantListener calls back into the service from its handler, which must
// not block against the sweep in progress.
type reentrantListener struct {
	service *Service
	views   []*View
}

func (l *reentrantListener) HandleTopologyEvent(event *Event) {
	l.views = append(l.views, l.service.CurrentView())
}

func TestService_listenerMayReenterService(t *testing.T) {
	service, _ := newTestService(nil)
	listener := &reentrantListener{service: service}
	service.RegisterListener(listener)

	done := make(chan *Event, 1)
	go func() { done <- service.Sweep(time.Now()) }()

	select {
	case event := <-done:
		require.NotNil(t, event)
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not return while a listener called back into the service")
	}

	require.Len(t, listener.views, 1)
	assert.Same(t, service.CurrentView(), listener.views[0])
}

func TestService_unregisterListener(t *testing.T) {
	service, _ := newTestService(nil)
	listener := &recordingListener{}

	service.RegisterListener(listener)
	service.UnregisterListener(listener)

	require.NotNil(t, service.Sweep(time.Now()))
	assert.Empty(t, listener.events)
}

func TestService_startStop(t *testing.T) {
	service, _ := newTestService(nil)

	service.Start()
	service.Stop()
}
