package discovery

import (
	"sync"
	"time"

	"toposcope/internal/topology"
)

// Member is one registered instance together with the liveness bookkeeping
// the registry needs.
type Member struct {
	Descriptor topology.InstanceDescriptor
	Address    string
	LastSeen   time.Time
}

// Registry tracks the instances currently known to this node, keyed by
// instance id. Announcements refresh the LastSeen timestamp; instances that
// stop announcing are removed by Prune.
type Registry struct {
	mu      sync.RWMutex
	members map[string]Member
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[string]Member),
	}
}

// Upsert records an announcement. Instances without an id are ignored, the
// same tolerance the snapshot builder applies.
func (r *Registry) Upsert(descriptor topology.InstanceDescriptor, address string, seen time.Time) {
	if descriptor.ID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[descriptor.ID] = Member{
		Descriptor: descriptor,
		Address:    address,
		LastSeen:   seen,
	}
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, id)
}

// Prune drops every member last seen before the deadline and returns the ids
// that were dropped.
func (r *Registry) Prune(deadline time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var dropped []string
	for id, member := range r.members {
		if member.LastSeen.Before(deadline) {
			dropped = append(dropped, id)
			delete(r.members, id)
		}
	}
	return dropped
}

// Members returns a copy of the current membership.
func (r *Registry) Members() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		out = append(out, member)
	}
	return out
}

// Addresses returns the known peer addresses, excluding the given id.
func (r *Registry) Addresses(excludeID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for id, member := range r.members {
		if id == excludeID || member.Address == "" {
			continue
		}
		out = append(out, member.Address)
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
