package topology

// Partition is one group of a ViewChange split, together with a set of
// filters accumulated through the fluent methods. Get evaluates the AND of
// all attached filters over the group and returns the surviving ids.
//
// Because filters are pure, the result is the same regardless of the order
// in which they were attached or applied. Evaluation never mutates the
// underlying group, so calling Get again returns the same set. A Partition
// accumulates state and must not be shared across goroutines.
type Partition struct {
	members map[string]InstanceDescriptor
	filters []InstanceFilter
}

func newPartition(members map[string]InstanceDescriptor) *Partition {
	return &Partition{members: members}
}

// FilterWith attaches a custom filter. A nil filter is ignored.
func (p *Partition) FilterWith(filter InstanceFilter) *Partition {
	if filter != nil {
		p.filters = append(p.filters, filter)
	}
	return p
}

// IsLocal keeps only the instance representing the local process.
func (p *Partition) IsLocal() *Partition {
	return p.FilterWith(localFilter())
}

// IsNotLocal keeps only instances other than the local one.
func (p *Partition) IsNotLocal() *Partition {
	return p.FilterWith(Not(localFilter()))
}

// IsLeader keeps only cluster view leaders.
func (p *Partition) IsLeader() *Partition {
	return p.FilterWith(leaderFilter())
}

// IsNotLeader keeps only non-leader instances.
func (p *Partition) IsNotLeader() *Partition {
	return p.FilterWith(Not(leaderFilter()))
}

// IsInClusterView keeps only instances belonging to the cluster view with
// the given id.
func (p *Partition) IsInClusterView(clusterViewID string) *Partition {
	return p.FilterWith(InClusterView(clusterViewID))
}

// IsNotInClusterView keeps only instances outside the cluster view with the
// given id.
func (p *Partition) IsNotInClusterView(clusterViewID string) *Partition {
	return p.FilterWith(Not(InClusterView(clusterViewID)))
}

// Get returns the ids accepted by every attached filter. No filters means
// every id passes. An empty result is a valid outcome, not an error.
func (p *Partition) Get() map[string]struct{} {
	ids := make(map[string]struct{}, len(p.members))
	for id, instance := range p.members {
		if p.accepted(instance) {
			ids[id] = struct{}{}
		}
	}
	return ids
}

func (p *Partition) accepted(instance InstanceDescriptor) bool {
	for _, filter := range p.filters {
		if !filter.Accept(instance) {
			return false
		}
	}
	return true
}
