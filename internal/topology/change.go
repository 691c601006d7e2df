package topology

import "maps"

// ViewChange computes the difference between two topology views. Instances
// are compared by id only; two descriptors with the same id are considered
// the same participant.
//
// The partition operations split the union of both views into three groups
// (added, removed, retained) such that no id belongs to more than one group.
// A ViewChange is immutable after construction and safe for concurrent use.
type ViewChange struct {
	oldInstances map[string]InstanceDescriptor
	newInstances map[string]InstanceDescriptor
}

// NewViewChange builds a change between two views. Either view may be nil, in
// which case an empty view is used in its place.
func NewViewChange(oldView, newView View) *ViewChange {
	return &ViewChange{
		oldInstances: snapshotOf(oldView),
		newInstances: snapshotOf(newView),
	}
}

// NewViewChangeFromEvent builds a change from the views carried by an event.
// A nil event is treated as two empty views.
func NewViewChangeFromEvent(event ChangeEvent) *ViewChange {
	if event == nil {
		return NewViewChange(nil, nil)
	}
	return NewViewChange(event.OldView(), event.NewView())
}

// All returns the union partition. For ids present in both views the
// descriptor from the new view wins when useNew is true, otherwise the old
// one wins. The flag selects the winning side, same as in Retained.
func (vc *ViewChange) All(useNew bool) *Partition {
	members := make(map[string]InstanceDescriptor, len(vc.oldInstances)+len(vc.newInstances))
	if useNew {
		copyInto(members, vc.oldInstances)
		copyInto(members, vc.newInstances)
	} else {
		copyInto(members, vc.newInstances)
		copyInto(members, vc.oldInstances)
	}
	return newPartition(members)
}

// Added returns the partition of ids present in the new view but not in the
// old one, carrying their new-view descriptors.
func (vc *ViewChange) Added() *Partition {
	members := make(map[string]InstanceDescriptor)
	for id, instance := range vc.newInstances {
		if _, ok := vc.oldInstances[id]; !ok {
			members[id] = instance
		}
	}
	return newPartition(members)
}

// Removed returns the partition of ids present in the old view but not in the
// new one, carrying their old-view descriptors.
func (vc *ViewChange) Removed() *Partition {
	members := make(map[string]InstanceDescriptor)
	for id, instance := range vc.oldInstances {
		if _, ok := vc.newInstances[id]; !ok {
			members[id] = instance
		}
	}
	return newPartition(members)
}

// Retained returns the partition of ids present in both views. The descriptor
// kept for filtering comes from the new view when useNew is true, otherwise
// from the old one.
func (vc *ViewChange) Retained(useNew bool) *Partition {
	members := make(map[string]InstanceDescriptor)
	for id, oldInstance := range vc.oldInstances {
		newInstance, ok := vc.newInstances[id]
		if !ok {
			continue
		}
		if useNew {
			members[id] = newInstance
		} else {
			members[id] = oldInstance
		}
	}
	return newPartition(members)
}

// RetainedWhereProperties restricts Retained to ids whose property maps
// differ between the two views (changed=true) or are equal (changed=false).
func (vc *ViewChange) RetainedWhereProperties(useNew, changed bool) *Partition {
	members := make(map[string]InstanceDescriptor)
	for id, oldInstance := range vc.oldInstances {
		newInstance, ok := vc.newInstances[id]
		if !ok {
			continue
		}
		if maps.Equal(oldInstance.Properties, newInstance.Properties) == changed {
			continue
		}
		if useNew {
			members[id] = newInstance
		} else {
			members[id] = oldInstance
		}
	}
	return newPartition(members)
}

func copyInto(dst, src map[string]InstanceDescriptor) {
	for id, instance := range src {
		dst[id] = instance
	}
}
