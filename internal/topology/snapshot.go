package topology

// snapshotOf keys a view's instances by id. A nil view yields an empty map,
// instances without an id are dropped, and a duplicated id keeps whichever
// instance came last.
func snapshotOf(view View) map[string]InstanceDescriptor {
	if view == nil {
		return map[string]InstanceDescriptor{}
	}

	instances := view.Instances()
	snapshot := make(map[string]InstanceDescriptor, len(instances))
	for _, instance := range instances {
		if instance.ID == "" {
			continue
		}
		snapshot[instance.ID] = instance
	}

	return snapshot
}
