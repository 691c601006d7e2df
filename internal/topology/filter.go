package topology

// InstanceFilter decides whether a single instance belongs in a filtered
// result. Filters must be pure: the outcome may only depend on the
// descriptor, never on evaluation order or prior calls.
type InstanceFilter interface {
	Accept(instance InstanceDescriptor) bool
}

// FilterFunc adapts a plain predicate to an InstanceFilter.
type FilterFunc func(instance InstanceDescriptor) bool

func (f FilterFunc) Accept(instance InstanceDescriptor) bool {
	return f(instance)
}

// Not inverts the given filter.
func Not(filter InstanceFilter) InstanceFilter {
	return FilterFunc(func(instance InstanceDescriptor) bool {
		return !filter.Accept(instance)
	})
}

func localFilter() InstanceFilter {
	return FilterFunc(func(instance InstanceDescriptor) bool {
		return instance.Local
	})
}

func leaderFilter() InstanceFilter {
	return FilterFunc(func(instance InstanceDescriptor) bool {
		return instance.Leader
	})
}

// InClusterView keeps instances belonging to the cluster view with the given
// id.
func InClusterView(clusterViewID string) InstanceFilter {
	return FilterFunc(func(instance InstanceDescriptor) bool {
		return instance.ClusterViewID == clusterViewID
	})
}
