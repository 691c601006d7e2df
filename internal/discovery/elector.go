package discovery

import "toposcope/internal/topology"

// electLeaders marks exactly one leader per cluster view: the member with the
// lowest instance id. The choice is a pure function of membership, so every
// node that sees the same members elects the same leaders without any
// coordination.
func electLeaders(instances []topology.InstanceDescriptor) []topology.InstanceDescriptor {
	lowest := make(map[string]string)
	for _, instance := range instances {
		current, ok := lowest[instance.ClusterViewID]
		if !ok || instance.ID < current {
			lowest[instance.ClusterViewID] = instance.ID
		}
	}

	out := make([]topology.InstanceDescriptor, len(instances))
	for i, instance := range instances {
		instance.Leader = lowest[instance.ClusterViewID] == instance.ID
		out[i] = instance
	}
	return out
}
