package discovery

import (
	"sort"

	"toposcope/internal/topology"
)

// View is a concrete topology view assembled from the registry. It is
// immutable once built; the service replaces the current view by swapping
// the pointer, never by mutating in place.
type View struct {
	id        string
	instances []topology.InstanceDescriptor
}

func NewView(id string, instances []topology.InstanceDescriptor) *View {
	copied := make([]topology.InstanceDescriptor, len(instances))
	copy(copied, instances)
	sort.Slice(copied, func(i, j int) bool { return copied[i].ID < copied[j].ID })
	return &View{id: id, instances: copied}
}

func (v *View) ID() string {
	return v.id
}

func (v *View) Instances() []topology.InstanceDescriptor {
	out := make([]topology.InstanceDescriptor, len(v.instances))
	copy(out, v.instances)
	return out
}

// LocalInstance returns the descriptor flagged as local, if any.
func (v *View) LocalInstance() (topology.InstanceDescriptor, bool) {
	for _, instance := range v.instances {
		if instance.Local {
			return instance, true
		}
	}
	return topology.InstanceDescriptor{}, false
}
