package topology

// InstanceDescriptor holds the observable facts about one cluster participant
// at the time a view was captured.
type InstanceDescriptor struct {
	ID            string
	Local         bool
	Leader        bool
	ClusterViewID string
	Properties    map[string]string
}

// View exposes the participants of a topology at one point in time.
type View interface {
	Instances() []InstanceDescriptor
}

// ChangeEvent carries the two successive views a change was observed between.
// Either view may be nil.
type ChangeEvent interface {
	OldView() View
	NewView() View
}
