package topology

import "testing"

func TestSnapshotOf_nilView(t *testing.T) {
	snapshot := snapshotOf(nil)
	if len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", len(snapshot))
	}
}

func TestSnapshotOf_dropsInstancesWithoutID(t *testing.T) {
	snapshot := snapshotOf(view(
		InstanceDescriptor{ID: "", Leader: true},
		instance("a"),
	))

	if len(snapshot) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snapshot))
	}
	if _, ok := snapshot["a"]; !ok {
		t.Fatalf("expected id a to survive")
	}
}

func TestSnapshotOf_duplicateIDLastWins(t *testing.T) {
	snapshot := snapshotOf(view(
		InstanceDescriptor{ID: "a", ClusterViewID: "first"},
		InstanceDescriptor{ID: "a", ClusterViewID: "second"},
	))

	if len(snapshot) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snapshot))
	}
	if snapshot["a"].ClusterViewID != "second" {
		t.Fatalf("expected later duplicate to win, got %q", snapshot["a"].ClusterViewID)
	}
}
