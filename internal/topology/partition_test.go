package topology

import "testing"

func basePartition() *ViewChange {
	return NewViewChange(nil, view(
		InstanceDescriptor{ID: "local-leader", Local: true, Leader: true, ClusterViewID: "cv1"},
		InstanceDescriptor{ID: "local", Local: true, ClusterViewID: "cv1"},
		InstanceDescriptor{ID: "leader", Leader: true, ClusterViewID: "cv2"},
		InstanceDescriptor{ID: "plain", ClusterViewID: "cv2"},
	))
}

func TestPartition_noFiltersPassesEverything(t *testing.T) {
	requireIDs(t, basePartition().All(true).Get(),
		"local-leader", "local", "leader", "plain")
}

func TestPartition_fluentFilters(t *testing.T) {
	vc := basePartition()

	requireIDs(t, vc.All(true).IsLocal().Get(), "local-leader", "local")
	requireIDs(t, vc.All(true).IsNotLocal().Get(), "leader", "plain")
	requireIDs(t, vc.All(true).IsLeader().Get(), "local-leader", "leader")
	requireIDs(t, vc.All(true).IsNotLeader().Get(), "local", "plain")
	requireIDs(t, vc.All(true).IsInClusterView("cv1").Get(), "local-leader", "local")
	requireIDs(t, vc.All(true).IsNotInClusterView("cv1").Get(), "leader", "plain")
}

func TestPartition_conjunctionIsIntersection(t *testing.T) {
	vc := basePartition()

	both := vc.All(true).IsLocal().IsLeader().Get()

	localOnly := vc.All(true).IsLocal().Get()
	leaderOnly := vc.All(true).IsLeader().Get()

	intersection := map[string]struct{}{}
	for id := range localOnly {
		if _, ok := leaderOnly[id]; ok {
			intersection[id] = struct{}{}
		}
	}

	if len(both) != len(intersection) {
		t.Fatalf("conjunction %v != intersection %v", sortedIDs(both), sortedIDs(intersection))
	}
	for id := range both {
		if _, ok := intersection[id]; !ok {
			t.Fatalf("conjunction %v != intersection %v", sortedIDs(both), sortedIDs(intersection))
		}
	}
	requireIDs(t, both, "local-leader")
}

func TestPartition_filterOrderIrrelevant(t *testing.T) {
	vc := basePartition()

	forward := vc.All(true).IsLocal().IsNotLeader().Get()
	reverse := vc.All(true).IsNotLeader().IsLocal().Get()

	if len(forward) != len(reverse) {
		t.Fatalf("order changed result: %v vs %v", sortedIDs(forward), sortedIDs(reverse))
	}
	for id := range forward {
		if _, ok := reverse[id]; !ok {
			t.Fatalf("order changed result: %v vs %v", sortedIDs(forward), sortedIDs(reverse))
		}
	}
}

func TestPartition_negationIsComplement(t *testing.T) {
	vc := basePartition()

	all := vc.All(true).Get()
	local := vc.All(true).IsLocal().Get()
	notLocal := vc.All(true).IsNotLocal().Get()

	if len(local)+len(notLocal) != len(all) {
		t.Fatalf("local and not-local do not cover the partition")
	}
	for id := range notLocal {
		if _, ok := local[id]; ok {
			t.Fatalf("id %q accepted by both local and not-local", id)
		}
	}
}

func TestPartition_customFilter(t *testing.T) {
	vc := basePartition()

	ids := vc.All(true).FilterWith(FilterFunc(func(instance InstanceDescriptor) bool {
		return instance.ID == "plain"
	})).Get()

	requireIDs(t, ids, "plain")
}

func TestPartition_nilFilterIgnored(t *testing.T) {
	requireIDs(t, basePartition().All(true).FilterWith(nil).Get(),
		"local-leader", "local", "leader", "plain")
}

func TestPartition_getIsRepeatable(t *testing.T) {
	p := basePartition().All(true).IsLocal()

	first := p.Get()
	second := p.Get()

	if len(first) != len(second) {
		t.Fatalf("second Get differs: %v vs %v", sortedIDs(first), sortedIDs(second))
	}
	for id := range first {
		if _, ok := second[id]; !ok {
			t.Fatalf("second Get differs: %v vs %v", sortedIDs(first), sortedIDs(second))
		}
	}
}

func TestNot_invertsFilter(t *testing.T) {
	leaders := leaderFilter()
	nonLeaders := Not(leaders)

	leader := InstanceDescriptor{ID: "x", Leader: true}
	if !leaders.Accept(leader) || nonLeaders.Accept(leader) {
		t.Fatalf("Not did not invert for leader")
	}

	follower := InstanceDescriptor{ID: "y"}
	if leaders.Accept(follower) || !nonLeaders.Accept(follower) {
		t.Fatalf("Not did not invert for follower")
	}
}
