package endpoint

import (
	"context"
	"log/slog"
	"time"

	"toposcope/internal/discovery"
	discoverypb "toposcope/internal/transport/gen/discovery"
	"toposcope/internal/transport/util"
)

type GRPCServer struct {
	discoverypb.UnimplementedDiscoveryServer
	Registry *discovery.Registry
}

// Announce records the caller's descriptor and answers with every instance
// this node currently knows about. Announcements without an instance id are
// dropped, matching the snapshot builder's tolerance for malformed entries.
func (s *GRPCServer) Announce(ctx context.Context, request *discoverypb.AnnounceRequest) (*discoverypb.AnnounceResponse, error) {
	instance := request.GetInstance()
	if instance.GetId() == "" {
		slog.Warn("Dropping announce without instance id")
		return s.knownInstances(), nil
	}

	descriptor, address := util.FromProtoInstance(instance)
	s.Registry.Upsert(descriptor, address, time.Now())

	return s.knownInstances(), nil
}

func (s *GRPCServer) knownInstances() *discoverypb.AnnounceResponse {
	members := s.Registry.Members()
	instances := make([]*discoverypb.Instance, 0, len(members))
	for _, member := range members {
		instances = append(instances, util.ToProtoInstance(member.Descriptor, member.Address))
	}
	return &discoverypb.AnnounceResponse{Instances: instances}
}
