package util

import (
	"sort"

	"toposcope/internal/topology"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

// ToProtoInstance encodes a descriptor for the wire. The local flag is not
// carried: locality only has meaning on the observing node. Properties are
// emitted in key order so identical descriptors encode identically.
func ToProtoInstance(descriptor topology.InstanceDescriptor, address string) *discoverypb.Instance {
	keys := make([]string, 0, len(descriptor.Properties))
	for key := range descriptor.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	properties := make([]*discoverypb.Property, 0, len(keys))
	for _, key := range keys {
		properties = append(properties, &discoverypb.Property{
			Key:   key,
			Value: descriptor.Properties[key],
		})
	}

	return &discoverypb.Instance{
		Id:            descriptor.ID,
		ClusterViewId: descriptor.ClusterViewID,
		IsLeader:      descriptor.Leader,
		Address:       address,
		Properties:    properties,
	}
}

// FromProtoInstance decodes a wire instance into a descriptor plus its
// announce address.
func FromProtoInstance(instance *discoverypb.Instance) (topology.InstanceDescriptor, string) {
	var properties map[string]string
	if len(instance.GetProperties()) > 0 {
		properties = make(map[string]string, len(instance.GetProperties()))
		for _, property := range instance.GetProperties() {
			properties[property.GetKey()] = property.GetValue()
		}
	}

	return topology.InstanceDescriptor{
		ID:            instance.GetId(),
		Leader:        instance.GetIsLeader(),
		ClusterViewID: instance.GetClusterViewId(),
		Properties:    properties,
	}, instance.GetAddress()
}
