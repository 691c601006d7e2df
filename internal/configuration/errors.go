package configuration

import "errors"

var (
	ErrMissingNodeID = errors.New("node id is required")

	ErrMissingTransportPort = errors.New("transport port is required")

	ErrLivenessBelowHeartbeat = errors.New("liveness timeout must not be below the heartbeat interval")
)
