package configuration

import (
	"toposcope/internal/configuration/properties"
	"toposcope/internal/configuration/util"
)

// Load reads the base application.yml from dir, overlays the profile file if
// a profile is set, fills defaults and validates the result.
func Load(dir string) (*properties.Config, error) {
	cfg, err := util.LoadBaseConfig(dir)
	if err != nil {
		return nil, err
	}

	if err := util.LoadProfileConfig(dir, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *properties.Config) {
	if cfg.Application.LogLevel == "" {
		cfg.Application.LogLevel = "info"
	}
	if cfg.Node.ClusterViewID == "" {
		cfg.Node.ClusterViewID = "default"
	}
	if cfg.Discovery.HeartbeatInterval == 0 {
		cfg.Discovery.HeartbeatInterval = 1000
	}
	if cfg.Discovery.AnnounceTimeout == 0 {
		cfg.Discovery.AnnounceTimeout = 500
	}
	if cfg.Discovery.SweepInterval == 0 {
		cfg.Discovery.SweepInterval = 1000
	}
	if cfg.Discovery.LivenessTimeout == 0 {
		cfg.Discovery.LivenessTimeout = 5000
	}
	if cfg.Transport.Network == "" {
		cfg.Transport.Network = "tcp"
	}
}

func validate(cfg *properties.Config) error {
	if cfg.Node.ID == "" {
		return ErrMissingNodeID
	}
	if cfg.Transport.Port == "" {
		return ErrMissingTransportPort
	}
	if cfg.Discovery.LivenessTimeout < cfg.Discovery.HeartbeatInterval {
		return ErrLivenessBelowHeartbeat
	}
	return nil
}
