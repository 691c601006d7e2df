package properties

type ApplicationConfigProperties struct {
	Profile  string `yaml:"profile"`
	LogLevel string `yaml:"log-level"`
}

type NodeConfigProperties struct {
	ID            string            `yaml:"id"`
	ClusterViewID string            `yaml:"cluster-view-id"`
	Properties    map[string]string `yaml:"properties"`
}

type DiscoveryConfigProperties struct {
	HeartbeatInterval uint64   `yaml:"heartbeat-interval"`
	AnnounceTimeout   uint64   `yaml:"announce-timeout"`
	SweepInterval     uint64   `yaml:"sweep-interval"`
	LivenessTimeout   uint64   `yaml:"liveness-timeout"`
	Seeds             []string `yaml:"seeds"`
}

type JournalConfigProperties struct {
	Dir    string `yaml:"dir"`
	NoSync bool   `yaml:"no-sync"`
}

type TransportConfigProperties struct {
	Network              string `yaml:"network"`
	Address              string `yaml:"address"`
	Port                 string `yaml:"port"`
	Timeout              uint64 `yaml:"timeout"`
	MaxConcurrentStreams uint32 `yaml:"max-concurrent-streams"`
}

type MetricsConfigProperties struct {
	Address string `yaml:"address"`
}

type Config struct {
	Application ApplicationConfigProperties `yaml:"app"`
	Node        NodeConfigProperties        `yaml:"node"`
	Discovery   DiscoveryConfigProperties   `yaml:"discovery"`
	Transport   TransportConfigProperties   `yaml:"transport"`
	Journal     JournalConfigProperties     `yaml:"journal"`
	Metrics     MetricsConfigProperties     `yaml:"metrics"`
}
