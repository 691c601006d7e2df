package properties

type ConfigProvider interface {
	GetApplication() *ApplicationConfigProperties
	GetNode() *NodeConfigProperties
	GetDiscovery() *DiscoveryConfigProperties
	GetTransport() *TransportConfigProperties
	GetJournal() *JournalConfigProperties
	GetMetrics() *MetricsConfigProperties
}

type AppConfigProvider struct {
	config *Config
}

func NewProvider(cfg *Config) *AppConfigProvider {
	return &AppConfigProvider{config: cfg}
}

func (c *AppConfigProvider) GetApplication() *ApplicationConfigProperties {
	return &c.config.Application
}

func (c *AppConfigProvider) GetNode() *NodeConfigProperties {
	return &c.config.Node
}

func (c *AppConfigProvider) GetDiscovery() *DiscoveryConfigProperties {
	return &c.config.Discovery
}

func (c *AppConfigProvider) GetTransport() *TransportConfigProperties {
	return &c.config.Transport
}

func (c *AppConfigProvider) GetJournal() *JournalConfigProperties {
	return &c.config.Journal
}

func (c *AppConfigProvider) GetMetrics() *MetricsConfigProperties {
	return &c.config.Metrics
}
