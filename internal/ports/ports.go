package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Delivery
	EmailProvider EmailProvider
	ChatNotifier  ChatNotifier

	// Protection
	RateLimitStore RateLimitStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        DeliveryMetrics
}
