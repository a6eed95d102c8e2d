package ports

// DeliveryMetrics defines the contract for lead and delivery metrics collection
type DeliveryMetrics interface {
	RecordLead(outcome string)
	RecordDelivery(channel, status string)
	RecordRender(set string, success bool)
}
