package catalogueevents

const (
	TopicName              = "catalogue"
	catalogueRefreshedName = TopicName + ".refreshed"
)

// CatalogueRefreshed is published when the local catalogue mirror has been
// replaced with a fresh copy from the backend.
type CatalogueRefreshed struct {
	ItemCount int
}

func (e CatalogueRefreshed) GetEventTypeName() string {
	return catalogueRefreshedName
}

func (e CatalogueRefreshed) GetAggregateName() string {
	return "catalogue"
}
