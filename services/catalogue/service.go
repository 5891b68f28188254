package catalogue

import (
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type service struct {
	itemStore   mystore.Store[shopmodel.Item]
	storeClient storeapi.StoreClient
	subscriber  mypubsub.PubSub
	publisher   mypublisher.Publisher
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(itemStore mystore.Store[shopmodel.Item], storeClient storeapi.StoreClient, subscriber mypubsub.PubSub, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		itemStore:   itemStore,
		storeClient: storeClient,
		subscriber:  subscriber,
		publisher:   publisher,
		logger:      logger,
	}
}
