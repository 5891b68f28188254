package catalogue

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/catalogue/catalogueevents"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
)

func (s *service) Subscribe(c context.Context) error {

	err := s.publisher.CreateTopic(c, catalogueevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", catalogueevents.TopicName, err)
	}

	err = s.subscriber.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/catalogue/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

// OnCheckoutCompleted refreshes the mirror because a confirmed order changed
// stock levels on the backend.
func (s *service) OnCheckoutCompleted(c context.Context, topic string, event checkoutevents.CheckoutCompleted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: order %s completed, refreshing catalogue", event.OrderUID)

	_, err := s.refresh(c)
	if err != nil {
		return err
	}

	return nil
}
