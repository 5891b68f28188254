package catalogue

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/catalogue/catalogueevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
)

// refresh replaces the local item mirror with the backend's current state.
// Items that disappeared from the backend keep their last known state.
func (s *service) refresh(c context.Context) (int, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Refresh catalogue from store backend")

	items, err := s.storeClient.FetchItems(c)
	if err != nil {
		return 0, err
	}

	err = s.itemStore.RunInTransaction(c, func(c context.Context) error {
		for _, item := range items {
			err := s.itemStore.Put(c, strconv.Itoa(item.ID), item)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}

		err := s.publisher.Publish(c, catalogueevents.TopicName, catalogueevents.CatalogueRefreshed{
			ItemCount: len(items)},
		)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

func (s *service) listItems(c context.Context) ([]shopmodel.Item, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all catalogue items")

	items, err := s.itemStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	// TODO sort in database
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	return items, nil
}

func (s service) getItem(c context.Context, itemID int) (shopmodel.Item, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch details of item %d", itemID)

	item, found, err := s.itemStore.Get(c, strconv.Itoa(itemID))
	if err != nil {
		return shopmodel.Item{}, myerrors.NewInternalError(err)
	}
	if !found {
		return shopmodel.Item{}, myerrors.NewNotFoundError(fmt.Errorf("item with id %d not found", itemID))
	}

	return item, nil
}
