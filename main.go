package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopclient/lib/myhttpclient"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/myqueue"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/services/catalogue"
	"github.com/MarcGrol/shopclient/services/checkout"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/shopper"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	itemStore, itemStoreCleanup, err := mystore.New[shopmodel.Item](c)
	if err != nil {
		log.Fatalf("Error creating item store: %s", err)
	}
	defer itemStoreCleanup()

	customerStore, customerStoreCleanup, err := mystore.New[shopmodel.StoredCustomer](c)
	if err != nil {
		log.Fatalf("Error creating customer store: %s", err)
	}
	defer customerStoreCleanup()

	storeClient := storeapi.New(storeAPIBaseURL(), myhttpclient.New())

	catalogueService := catalogue.NewService(itemStore, storeClient, pubsub, publisher)
	err = catalogueService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalogue service: %s", err)
	}

	shopperService := shopper.NewService(customerStore, itemStore, storeClient, publisher)
	err = shopperService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering shopper service: %s", err)
	}

	checkoutService := checkout.NewService(customerStore, storeClient, nower, uuider, publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	startWebServerBlocking(router)
}

func storeAPIBaseURL() string {
	baseURL := os.Getenv("STORE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	return baseURL
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
