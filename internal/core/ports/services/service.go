package services

// ServiceContainer holds instances of all the application services.
// It is what the handlers receive when routes are registered.
type ServiceContainer struct {
	Auction AuctionSvcFacade
}
