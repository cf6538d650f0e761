package services

import (
	"github.com/SscSPs/auction_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/auction_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auction_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher events.AuctionEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auction: NewAuctionService(repos.AuctionRepo, WithEventPublisher(publisher)),
	}
}
