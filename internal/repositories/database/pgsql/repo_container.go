package pgsql

import (
	portsrepo "github.com/SscSPs/auction_service/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the given pool.
func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AuctionRepo: newPgxAuctionRepository(dbPool),
	}
}
