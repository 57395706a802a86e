package repository

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/userhabitat/internal/domain"
	"github.com/dropDatabas3/userhabitat/internal/storage/jsonfile"
)

// Guard enforces the cross-collection invariant checked before a user is
// deleted: a user that still owns houses cannot go away, otherwise those
// houses would dangle.
type Guard struct {
	houses *jsonfile.Store[domain.House]
}

// NewGuard builds a guard over the houses store.
func NewGuard(houses *jsonfile.Store[domain.House]) *Guard {
	return &Guard{houses: houses}
}

// CanDeleteUser reports whether no house references userID as its owner.
func (g *Guard) CanDeleteUser(ctx context.Context, userID string) (bool, error) {
	houses, err := g.houses.LoadAll()
	if err != nil {
		return false, fmt.Errorf("load houses: %w", err)
	}
	for _, h := range houses {
		if h.OwnerID == userID {
			return false, nil
		}
	}
	return true, nil
}
