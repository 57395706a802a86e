package repository

import (
	"context"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/domain"
	"github.com/dropDatabas3/userhabitat/internal/idgen"
	"github.com/dropDatabas3/userhabitat/internal/observability/logger"
	"github.com/dropDatabas3/userhabitat/internal/storage/jsonfile"
)

// OwnerChecker is the part of the user repository the house repository needs:
// every house operation first verifies the referenced owner exists.
type OwnerChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Filter narrows a house listing. Empty fields are ignored; supplied fields
// are exact string matches combined with AND.
type Filter struct {
	City    string
	Address string
	Country string
}

// Houses exposes CRUD over the houses collection, scoped to an owning user.
type Houses struct {
	store  *jsonfile.Store[domain.House]
	owners OwnerChecker
}

// NewHouses builds the house repository.
func NewHouses(store *jsonfile.Store[domain.House], owners OwnerChecker) *Houses {
	return &Houses{store: store, owners: owners}
}

// checkOwner fails with NotFound when the referenced user does not exist.
func (r *Houses) checkOwner(ctx context.Context, ownerID string) error {
	ok, err := r.owners.Exists(ctx, ownerID)
	if err != nil {
		return asAPIError(err)
	}
	if !ok {
		return apierr.NotFoundf("User ID: %s not found", ownerID)
	}
	return nil
}

// ListForOwner returns the owner's houses, further narrowed by the filter.
func (r *Houses) ListForOwner(ctx context.Context, ownerID string, f Filter) ([]domain.House, error) {
	if err := r.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	houses, err := r.store.LoadAll()
	if err != nil {
		return nil, apierr.Storage(err)
	}

	out := make([]domain.House, 0, len(houses))
	for _, h := range houses {
		if h.OwnerID != ownerID {
			continue
		}
		if f.City != "" && h.City != f.City {
			continue
		}
		if f.Address != "" && h.Address != f.Address {
			continue
		}
		if f.Country != "" && h.Country != f.Country {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// Create validates the body (address, city, country — in that order, first
// failure wins), assigns the next id and appends. The counter is global
// across all owners, not per owner; ownerId comes from the path, never from
// the body.
func (r *Houses) Create(ctx context.Context, ownerID string, fields map[string]any) (domain.House, error) {
	if err := r.checkOwner(ctx, ownerID); err != nil {
		return domain.House{}, err
	}
	if err := requireHouseFields(fields); err != nil {
		return domain.House{}, err
	}

	var created domain.House
	err := r.store.Update(func(houses []domain.House) ([]domain.House, error) {
		created = domain.HouseFromFields(idgen.Next(len(houses), idgen.HouseWidth), ownerID, fields)
		return append(houses, created), nil
	})
	if err != nil {
		return domain.House{}, asAPIError(err)
	}

	logger.From(ctx).Info("house created", logger.HouseID(created.ID), logger.OwnerID(ownerID))
	return created, nil
}

// Replace swaps the stored record for {id, ownerId} plus the request body.
// The house must exist with both the given id and owner; id and ownerId are
// pinned even if the body tries to override them, and fields from a previous
// version not resubmitted are dropped.
func (r *Houses) Replace(ctx context.Context, ownerID, houseID string, fields map[string]any) (domain.House, error) {
	if err := r.checkOwner(ctx, ownerID); err != nil {
		return domain.House{}, err
	}

	var updated domain.House
	err := r.store.Update(func(houses []domain.House) ([]domain.House, error) {
		i := indexOfHouse(houses, houseID, ownerID)
		if i < 0 {
			return nil, apierr.NotFoundf("House ID: %s not found for user %s", houseID, ownerID)
		}
		if err := requireHouseFields(fields); err != nil {
			return nil, err
		}
		houses[i] = domain.HouseFromFields(houseID, ownerID, fields)
		updated = houses[i]
		return houses, nil
	})
	if err != nil {
		return domain.House{}, asAPIError(err)
	}
	return updated, nil
}

// Patch merges the supplied fields over the stored record. Validation is a
// disjunction: at least one of address/city/country must be present and a
// string, not each individually.
func (r *Houses) Patch(ctx context.Context, ownerID, houseID string, fields map[string]any) (domain.House, error) {
	if err := r.checkOwner(ctx, ownerID); err != nil {
		return domain.House{}, err
	}

	var updated domain.House
	err := r.store.Update(func(houses []domain.House) ([]domain.House, error) {
		i := indexOfHouse(houses, houseID, ownerID)
		if i < 0 {
			return nil, apierr.NotFoundf("House ID: %s not found for user %s", houseID, ownerID)
		}
		if !validString(fields["address"]) && !validString(fields["city"]) && !validString(fields["country"]) {
			return nil, apierr.ValidationGeneric()
		}
		h := houses[i]
		h.Merge(fields)
		houses[i] = h
		updated = h
		return houses, nil
	})
	if err != nil {
		return domain.House{}, asAPIError(err)
	}
	return updated, nil
}

// Delete removes the house. Houses have no dependents, so there is no
// conflict check.
func (r *Houses) Delete(ctx context.Context, ownerID, houseID string) error {
	if err := r.checkOwner(ctx, ownerID); err != nil {
		return err
	}

	err := r.store.Update(func(houses []domain.House) ([]domain.House, error) {
		i := indexOfHouse(houses, houseID, ownerID)
		if i < 0 {
			return nil, apierr.NotFoundf("House ID: %s for user %s not found", houseID, ownerID)
		}
		return append(houses[:i], houses[i+1:]...), nil
	})
	if err != nil {
		return asAPIError(err)
	}

	logger.From(ctx).Info("house deleted", logger.HouseID(houseID), logger.OwnerID(ownerID))
	return nil
}

func indexOfHouse(houses []domain.House, id, ownerID string) int {
	for i, h := range houses {
		if h.ID == id && h.OwnerID == ownerID {
			return i
		}
	}
	return -1
}

// requireHouseFields checks the three required fields in order; the error
// names the first one that is missing or wrong-typed.
func requireHouseFields(fields map[string]any) *apierr.Error {
	if !validString(fields["address"]) {
		return apierr.Validation("ADDRESS")
	}
	if !validString(fields["city"]) {
		return apierr.Validation("CITY")
	}
	if !validString(fields["country"]) {
		return apierr.Validation("COUNTRY")
	}
	return nil
}
