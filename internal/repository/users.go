// Package repository implements CRUD over the two record collections with
// the validation and referential-integrity rules of the API. Every operation
// does a fresh load of its backing document and, on mutation, a full save;
// nothing is cached across requests.
package repository

import (
	"context"
	"errors"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/domain"
	"github.com/dropDatabas3/userhabitat/internal/idgen"
	"github.com/dropDatabas3/userhabitat/internal/observability/logger"
	"github.com/dropDatabas3/userhabitat/internal/storage/jsonfile"
)

// Users exposes CRUD over the users collection.
type Users struct {
	store *jsonfile.Store[domain.User]
	guard *Guard
}

// NewUsers builds the user repository. The guard is consulted on delete.
func NewUsers(store *jsonfile.Store[domain.User], guard *Guard) *Users {
	return &Users{store: store, guard: guard}
}

// List returns the full collection in insertion order.
func (r *Users) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.store.LoadAll()
	if err != nil {
		return nil, apierr.Storage(err)
	}
	return users, nil
}

// Exists reports whether a user with the given id exists. Used by the house
// repository for owner checks.
func (r *Users) Exists(ctx context.Context, id string) (bool, error) {
	users, err := r.store.LoadAll()
	if err != nil {
		return false, apierr.Storage(err)
	}
	for _, u := range users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Create validates the body, assigns the next sequential id and appends the
// record. The id is the current collection size plus one, padded to four
// digits.
func (r *Users) Create(ctx context.Context, fields map[string]any) (domain.User, error) {
	if !validString(fields["name"]) {
		return domain.User{}, apierr.Validation("NAME")
	}

	var created domain.User
	err := r.store.Update(func(users []domain.User) ([]domain.User, error) {
		created = domain.UserFromFields(idgen.Next(len(users), idgen.UserWidth), fields)
		return append(users, created), nil
	})
	if err != nil {
		return domain.User{}, asAPIError(err)
	}

	logger.From(ctx).Info("user created", logger.UserID(created.ID))
	return created, nil
}

// Get returns the user with the given id.
func (r *Users) Get(ctx context.Context, id string) (domain.User, error) {
	users, err := r.store.LoadAll()
	if err != nil {
		return domain.User{}, apierr.Storage(err)
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, apierr.NotFoundf("User %s not found", id)
}

// Replace swaps the stored record's body for the request body wholesale:
// fields not resubmitted are dropped. The id is pinned.
func (r *Users) Replace(ctx context.Context, id string, fields map[string]any) (domain.User, error) {
	if !validString(fields["name"]) {
		return domain.User{}, apierr.Validation("NAME")
	}

	var updated domain.User
	err := r.store.Update(func(users []domain.User) ([]domain.User, error) {
		i := indexOfUser(users, id)
		if i < 0 {
			return nil, apierr.NotFoundf("User ID: %s not found", id)
		}
		users[i] = domain.UserFromFields(id, fields)
		updated = users[i]
		return users, nil
	})
	if err != nil {
		return domain.User{}, asAPIError(err)
	}
	return updated, nil
}

// Patch merges the request body over the stored record: fields not
// resubmitted are retained.
func (r *Users) Patch(ctx context.Context, id string, fields map[string]any) (domain.User, error) {
	if !validString(fields["name"]) {
		return domain.User{}, apierr.Validation("NAME")
	}

	var updated domain.User
	err := r.store.Update(func(users []domain.User) ([]domain.User, error) {
		i := indexOfUser(users, id)
		if i < 0 {
			return nil, apierr.NotFoundf("User ID: %s not found", id)
		}
		u := users[i]
		u.Merge(fields)
		users[i] = u
		updated = u
		return users, nil
	})
	if err != nil {
		return domain.User{}, asAPIError(err)
	}
	return updated, nil
}

// Delete removes the user unless the guard finds owned houses, in which case
// the record is left untouched and the operation fails with a conflict.
func (r *Users) Delete(ctx context.Context, id string) error {
	err := r.store.Update(func(users []domain.User) ([]domain.User, error) {
		i := indexOfUser(users, id)
		if i < 0 {
			return nil, apierr.NotFoundf("User ID: %s not found", id)
		}
		ok, err := r.guard.CanDeleteUser(ctx, id)
		if err != nil {
			return nil, apierr.Storage(err)
		}
		if !ok {
			return nil, apierr.Conflictf("The user %s cannot be deleted because it has associated houses", id)
		}
		return append(users[:i], users[i+1:]...), nil
	})
	if err != nil {
		return asAPIError(err)
	}

	logger.From(ctx).Info("user deleted", logger.UserID(id))
	return nil
}

func indexOfUser(users []domain.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// asAPIError passes typed failures through and wraps anything else (document
// read/write problems) as a storage error.
func asAPIError(err error) *apierr.Error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apierr.Storage(err)
}
