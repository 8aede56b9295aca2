package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/pmylund/go-cache"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

// familyKeyUseCase implements FamilyKeyUseCase.
//
// When a cache TTL is configured, unwrapped DEKs are held in a TTL-bounded
// in-process cache so that a burst of requests for the same family costs one
// key-service round-trip instead of one per request. Each Resolve still
// returns its own handle backed by a private copy of the key, so closing one
// request's handle never clears another's.
type familyKeyUseCase struct {
	familyKeyRepo FamilyKeyRepository
	dekManager    cryptoService.DekManager
	cache         *gocache.Cache
	cacheTTL      time.Duration

	// cacheMu serializes access to the cached key bytes: Invalidate zeroes
	// the stored slice, which must not interleave with a reader's copy.
	cacheMu sync.Mutex
}

// NewFamilyKeyUseCase creates a FamilyKeyUseCase. A cacheTTL of zero or less
// disables DEK caching; every Resolve then calls the key service.
func NewFamilyKeyUseCase(
	familyKeyRepo FamilyKeyRepository,
	dekManager cryptoService.DekManager,
	cacheTTL time.Duration,
) FamilyKeyUseCase {
	u := &familyKeyUseCase{
		familyKeyRepo: familyKeyRepo,
		dekManager:    dekManager,
		cacheTTL:      cacheTTL,
	}
	if cacheTTL > 0 {
		u.cache = gocache.New(cacheTTL, cacheTTL)
	}
	return u
}

// CreateKeyRecord generates and wraps a fresh DEK for the family.
func (u *familyKeyUseCase) CreateKeyRecord(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, *cryptoDomain.KeyHandle, error) {
	key, wrapped, err := u.dekManager.GenerateAndWrap(ctx)
	if err != nil {
		return nil, nil, err
	}

	handle, err := cryptoDomain.NewKeyHandle(familyID, key)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, nil, err
	}

	familyKey := &cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: wrapped,
		CreatedAt:  time.Now().UTC(),
	}
	return familyKey, handle, nil
}

// PersistKeyRecord stores a key record inside the caller's transaction.
func (u *familyKeyUseCase) PersistKeyRecord(
	ctx context.Context,
	familyKey *cryptoDomain.FamilyKey,
) error {
	return u.familyKeyRepo.Create(ctx, familyKey)
}

// Resolve unwraps the family's DEK into a request-scoped handle.
func (u *familyKeyUseCase) Resolve(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.KeyHandle, error) {
	if key, ok := u.cachedKey(familyID); ok {
		return cryptoDomain.NewKeyHandle(familyID, key)
	}

	familyKey, err := u.familyKeyRepo.GetByFamilyID(ctx, familyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: family %s", cryptoDomain.ErrMissingKeyRecord, familyID)
		}
		return nil, err
	}

	key, err := u.dekManager.Unwrap(ctx, familyKey.WrappedDek)
	if err != nil {
		return nil, err
	}

	u.storeKey(familyID, key)
	return cryptoDomain.NewKeyHandle(familyID, key)
}

// Attach resolves the family's key and hydrates the given entities with it.
func (u *familyKeyUseCase) Attach(
	ctx context.Context,
	familyID uuid.UUID,
	entities ...cryptoDomain.Hydratable,
) (*cryptoDomain.KeyHandle, error) {
	handle, err := u.Resolve(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if err := cryptoDomain.Attach(handle, entities...); err != nil {
		handle.Close()
		return nil, err
	}
	return handle, nil
}

// Invalidate drops the family's cached DEK, zeroing it first.
func (u *familyKeyUseCase) Invalidate(familyID uuid.UUID) {
	if u.cache == nil {
		return
	}
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	cacheKey := familyID.String()
	if cached, ok := u.cache.Get(cacheKey); ok {
		if key, ok := cached.([]byte); ok {
			cryptoDomain.Zero(key)
		}
	}
	u.cache.Delete(cacheKey)
}

// cachedKey returns a private copy of the family's cached DEK, if present.
func (u *familyKeyUseCase) cachedKey(familyID uuid.UUID) ([]byte, bool) {
	if u.cache == nil {
		return nil, false
	}
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	cached, ok := u.cache.Get(familyID.String())
	if !ok {
		return nil, false
	}
	key, ok := cached.([]byte)
	if !ok || len(key) != cryptoDomain.KeySize {
		return nil, false
	}
	out := make([]byte, len(key))
	copy(out, key)
	return out, true
}

// storeKey caches a private copy of the family's DEK.
func (u *familyKeyUseCase) storeKey(familyID uuid.UUID, key []byte) {
	if u.cache == nil {
		return
	}
	stored := make([]byte, len(key))
	copy(stored, key)

	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	u.cache.Set(familyID.String(), stored, u.cacheTTL)
}
