package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"seva-donate/internal/core/domain"
	"seva-donate/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase over a
// whole-document repository. Every mutation is a read-modify-write of
// the entire collection, so all writers are serialized through one
// in-process mutex; without it two concurrent upserts on distinct ids
// could silently clobber each other.
type CampaignUseCase struct {
	repo port.CampaignRepository

	mu sync.Mutex

	// newID generates fresh campaign ids. Injected so tests can pin it.
	newID func() string
	// now supplies timestamps. Injected so tests can pin it.
	now func() time.Time
}

// NewCampaignUseCase creates a usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// EnsureInitialized bootstraps the default campaign when the store is
// empty. main calls it once at startup so a read-only deployment never
// serves a 404 for the default id.
func (u *CampaignUseCase) EnsureInitialized(ctx context.Context) error {
	_, err := u.List(ctx)
	return err
}

// List returns every campaign. An empty collection is bootstrapped with
// exactly one default record and persisted before returning; repeated
// calls never re-insert it once the collection is non-empty.
func (u *CampaignUseCase) List(ctx context.Context) (domain.CampaignCollection, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		campaigns[domain.DefaultCampaignID] = domain.DefaultCampaign(u.now())
		if err = u.repo.Save(ctx, campaigns); err != nil {
			return nil, err
		}
	}
	return campaigns, nil
}

// Get projects a single record out of the collection. It does not
// bootstrap: an uninitialized store yields ErrCampaignNotFound even for
// the default id.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	campaigns, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := campaigns[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return &c, nil
}

// Upsert merges patch over the record at id, creating it when absent.
// Because decoding starts from the existing record, fields absent from
// the patch keep their stored values. The id field always matches the
// key, CreatedAt of an existing record survives any patch, and
// UpdatedAt is stamped on every call. An empty id gets a generated one.
func (u *CampaignUseCase) Upsert(ctx context.Context, id string, patch json.RawMessage) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if id == "" {
		id = u.newID()
	}
	record, existed := campaigns[id]
	if err = json.Unmarshal(patch, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCampaign, err)
	}

	now := u.now()
	record.ID = id
	record.UpdatedAt = now
	if existed {
		record.CreatedAt = campaigns[id].CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}

	campaigns[id] = record
	if err = u.repo.Save(ctx, campaigns); err != nil {
		return nil, err
	}
	return &record, nil
}

// Remove deletes the record at id and persists the shrunk collection.
// Deleting an unknown id is a no-op reported as ErrCampaignNotFound.
func (u *CampaignUseCase) Remove(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := campaigns[id]; !ok {
		return port.ErrCampaignNotFound
	}
	delete(campaigns, id)
	return u.repo.Save(ctx, campaigns)
}

// Replace overwrites the whole collection with raw, verbatim. The
// payload must be a JSON object mapping id to record; null, arrays and
// primitives are rejected with ErrInvalidCollection. Records are not
// validated individually — this is a deliberately trusting bulk
// endpoint for the back office.
func (u *CampaignUseCase) Replace(ctx context.Context, raw json.RawMessage) (domain.CampaignCollection, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, port.ErrInvalidCollection
	}
	var campaigns domain.CampaignCollection
	if err := json.Unmarshal(trimmed, &campaigns); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCollection, err)
	}
	if campaigns == nil {
		campaigns = domain.CampaignCollection{}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.repo.Save(ctx, campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}
