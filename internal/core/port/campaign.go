package port

import (
	"context"
	"encoding/json"
	"errors"

	"seva-donate/internal/core/domain"
)

// ErrCampaignNotFound is returned when a referenced campaign id does
// not exist in the collection.
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrInvalidCollection is returned by bulk replace when the submitted
// payload is not a mapping from id to record (null, array or primitive).
var ErrInvalidCollection = errors.New("campaigns data is not an object")

// ErrInvalidCampaign is returned when a single campaign payload cannot
// be decoded into a record.
var ErrInvalidCampaign = errors.New("invalid campaign data")

// ErrStorageWrite wraps failures of the backing document's write path
// (permissions, disk full). Read failures are never surfaced; a missing
// or unparseable document reads as an empty collection.
var ErrStorageWrite = errors.New("campaign storage write failed")

// CampaignRepository is the outbound port for whole-document
// persistence. Load never fails: a missing or corrupt document is a
// valid "no campaigns yet" state. Save replaces the entire document.
type CampaignRepository interface {
	Load(ctx context.Context) (domain.CampaignCollection, error)
	Save(ctx context.Context, campaigns domain.CampaignCollection) error
}

// CampaignUseCase is the primary port for campaign management. All
// mutating operations are read-modify-write over the whole collection;
// implementations must serialize them so concurrent writers cannot
// clobber each other.
type CampaignUseCase interface {
	// EnsureInitialized bootstraps the default campaign when the store
	// is empty. Called once at startup; repeated calls are no-ops once
	// the collection holds at least one record.
	EnsureInitialized(ctx context.Context) error

	// List returns every campaign, bootstrapping the default record
	// when the collection is empty.
	List(ctx context.Context) (domain.CampaignCollection, error)

	// Get returns a single campaign by id. It never bootstraps; an
	// unknown id yields ErrCampaignNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// Upsert merges patch over the record at id, creating it when
	// absent. A fresh id is generated when id is empty. CreatedAt of an
	// existing record is preserved; UpdatedAt is always stamped.
	Upsert(ctx context.Context, id string, patch json.RawMessage) (*domain.Campaign, error)

	// Remove deletes the record at id, or returns ErrCampaignNotFound.
	Remove(ctx context.Context, id string) error

	// Replace overwrites the whole collection verbatim. The payload
	// must decode as a mapping from id to record; no merge, no
	// bootstrap, no per-record validation.
	Replace(ctx context.Context, raw json.RawMessage) (domain.CampaignCollection, error)
}
