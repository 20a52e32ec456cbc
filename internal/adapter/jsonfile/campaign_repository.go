package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seva-donate/internal/core/domain"
	"seva-donate/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on top of a
// single pretty-printed JSON document. Every save replaces the whole
// file; there is no per-record patching.
type CampaignRepository struct {
	path string
}

// NewCampaignRepository returns a repository backed by the document at
// path. The file and its parent directory do not need to exist yet.
func NewCampaignRepository(path string) *CampaignRepository {
	return &CampaignRepository{path: path}
}

// Load reads and parses the backing document. A missing or unparseable
// file is a valid "no campaigns yet" state and yields an empty, non-nil
// collection rather than an error.
func (r *CampaignRepository) Load(_ context.Context) (domain.CampaignCollection, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.CampaignCollection{}, nil
	}
	var campaigns domain.CampaignCollection
	if err = json.Unmarshal(data, &campaigns); err != nil || campaigns == nil {
		return domain.CampaignCollection{}, nil
	}
	return campaigns, nil
}

// Save serializes the full collection and overwrites the backing
// document. The parent directory is created when absent. Failures are
// wrapped in port.ErrStorageWrite.
func (r *CampaignRepository) Save(_ context.Context, campaigns domain.CampaignCollection) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", port.ErrStorageWrite, err)
		}
	}
	data, err := json.MarshalIndent(campaigns, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrStorageWrite, err)
	}
	if err = os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", port.ErrStorageWrite, err)
	}
	return nil
}
