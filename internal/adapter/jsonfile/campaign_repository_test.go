package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"seva-donate/internal/core/domain"
	"seva-donate/internal/core/port"
)

func testCampaign(id string) domain.Campaign {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.Campaign{
		ID:               id,
		Header:           "Test Campaign",
		BannerImageURL:   "https://example.com/banner.jpg",
		CampaignImageURL: "https://example.com/campaign.jpg",
		Details:          "First paragraph.\n\nSecond paragraph.",
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// TestRoundTrip verifies that a saved collection loads back identical
// and that no default record is injected into a non-empty collection.
func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(filepath.Join(t.TempDir(), "campaigns.json"))

	want := domain.CampaignCollection{
		"alpha": testCampaign("alpha"),
		"beta":  testCampaign("beta"),
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestLoadMissingFile verifies that a never-written store reads as an
// empty collection rather than an error.
func TestLoadMissingFile(t *testing.T) {
	repo := NewCampaignRepository(filepath.Join(t.TempDir(), "nope", "campaigns.json"))

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

// TestLoadCorruptFile verifies that an unparseable document is treated
// as empty, keeping the app usable instead of failing reads.
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := NewCampaignRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestSaveCreatesParentDir verifies mkdir-on-demand for the document's
// directory.
func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "campaigns.json")
	repo := NewCampaignRepository(path)

	err := repo.Save(context.Background(), domain.CampaignCollection{"a": testCampaign("a")})
	require.NoError(t, err)

	if _, err = os.Stat(path); err != nil {
		t.Fatalf("expected document at %s: %v", path, err)
	}
}

// TestSaveUnwritable verifies write failures surface as ErrStorageWrite.
func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be.
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewCampaignRepository(filepath.Join(blocker, "campaigns.json"))
	err := repo.Save(context.Background(), domain.CampaignCollection{})
	if !errors.Is(err, port.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
}

// TestDocumentIsPrettyPrinted verifies the persisted layout stays
// human-readable.
func TestDocumentIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	repo := NewCampaignRepository(path)
	require.NoError(t, repo.Save(context.Background(), domain.CampaignCollection{"a": testCampaign("a")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"a\": {")
}
