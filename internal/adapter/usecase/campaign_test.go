package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"seva-donate/internal/adapter/jsonfile"
	"seva-donate/internal/core/domain"
	"seva-donate/internal/core/port"
)

func newTestUseCase(t *testing.T) *CampaignUseCase {
	t.Helper()
	repo := jsonfile.NewCampaignRepository(filepath.Join(t.TempDir(), "campaigns.json"))
	return NewCampaignUseCase(repo)
}

// TestBootstrapIdempotence ensures listing an empty store synthesizes
// exactly one default record and that repeated lists do not re-insert
// or re-stamp it.
func TestBootstrapIdempotence(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	first, err := u.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	def, ok := first[domain.DefaultCampaignID]
	if !ok {
		t.Fatalf("default campaign missing, got ids %v", first)
	}
	if !def.Active {
		t.Fatal("default campaign must be active")
	}

	second, err := u.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, def.CreatedAt, second[domain.DefaultCampaignID].CreatedAt)
}

// TestGetDoesNotBootstrap documents the read asymmetry: a direct Get on
// a never-initialized store returns not-found rather than the default
// record. Startup calls EnsureInitialized to paper over this for
// deployed servers.
func TestGetDoesNotBootstrap(t *testing.T) {
	u := newTestUseCase(t)

	_, err := u.Get(context.Background(), domain.DefaultCampaignID)
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// TestEnsureInitialized verifies the startup bootstrap makes Get
// consistent with List.
func TestEnsureInitialized(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	require.NoError(t, u.EnsureInitialized(ctx))

	got, err := u.Get(ctx, domain.DefaultCampaignID)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultCampaignID, got.ID)
}

// TestUpsertPreservesCreatedAt creates a record, then patches it later
// and checks CreatedAt survives while UpdatedAt advances.
func TestUpsertPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return t0 }

	created, err := u.Upsert(ctx, "drive", json.RawMessage(`{"header":"Annual Drive","active":true}`))
	require.NoError(t, err)
	require.Equal(t, t0, created.CreatedAt)

	t1 := t0.Add(48 * time.Hour)
	u.now = func() time.Time { return t1 }

	updated, err := u.Upsert(ctx, "drive", json.RawMessage(`{"header":"Annual Drive 2025","createdAt":"2030-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	require.Equal(t, t0, updated.CreatedAt, "createdAt must survive patches, even hostile ones")
	require.Equal(t, t1, updated.UpdatedAt)
	require.True(t, updated.CreatedAt.Before(updated.UpdatedAt))
}

// TestUpsertMergesOverExisting checks that fields absent from the patch
// keep their stored values.
func TestUpsertMergesOverExisting(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	_, err := u.Upsert(ctx, "m", json.RawMessage(`{"header":"Old","details":"Body","active":true}`))
	require.NoError(t, err)

	got, err := u.Upsert(ctx, "m", json.RawMessage(`{"header":"New"}`))
	require.NoError(t, err)
	require.Equal(t, "New", got.Header)
	require.Equal(t, "Body", got.Details)
	require.True(t, got.Active)
}

// TestUpsertForcesID checks that a patch cannot re-key a record.
func TestUpsertForcesID(t *testing.T) {
	u := newTestUseCase(t)

	got, err := u.Upsert(context.Background(), "canonical", json.RawMessage(`{"id":"sneaky"}`))
	require.NoError(t, err)
	require.Equal(t, "canonical", got.ID)
}

// TestUpsertGeneratesID checks that an empty id gets a fresh one from
// the injected generator.
func TestUpsertGeneratesID(t *testing.T) {
	u := newTestUseCase(t)
	u.newID = func() string { return "generated-id" }

	got, err := u.Upsert(context.Background(), "", json.RawMessage(`{"header":"h"}`))
	require.NoError(t, err)
	require.Equal(t, "generated-id", got.ID)
}

// TestUpsertRejectsMalformedPatch checks non-object campaign payloads.
func TestUpsertRejectsMalformedPatch(t *testing.T) {
	u := newTestUseCase(t)

	_, err := u.Upsert(context.Background(), "x", json.RawMessage(`"just a string"`))
	if !errors.Is(err, port.ErrInvalidCampaign) {
		t.Fatalf("expected ErrInvalidCampaign, got %v", err)
	}
}

// TestRemoveAbsentID ensures deleting a non-existent id reports
// not-found without mutating the store.
func TestRemoveAbsentID(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	_, err := u.Upsert(ctx, "keep", json.RawMessage(`{"header":"h"}`))
	require.NoError(t, err)

	err = u.Remove(ctx, "ghost")
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}

	got, err := u.Get(ctx, "keep")
	require.NoError(t, err)
	require.Equal(t, "keep", got.ID)
}

// TestRemove deletes an existing record.
func TestRemove(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	_, err := u.Upsert(ctx, "gone", json.RawMessage(`{"header":"h"}`))
	require.NoError(t, err)
	require.NoError(t, u.Remove(ctx, "gone"))

	_, err = u.Get(ctx, "gone")
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestReplaceRejectsNonObject covers null, arrays and primitives.
func TestReplaceRejectsNonObject(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	for _, raw := range []string{`null`, `[]`, `"not-an-object"`, `42`, `true`} {
		_, err := u.Replace(ctx, json.RawMessage(raw))
		if !errors.Is(err, port.ErrInvalidCollection) {
			t.Fatalf("Replace(%s): expected ErrInvalidCollection, got %v", raw, err)
		}
	}
}

// TestReplaceVerbatim checks the bulk endpoint performs no merge and no
// bootstrap: an empty object empties the store.
func TestReplaceVerbatim(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	_, err := u.Upsert(ctx, "old", json.RawMessage(`{"header":"h"}`))
	require.NoError(t, err)

	got, err := u.Replace(ctx, json.RawMessage(`{}`))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = u.Get(ctx, "old")
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestConcurrentUpserts issues upserts on distinct ids concurrently
// against the same store. With mutations serialized through the
// usecase's mutex, every write survives; this guards against a
// regression to last-writer-wins on the whole document.
func TestConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase(t)

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	wg.Add(len(ids))
	for _, id := range ids {
		go func(id string) {
			defer wg.Done()
			if _, err := u.Upsert(ctx, id, json.RawMessage(`{"header":"h","active":true}`)); err != nil {
				t.Errorf("Upsert(%s): %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	got, err := u.List(ctx)
	require.NoError(t, err)
	for _, id := range ids {
		if _, ok := got[id]; !ok {
			t.Fatalf("lost update: %s missing from collection", id)
		}
	}
}
