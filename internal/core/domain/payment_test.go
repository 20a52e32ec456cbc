package domain

import (
	"testing"
	"time"
)

func TestResultRedirectURL(t *testing.T) {
	got := ResultRedirectURL("spring-drive", "pay_123", StatusCaptured)
	want := "/success?campaign=spring-drive&payment=pay_123&status=captured"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResultRedirectURLWithoutCampaign(t *testing.T) {
	got := ResultRedirectURL("", "pay_123", StatusError)
	want := "/success?payment=pay_123&status=error"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultCampaign(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c := DefaultCampaign(now)

	if c.ID != DefaultCampaignID {
		t.Fatalf("unexpected id %q", c.ID)
	}
	if !c.Active {
		t.Fatal("default campaign must be active")
	}
	if c.CreatedAt != now || c.UpdatedAt != now {
		t.Fatalf("timestamps not pinned to now: %v / %v", c.CreatedAt, c.UpdatedAt)
	}
}
