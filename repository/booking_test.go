package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSlotLockKey(t *testing.T) {
	guideA := uuid.MustParse("018f4f3a-0000-7000-8000-000000000001")
	guideB := uuid.MustParse("018f4f3a-0000-7000-8000-000000000002")
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	key := slotLockKey(guideA, day, "morning")
	if want := "018f4f3a-0000-7000-8000-000000000001:2026-09-01:morning"; key != want {
		t.Errorf("key = %q, want %q", key, want)
	}

	// The same slot must always map to the same lock key, and any change to
	// guide, day or slot must map to a different one.
	if key != slotLockKey(guideA, day.Add(5*time.Hour), "morning") {
		t.Error("same slot with a different time of day produced a different key")
	}
	distinct := []string{
		slotLockKey(guideB, day, "morning"),
		slotLockKey(guideA, day.AddDate(0, 0, 1), "morning"),
		slotLockKey(guideA, day, "afternoon"),
	}
	for _, other := range distinct {
		if key == other {
			t.Errorf("distinct slot collided with %q", key)
		}
	}
}
