package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driverdata/dcvt-devkit/matching"
)

func TestMatchVendor(t *testing.T) {
	t.Parallel()

	master := []string{"Acme Corp", "Globex", "Initech"}

	t.Run("should return an exact name unchanged", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.MatchVendor("Acme Corp", master, matching.DefaultThreshold)

		// then
		assert.Equal(t, "Acme Corp", got)
	})

	t.Run("should match a partial name against the full vendor entry", func(t *testing.T) {
		t.Parallel()

		// given
		vendors := []string{"Acme Corporation", "Globex", "Initech"}

		// when
		got := matching.MatchVendor("Acme Corp", vendors, 60)

		// then
		assert.Equal(t, "Acme Corporation", got)
	})

	t.Run("should return empty when nothing clears the threshold", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.MatchVendor("Zeta", []string{"Alpha", "Beta"}, 95)

		// then
		assert.Empty(t, got)
	})

	t.Run("should return empty on an empty master list", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.MatchVendor("Acme", nil, matching.DefaultThreshold)

		// then
		assert.Empty(t, got)
	})

	t.Run("should return empty on an empty name", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.MatchVendor("", master, matching.DefaultThreshold)

		// then
		assert.Empty(t, got)
	})

	t.Run("should keep the earliest entry on a tie", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.MatchVendor("Acme", []string{"Acme East", "Acme West"}, 50)

		// then
		assert.Equal(t, "Acme East", got)
	})

	t.Run("should clamp thresholds outside the 0-100 range", func(t *testing.T) {
		t.Parallel()

		// when
		loose := matching.MatchVendor("Globex", master, -20)
		strict := matching.MatchVendor("Zeta", []string{"Alpha"}, 250)

		// then
		assert.Equal(t, "Globex", loose)
		assert.Empty(t, strict)
	})
}

func TestClosestMatch(t *testing.T) {
	t.Parallel()

	t.Run("should pick the closest whole-string candidate", func(t *testing.T) {
		t.Parallel()

		// when
		got := matching.ClosestMatch("Globexx", []string{"Globex", "Initech"}, 0.6)

		// then
		assert.Equal(t, "Globex", got)
	})

	t.Run("should not match a substring the way partial scoring does", func(t *testing.T) {
		t.Parallel()

		// given
		vendors := []string{"Acme Corporation International Holdings"}

		// when
		whole := matching.ClosestMatch("Acme", vendors, 0.8)
		partial := matching.MatchVendor("Acme", vendors, 80)

		// then
		assert.Empty(t, whole)
		assert.Equal(t, vendors[0], partial)
	})

	t.Run("should return empty on empty inputs", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Empty(t, matching.ClosestMatch("", []string{"Acme"}, 0.5))
		assert.Empty(t, matching.ClosestMatch("Acme", nil, 0.5))
	})
}
