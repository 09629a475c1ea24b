package fee

import (
	"testing"

	"acquiring/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contiguousTiers() []models.VolumeTier {
	return []models.VolumeTier{
		{MinVolume: models.Dec("10000"), FeeValue: models.Dec("1.5")},
		{MinVolume: models.Dec("0"), MaxVolume: models.Dec("1000"), FeeValue: models.Dec("3.0")},
		{MinVolume: models.Dec("1000"), MaxVolume: models.Dec("10000"), FeeValue: models.Dec("2.0")},
	}
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		volume  string
		wantFee string
	}{
		{"0", "3.0"},
		{"999.99", "3.0"},
		{"1000", "2.0"},
		{"9999.99", "2.0"},
		{"10000", "1.5"},
		{"123456789", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.volume, func(t *testing.T) {
			tier, ok := ResolveTier(contiguousTiers(), decimal.RequireFromString(tt.volume))
			require.True(t, ok)
			assert.True(t, tier.FeeValue.Equal(decimal.RequireFromString(tt.wantFee)), "got %s", tier.FeeValue)
		})
	}
}

func TestResolveTier_TotalOverContiguousSet(t *testing.T) {
	tiers := contiguousTiers()
	for v := int64(0); v <= 20000; v += 37 {
		matches := 0
		for _, tier := range tiers {
			if tier.Contains(decimal.NewFromInt(v)) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "volume %d", v)

		_, ok := ResolveTier(tiers, decimal.NewFromInt(v))
		assert.True(t, ok, "volume %d", v)
	}
}

func TestResolveTier_OverlapLowestMinWins(t *testing.T) {
	tiers := []models.VolumeTier{
		{MinVolume: models.Dec("50"), MaxVolume: models.Dec("150"), FeeValue: models.Dec("2")},
		{MinVolume: models.Dec("0"), MaxVolume: models.Dec("100"), FeeValue: models.Dec("3")},
	}

	tier, ok := ResolveTier(tiers, decimal.NewFromInt(75))

	require.True(t, ok)
	assert.True(t, tier.MinVolume.IsZero())
	assert.True(t, tier.MaxVolume.Equal(decimal.NewFromInt(100)))
	assert.True(t, tiers[0].MinVolume.Equal(decimal.NewFromInt(50)), "input order must be preserved")
}

func TestResolveTier_Gap(t *testing.T) {
	tiers := []models.VolumeTier{
		{MinVolume: models.Dec("0"), MaxVolume: models.Dec("100"), FeeValue: models.Dec("3")},
		{MinVolume: models.Dec("200"), FeeValue: models.Dec("2")},
	}

	_, ok := ResolveTier(tiers, decimal.NewFromInt(150))
	assert.False(t, ok)

	_, ok = ResolveTier(nil, decimal.Zero)
	assert.False(t, ok)
}

func TestCheckTierContinuity(t *testing.T) {
	assert.Empty(t, CheckTierContinuity(contiguousTiers()))

	problems := CheckTierContinuity([]models.VolumeTier{
		{MinVolume: models.Dec("10"), MaxVolume: models.Dec("100"), FeeValue: models.Dec("3")},
		{MinVolume: models.Dec("50"), MaxVolume: models.Dec("150"), FeeValue: models.Dec("2")},
		{MinVolume: models.Dec("200"), MaxVolume: models.Dec("300"), FeeValue: models.Dec("1")},
	})

	assert.Equal(t, []string{
		"volumes below 10 match no tier",
		"tiers overlap between 50 and 100",
		"gap between 150 and 200",
		"no open-ended top tier",
	}, problems)
}
