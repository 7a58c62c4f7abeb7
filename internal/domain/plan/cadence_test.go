package plan

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/types"
)

func TestResolveCadence(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		expected types.BillingPeriod
	}{
		{"Comfort", "COMFORT", types.BILLING_PERIOD_ANNUAL},
		{"Platinum", "PLATINUM", types.BILLING_PERIOD_ANNUAL},
		{"ComfortLowercase", "comfort plus", types.BILLING_PERIOD_ANNUAL},
		{"PlatinumMixedCase", "Plano Platinum", types.BILLING_PERIOD_ANNUAL},
		{"KeywordWithWhitespace", "  platinum  ", types.BILLING_PERIOD_ANNUAL},
		{"KeywordEmbedded", "SuperCOMFORTDeluxe", types.BILLING_PERIOD_ANNUAL},
		{"Basic", "BASIC", types.BILLING_PERIOD_MONTHLY},
		{"Infinity", "INFINITY", types.BILLING_PERIOD_MONTHLY},
		{"ArbitraryName", "Gold Family", types.BILLING_PERIOD_MONTHLY},
		{"EmptyName", "", types.BILLING_PERIOD_MONTHLY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCadence(tt.planName)
			assert.Equal(t, tt.expected, got)
			// stable: same name always yields the same cadence
			assert.Equal(t, got, ResolveCadence(tt.planName))
			// total: result is always a valid cadence
			assert.NoError(t, got.Validate())
		})
	}
}

func TestIsCompatible(t *testing.T) {
	assert.True(t, IsCompatible("BASIC Plan", types.BILLING_PERIOD_MONTHLY))
	assert.False(t, IsCompatible("BASIC Plan", types.BILLING_PERIOD_ANNUAL))
	assert.True(t, IsCompatible("PLATINUM Plan", types.BILLING_PERIOD_ANNUAL))
	assert.False(t, IsCompatible("PLATINUM Plan", types.BILLING_PERIOD_MONTHLY))
}

func TestEnforceCadence(t *testing.T) {
	t.Run("NoRequestedCadence_ReturnsResolved", func(t *testing.T) {
		cadence, err := EnforceCadence("COMFORT Plan", nil)
		require.NoError(t, err)
		assert.Equal(t, types.BILLING_PERIOD_ANNUAL, cadence)
	})

	t.Run("MatchingCadence_Passes", func(t *testing.T) {
		cadence, err := EnforceCadence("BASIC Plan", lo.ToPtr(types.BILLING_PERIOD_MONTHLY))
		require.NoError(t, err)
		assert.Equal(t, types.BILLING_PERIOD_MONTHLY, cadence)
	})

	t.Run("MismatchedCadence_Fails", func(t *testing.T) {
		_, err := EnforceCadence("PLATINUM Plan", lo.ToPtr(types.BILLING_PERIOD_MONTHLY))
		require.Error(t, err)
		assert.True(t, ierr.IsCadenceMismatch(err))

		details := ierr.ReportableDetails(err)
		require.NotNil(t, details)
		assert.Equal(t, "PLATINUM Plan", details["plan_name"])
		assert.Equal(t, types.BILLING_PERIOD_MONTHLY, details["requested_cadence"])
		assert.Equal(t, types.BILLING_PERIOD_ANNUAL, details["plan_cadence"])
	})

	t.Run("InvalidRequestedCadence_Fails", func(t *testing.T) {
		bad := types.BillingPeriod("WEEKLY")
		_, err := EnforceCadence("BASIC Plan", &bad)
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}
