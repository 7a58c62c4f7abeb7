package plan

import (
	"strings"

	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/types"
	"github.com/samber/lo"
)

// annualKeywords drives the name-based cadence mapping. This is a migration
// bridge from the legacy system where cadence was inferred from the plan
// name; once cadence is a first-class plan attribute everywhere, callers
// switch to Plan.BillingPeriod and this file goes away.
var annualKeywords = []string{"COMFORT", "PLATINUM"}

// ResolveCadence maps a plan name to its mandated billing cadence. Total and
// stable: every name yields exactly one cadence. Names containing COMFORT or
// PLATINUM (case-insensitive) are annual; everything else, including BASIC
// and INFINITY, is monthly.
func ResolveCadence(planName string) types.BillingPeriod {
	normalized := strings.ToUpper(strings.TrimSpace(planName))
	if lo.SomeBy(annualKeywords, func(kw string) bool { return strings.Contains(normalized, kw) }) {
		return types.BILLING_PERIOD_ANNUAL
	}
	return types.BILLING_PERIOD_MONTHLY
}

// IsCompatible reports whether the requested cadence matches the cadence
// mandated by the plan name.
func IsCompatible(planName string, requested types.BillingPeriod) bool {
	return requested == ResolveCadence(planName)
}

// EnforceCadence returns the plan's mandated cadence. When a cadence is
// requested and disagrees with the mandated one, it fails hard: silently
// accepting a mismatched cadence risks charging the wrong amount.
func EnforceCadence(planName string, requested *types.BillingPeriod) (types.BillingPeriod, error) {
	resolved := ResolveCadence(planName)
	if requested == nil {
		return resolved, nil
	}
	if err := requested.Validate(); err != nil {
		return "", err
	}
	if *requested != resolved {
		return "", ierr.NewError("requested billing cadence does not match plan cadence").
			WithHintf("Plan %q is billed %s, not %s", planName, resolved, *requested).
			WithReportableDetails(map[string]any{
				"plan_name":         planName,
				"requested_cadence": *requested,
				"plan_cadence":      resolved,
			}).
			Mark(ierr.ErrCadenceMismatch)
	}
	return resolved, nil
}
