package report

import (
	"fmt"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Narrative templates mirror the production report copy: one per service,
// each citing the yes count, the direct (base) savings, and the service's
// allocated share of total economic impact. Generation is a pure function
// of those numbers, so identical aggregates always produce identical text.

// Narrative returns the impact summary sentence for one service. Unknown
// service codes use the generic template; a service that reached no clients
// gets a fixed no-clients sentence.
func Narrative(svc domain.ServiceCode, yes int, savedBase, allocatedImpact decimal.Decimal) string {
	if yes == 0 && savedBase.IsZero() {
		return fmt.Sprintf("No clients received %s during this period.", svc.DisplayName())
	}

	base := formatCompactUSD(savedBase)
	impact := formatCompactUSD(allocatedImpact)

	switch svc {
	case domain.ServiceCaseManagement:
		return fmt.Sprintf("Case management services helped %d seniors avoid premature institutional placement, generating %s in direct healthcare savings and %s in total economic impact through sustained independence.", yes, base, impact)
	case domain.ServiceHomeDeliveredMeals:
		return fmt.Sprintf("Home-delivered meal programs served %d seniors, preventing malnutrition and maintaining independence. This resulted in %s in healthcare cost avoidance and %s in total community benefit.", yes, base, impact)
	case domain.ServiceCaregiverRespite:
		return fmt.Sprintf("Respite services supported %d family caregivers, preventing burnout and institutional placement. These interventions saved %s in direct costs while generating %s in broader economic value.", yes, base, impact)
	case domain.ServiceCrisisIntervention:
		return fmt.Sprintf("Rapid crisis response served %d seniors in acute need, averting emergency room visits and institutional placement. Direct savings totaled %s, with %s in comprehensive economic impact.", yes, base, impact)
	default:
		return fmt.Sprintf("Services supported %d seniors, generating %s in savings and %s in total economic impact.", yes, base, impact)
	}
}

// allocatedImpact is a service's multiplied savings plus its proportional
// share of total tax revenue, zero when there are no multiplied savings to
// apportion against.
func allocatedImpact(agg domain.ServiceAggregate, multiplied, totalTax decimal.Decimal) decimal.Decimal {
	if multiplied.IsZero() {
		return decimal.Zero
	}
	return agg.SavedAdjusted.Add(agg.SavedAdjusted.Div(multiplied).Mul(totalTax))
}

var (
	oneMillion  = decimal.NewFromInt(1_000_000)
	oneThousand = decimal.NewFromInt(1_000)
)

// formatCompactUSD renders a dollar amount the way the report headlines do:
// $2.50M, $560.0K, or whole dollars below a thousand.
func formatCompactUSD(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(oneMillion):
		return "$" + d.Div(oneMillion).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(oneThousand):
		return "$" + d.Div(oneThousand).StringFixed(1) + "K"
	default:
		return "$" + d.Round(0).String()
	}
}
