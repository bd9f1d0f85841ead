package report

import (
	"sort"

	"github.com/policyworth/pwgo/internal/domain"
)

// headlineCount is how many top services the report calls out.
const headlineCount = 2

// rankServices orders the selected services descending by base savings.
// The sort is stable, so services with equal savings keep the caller's
// selection order; services with no records sort last with zero aggregates.
func rankServices(selected []domain.ServiceCode, perService map[domain.ServiceCode]domain.ServiceAggregate) []domain.ServiceCode {
	ranked := append([]domain.ServiceCode(nil), selected...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return perService[ranked[i]].SavedBase.GreaterThan(perService[ranked[j]].SavedBase)
	})
	return ranked
}
