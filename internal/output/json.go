package output

import (
	"encoding/json"

	"github.com/policyworth/pwgo/internal/domain"
)

// JSONFormatter emits the full result structure for downstream consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ReportResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
