package domain

import "fmt"

// ServiceCode identifies one of the tracked community-based care services.
// The set is closed: adding a service means adding a constant here plus its
// display name and narrative template, never free text.
type ServiceCode string

const (
	ServiceCaseManagement     ServiceCode = "case_mgmt"
	ServiceHomeDeliveredMeals ServiceCode = "hdm"
	ServiceCaregiverRespite   ServiceCode = "caregiver_respite"
	ServiceCrisisIntervention ServiceCode = "crisis_intervention"
)

var serviceDisplayNames = map[ServiceCode]string{
	ServiceCaseManagement:     "Case Management",
	ServiceHomeDeliveredMeals: "Home-Delivered Meals",
	ServiceCaregiverRespite:   "Caregiver Respite",
	ServiceCrisisIntervention: "Crisis Intervention",
}

// AllServices returns every known service code in canonical order.
func AllServices() []ServiceCode {
	return []ServiceCode{
		ServiceCaseManagement,
		ServiceHomeDeliveredMeals,
		ServiceCaregiverRespite,
		ServiceCrisisIntervention,
	}
}

// ParseServiceCode converts a raw string into a known ServiceCode.
func ParseServiceCode(s string) (ServiceCode, error) {
	code := ServiceCode(s)
	if !code.Known() {
		return "", fmt.Errorf("unknown service code %q", s)
	}
	return code, nil
}

// Known reports whether the code is part of the closed service set.
func (s ServiceCode) Known() bool {
	_, ok := serviceDisplayNames[s]
	return ok
}

// DisplayName returns the human-readable service name. Unknown codes fall
// back to the raw code so they stay identifiable in output.
func (s ServiceCode) DisplayName() string {
	if name, ok := serviceDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
