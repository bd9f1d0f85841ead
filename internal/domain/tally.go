package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TallyRecord is one logged observation: whether clients accepted a service
// on a date, in a county, with the service's yearly program cost. Records
// arrive from the persistence collaborator already scoped to the acting
// user; the engine treats them as read-only.
type TallyRecord struct {
	Date              time.Time       `yaml:"date" json:"date"`
	State             string          `yaml:"state" json:"state"`
	County            string          `yaml:"county" json:"county"`
	Service           ServiceCode     `yaml:"service" json:"service"`
	YearlyProgramCost decimal.Decimal `yaml:"yearly_program_cost" json:"yearlyProgramCost"`
	YesCount          int             `yaml:"yes" json:"yes"`
	NoCount           int             `yaml:"no" json:"no"`
}

// HasLocation reports whether the record carries both state and county.
// Records without a location cannot be priced and are skipped (and counted)
// during aggregation.
func (t TallyRecord) HasLocation() bool {
	return strings.TrimSpace(t.State) != "" && strings.TrimSpace(t.County) != ""
}

// Location returns the record's normalized location key.
func (t TallyRecord) Location() LocationKey {
	return NewLocationKey(t.State, t.County)
}

// LocationKey identifies a (state, county) pair. Keys compare with the
// state uppercased and the county trimmed, mirroring how the reference-data
// store addresses county documents.
type LocationKey struct {
	State  string `json:"state"`
	County string `json:"county"`
}

// NewLocationKey builds a normalized location key.
func NewLocationKey(state, county string) LocationKey {
	return LocationKey{
		State:  strings.ToUpper(strings.TrimSpace(state)),
		County: strings.TrimSpace(county),
	}
}

func (k LocationKey) String() string {
	return k.State + "__" + strings.Join(strings.Fields(k.County), "_")
}

// LocationCostRecord is the reference-data row for one location. A nil
// YearlyInstitutionalCost means "no local figure, use the configured
// default"; that is a legitimate state, not an error.
type LocationCostRecord struct {
	State                   string           `yaml:"state" json:"state"`
	County                  string           `yaml:"county" json:"county"`
	YearlyInstitutionalCost *decimal.Decimal `yaml:"yearly_institutional_cost" json:"yearlyInstitutionalCost,omitempty"`
}

// Key returns the record's normalized location key.
func (r LocationCostRecord) Key() LocationKey {
	return NewLocationKey(r.State, r.County)
}
