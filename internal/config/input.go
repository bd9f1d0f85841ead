package config

import (
	"fmt"
	"os"

	"github.com/policyworth/pwgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// ReportInput is the on-disk input bundle for a report run: the parameter
// set, the county cost reference table, and the raw tallies. In deployment
// each section comes from its own collaborator; the file form exists for
// the CLI and for tests.
type ReportInput struct {
	Params      domain.RawParams            `yaml:"params"`
	CountyCosts []domain.LocationCostRecord `yaml:"county_costs"`
	Tallies     []domain.TallyRecord        `yaml:"tallies"`
}

// InputParser handles parsing of report input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a report input bundle from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*ReportInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input ReportInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the structural shape of the loaded bundle. The
// parameter values themselves are checked later by ResolveParams, so a file
// with a bad multiplier still loads and then fails with the full key
// listing in one error.
func (ip *InputParser) ValidateInput(input *ReportInput) error {
	for i, t := range input.Tallies {
		if t.Date.IsZero() {
			return fmt.Errorf("tally %d: date is required", i)
		}
		if t.Service == "" {
			return fmt.Errorf("tally %d: service is required", i)
		}
		if t.YesCount < 0 {
			return fmt.Errorf("tally %d: yes count cannot be negative", i)
		}
		if t.NoCount < 0 {
			return fmt.Errorf("tally %d: no count cannot be negative", i)
		}
		if t.YearlyProgramCost.IsNegative() {
			return fmt.Errorf("tally %d: yearly program cost cannot be negative", i)
		}
	}

	seen := make(map[domain.LocationKey]bool, len(input.CountyCosts))
	for i, c := range input.CountyCosts {
		if c.State == "" {
			return fmt.Errorf("county cost %d: state is required", i)
		}
		if c.County == "" {
			return fmt.Errorf("county cost %d: county is required", i)
		}
		key := c.Key()
		if seen[key] {
			return fmt.Errorf("county cost %d: duplicate entry for %s", i, key)
		}
		seen[key] = true
	}

	return nil
}

// CostTable builds the location-to-record map the engine's lookup adapter
// consumes.
func (in *ReportInput) CostTable() map[domain.LocationKey]domain.LocationCostRecord {
	table := make(map[domain.LocationKey]domain.LocationCostRecord, len(in.CountyCosts))
	for _, c := range in.CountyCosts {
		table[c.Key()] = c
	}
	return table
}
