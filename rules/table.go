// Package rules loads and serves the static benefit rule table. The table is
// parsed once at startup, validated, and shared read-only afterwards.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"benefit-calculator/domain"
)

//go:embed rules.yaml
var defaultRules []byte

type ruleEntry struct {
	Insurer           domain.Insurer           `yaml:"insurer"`
	RiderType         domain.RiderType         `yaml:"rider_type"`
	DiagnosisCategory domain.DiagnosisCategory `yaml:"diagnosis_category"`
	domain.BenefitRule `yaml:",inline"`
}

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleKey struct {
	insurer   domain.Insurer
	rider     domain.RiderType
	diagnosis domain.DiagnosisCategory
}

// Table is the immutable benefit rule table. Construct it with Load or
// Default; it is safe for concurrent readers.
type Table struct {
	rules map[ruleKey]domain.BenefitRule
}

// Default builds the table from the rule set bundled into the binary.
func Default() (*Table, error) {
	return Parse(defaultRules)
}

// Load reads an alternate rule file from disk.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML rule set.
func Parse(data []byte) (*Table, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rule file: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rule file contains no rules")
	}

	table := &Table{rules: make(map[ruleKey]domain.BenefitRule, len(file.Rules))}
	for i, entry := range file.Rules {
		if err := validateEntry(entry); err != nil {
			return nil, fmt.Errorf("rule %d (%s/%s/%s): %w",
				i, entry.Insurer, entry.RiderType, entry.DiagnosisCategory, err)
		}
		key := ruleKey{entry.Insurer, entry.RiderType, entry.DiagnosisCategory}
		if _, dup := table.rules[key]; dup {
			return nil, fmt.Errorf("duplicate rule for %s/%s/%s",
				entry.Insurer, entry.RiderType, entry.DiagnosisCategory)
		}
		table.rules[key] = entry.BenefitRule
	}
	return table, nil
}

func validateEntry(entry ruleEntry) error {
	if !entry.Insurer.Valid() {
		return fmt.Errorf("unknown insurer %q", entry.Insurer)
	}
	if !entry.RiderType.Valid() {
		return fmt.Errorf("unknown rider type %q", entry.RiderType)
	}
	if !entry.DiagnosisCategory.Valid() {
		return fmt.Errorf("unknown diagnosis category %q", entry.DiagnosisCategory)
	}
	if entry.Label == "" {
		return fmt.Errorf("label is required")
	}
	if entry.WaitingPeriodDays < 0 {
		return fmt.Errorf("waiting_period_days must not be negative")
	}

	switch entry.Kind {
	case domain.RuleFixed:
		if entry.Amount <= 0 {
			return fmt.Errorf("fixed rule requires a positive amount")
		}
	case domain.RulePercentage:
		if entry.Percent <= 0 || entry.Percent > 100 {
			return fmt.Errorf("percentage rule requires percent in (0, 100]")
		}
	case domain.RuleTiered:
		if len(entry.Tiers) == 0 {
			return fmt.Errorf("tiered rule requires at least one tier")
		}
		if entry.Tiers[0].MinYears != 0 {
			return fmt.Errorf("first tier must start at year 0")
		}
		if !sort.SliceIsSorted(entry.Tiers, func(i, j int) bool {
			return entry.Tiers[i].MinYears < entry.Tiers[j].MinYears
		}) {
			return fmt.Errorf("tiers must be sorted by min_years ascending")
		}
		for _, tier := range entry.Tiers {
			if tier.Percent < 0 || tier.Percent > 100 {
				return fmt.Errorf("tier percent must be in [0, 100]")
			}
		}
	default:
		return fmt.Errorf("unknown rule kind %q", entry.Kind)
	}
	return nil
}

// Lookup returns the rule for the combination, or false when the tool does
// not cover it.
func (t *Table) Lookup(
	insurer domain.Insurer,
	rider domain.RiderType,
	diagnosis domain.DiagnosisCategory,
) (domain.BenefitRule, bool) {
	rule, ok := t.rules[ruleKey{insurer, rider, diagnosis}]
	return rule, ok
}

// Len reports how many combinations the table covers.
func (t *Table) Len() int {
	return len(t.rules)
}
