package patterns

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// tableSpec is the YAML representation of a pattern table. Expressions are
// plain strings and are compiled on load.
type tableSpec struct {
	Issuers []issuerSpec `yaml:"issuers"`
	Fields  struct {
		CardLastFour   []string `yaml:"card_last_four"`
		BillingCycle   []string `yaml:"billing_cycle"`
		PaymentDueDate []string `yaml:"payment_due_date"`
		TotalAmountDue []string `yaml:"total_amount_due"`
	} `yaml:"fields"`
	Transaction string `yaml:"transaction"`
}

type issuerSpec struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	RequireAny  []string `yaml:"require_any"`
	CardPattern string   `yaml:"card_pattern"`
}

// LoadFile reads a pattern table from a YAML file, compiles every expression
// and validates the result. This lets deployments extend or replace the
// built-in issuer set without a rebuild.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var spec tableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}

	table, err := spec.compile()
	if err != nil {
		return nil, fmt.Errorf("invalid pattern file %s: %w", path, err)
	}

	return table, nil
}

func (s *tableSpec) compile() (*Table, error) {
	table := &Table{}

	for _, is := range s.Issuers {
		if is.Name == "" {
			return nil, fmt.Errorf("issuer rule without a name")
		}
		if len(is.Keywords) == 0 {
			return nil, fmt.Errorf("issuer %s has no keywords", is.Name)
		}
		rule := IssuerRule{
			Name:       is.Name,
			Keywords:   is.Keywords,
			RequireAny: is.RequireAny,
		}
		if is.CardPattern != "" {
			re, err := regexp.Compile(is.CardPattern)
			if err != nil {
				return nil, fmt.Errorf("issuer %s card pattern: %w", is.Name, err)
			}
			rule.CardPattern = re
		}
		table.Issuers = append(table.Issuers, rule)
	}

	var err error
	if table.CardLastFour, err = compileSet("card_last_four", s.Fields.CardLastFour); err != nil {
		return nil, err
	}
	if table.BillingCycle, err = compileSet("billing_cycle", s.Fields.BillingCycle); err != nil {
		return nil, err
	}
	if table.PaymentDueDate, err = compileSet("payment_due_date", s.Fields.PaymentDueDate); err != nil {
		return nil, err
	}
	if table.TotalAmountDue, err = compileSet("total_amount_due", s.Fields.TotalAmountDue); err != nil {
		return nil, err
	}

	if s.Transaction == "" {
		return nil, fmt.Errorf("transaction pattern is required")
	}
	if table.Transaction, err = regexp.Compile(s.Transaction); err != nil {
		return nil, fmt.Errorf("transaction pattern: %w", err)
	}

	if err := table.validate(); err != nil {
		return nil, err
	}

	return table, nil
}

func compileSet(field string, exprs []string) (FieldPatternSet, error) {
	if len(exprs) == 0 {
		return FieldPatternSet{}, fmt.Errorf("field %s has no patterns", field)
	}
	set := FieldPatternSet{Field: field, Patterns: make([]*regexp.Regexp, len(exprs))}
	for i, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return FieldPatternSet{}, fmt.Errorf("%s pattern %d: %w", field, i, err)
		}
		set.Patterns[i] = re
	}
	return set, nil
}
