package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"luapat"
)

// substRule is one entry of a --rules file.
type substRule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
	Count   *int   `yaml:"count"`
}

// limit returns the replacement limit; a missing count means all matches.
func (r substRule) limit() int {
	if r.Count == nil {
		return -1
	}
	return *r.Count
}

// rulesFile is the YAML layout:
//
//	rules:
//	  - name: swap
//	    pattern: "(%w+)=(%w+)"
//	    replace: "%2=%1"
//	    count: 1
type rulesFile struct {
	Rules []substRule `yaml:"rules"`
}

// loadRules parses a rules file and checks every pattern's syntax up front,
// so a bad rule is reported before any input is touched.
func loadRules(data []byte) ([]substRule, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("no rules found in YAML")
	}

	for i := range f.Rules {
		r := &f.Rules[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("rule %d", i+1)
		}
		if r.Pattern == "" {
			return nil, fmt.Errorf("%s: empty pattern", r.Name)
		}
		if _, _, err := luapat.Explain(r.Pattern); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
	}
	return f.Rules, nil
}

// loadRulesFile loads rules from a YAML file path.
func loadRulesFile(path string) ([]substRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return loadRules(data)
}
