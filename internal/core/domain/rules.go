package domain

import (
	"errors"
	"strings"
)

var ErrStateNotRegistered = errors.New("state not registered")

// StateRules holds the program requirements a state imposes on driver
// education: hour minimums and the minimum enrollment age.
type StateRules struct {
	ClassroomHours   int `json:"classroom_hours"`
	BehindWheelHours int `json:"behind_wheel_hours"`
	ObservationHours int `json:"observation_hours"`
	MinAge           int `json:"min_age"`
}

// RuleRegistry maps two-letter state codes to their rule sets. It is built
// once at startup and never mutated afterwards; components that need rules
// receive the registry by reference.
type RuleRegistry struct {
	rules map[string]StateRules
}

// NewRuleRegistry copies the given map so later changes to the argument
// cannot leak into the registry. Keys are normalized to upper case.
func NewRuleRegistry(rules map[string]StateRules) *RuleRegistry {
	m := make(map[string]StateRules, len(rules))
	for code, r := range rules {
		m[strings.ToUpper(code)] = r
	}
	return &RuleRegistry{rules: m}
}

// DefaultRuleRegistry returns the registry with the states the school
// currently operates in.
func DefaultRuleRegistry() *RuleRegistry {
	return NewRuleRegistry(map[string]StateRules{
		"ID": {ClassroomHours: 30, BehindWheelHours: 6, ObservationHours: 6, MinAge: 14},
		"MT": {ClassroomHours: 30, BehindWheelHours: 6, ObservationHours: 6, MinAge: 14},
		"WY": {ClassroomHours: 30, BehindWheelHours: 6, ObservationHours: 6, MinAge: 15},
	})
}

// Get returns the rules for a state code (case-insensitive).
func (r *RuleRegistry) Get(stateCode string) (StateRules, error) {
	rules, ok := r.rules[strings.ToUpper(stateCode)]
	if !ok {
		return StateRules{}, ErrStateNotRegistered
	}
	return rules, nil
}

// States returns the registered state codes, for listing endpoints.
func (r *RuleRegistry) States() []string {
	codes := make([]string, 0, len(r.rules))
	for code := range r.rules {
		codes = append(codes, code)
	}
	return codes
}
