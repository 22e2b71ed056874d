package permission

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed policies.yaml
var defaultPoliciesYAML []byte

type Policy struct {
	Role     string `yaml:"role"`
	Resource string `yaml:"resource"`
	Action   string `yaml:"action"`
}

type policyFile struct {
	Roles map[string][]struct {
		Resource string   `yaml:"resource"`
		Actions  []string `yaml:"actions"`
	} `yaml:"roles"`
}

// ParsePolicies flattens a role -> grants YAML document into policy rules.
func ParsePolicies(data []byte) ([]Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	var out []Policy
	for role, grants := range f.Roles {
		for _, g := range grants {
			for _, act := range g.Actions {
				out = append(out, Policy{Role: role, Resource: g.Resource, Action: act})
			}
		}
	}
	return out, nil
}

func DefaultPolicies() ([]Policy, error) {
	return ParsePolicies(defaultPoliciesYAML)
}
