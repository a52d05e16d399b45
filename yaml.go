package magicset

import (
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// ToYAML renders s as a YAML sequence in iteration order.
// Elements go through their JSON encoding.
func ToYAML[E Item](s *HashSet[E]) ([]byte, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode magic set as yaml")
	}
	return b, nil
}

// FromYAML replaces the contents of s with a YAML sequence of elements.
func FromYAML[E Item](data []byte, s *HashSet[E]) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return errors.Wrap(err, "could not decode magic set from yaml")
	}
	return nil
}
