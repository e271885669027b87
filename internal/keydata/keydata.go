// Package keydata holds the RSA public key under test and the reference
// values it is checked against. Everything is compiled into the binary.
package keydata

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var referenceYAML []byte

// Reference is the independently published form of the public key.
type Reference struct {
	ModulusHex  string `yaml:"modulus_hex"`
	Exponent    uint64 `yaml:"exponent"`
	OpenSSLDump string `yaml:"openssl_dump"`
}

// Inputs bundles the candidate key and its reference for one verification run.
type Inputs struct {
	Modulus  []byte
	Exponent uint64
	Reference
}

// referenceDoc mirrors Reference on the wire. Exponent is a pointer so an
// explicit zero is told apart from an absent key.
type referenceDoc struct {
	ModulusHex  string  `yaml:"modulus_hex"`
	Exponent    *uint64 `yaml:"exponent"`
	OpenSSLDump string  `yaml:"openssl_dump"`
}

// ParseReference decodes a reference document. All three fields are required.
// Any non-negative exponent is accepted, zero included.
func ParseReference(data []byte) (Reference, error) {
	var doc referenceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Reference{}, fmt.Errorf("parse reference: %w", err)
	}
	switch {
	case doc.ModulusHex == "":
		return Reference{}, errors.New("parse reference: modulus_hex is empty")
	case doc.OpenSSLDump == "":
		return Reference{}, errors.New("parse reference: openssl_dump is empty")
	case doc.Exponent == nil:
		return Reference{}, errors.New("parse reference: exponent is missing")
	}
	return Reference{
		ModulusHex:  doc.ModulusHex,
		Exponent:    *doc.Exponent,
		OpenSSLDump: doc.OpenSSLDump,
	}, nil
}

// Load returns the compiled-in key and reference.
func Load() (Inputs, error) {
	ref, err := ParseReference(referenceYAML)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{
		Modulus:   Modulus(),
		Exponent:  Exponent(),
		Reference: ref,
	}, nil
}
