// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package outputs reads the machine-readable output values file
// produced by "terraform output -json" and exposes the root module's
// non-sensitive outputs as cty values.
package outputs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Value is a single named output value.
type Value struct {
	Name  string
	Value cty.Value
}

// Map holds the output values of one run, keyed by output name.
type Map map[string]Value

// rawOutput matches one entry of the "terraform output -json" document.
type rawOutput struct {
	Sensitive bool            `json:"sensitive"`
	Type      json.RawMessage `json:"type,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
}

// Parse decodes an output values document. Sensitive outputs are
// dropped: their values must never end up in a workspace variable this
// tool writes, since everything it writes is marked non-sensitive.
func Parse(src []byte) (Map, error) {
	var raw map[string]rawOutput
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode output values: %w", err)
	}

	m := make(Map, len(raw))
	for name, ro := range raw {
		if ro.Sensitive {
			log.Printf("[DEBUG] outputs: skipping sensitive output %q", name)
			continue
		}

		v, err := decodeValue(ro)
		if err != nil {
			return nil, fmt.Errorf("failed to decode output %q: %w", name, err)
		}
		m[name] = Value{Name: name, Value: v}
	}

	return m, nil
}

// ParseFile is a convenience wrapper around Parse for a file on disk.
func ParseFile(path string) (Map, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read output values file: %w", err)
	}
	return Parse(src)
}

// Names returns the output names in lexical order, for stable display.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decodeValue(ro rawOutput) (cty.Value, error) {
	// Newer Terraform versions record the value's type alongside it,
	// which distinguishes e.g. sets from tuples. Use it when present
	// and fall back to the type implied by the value JSON itself.
	var ty cty.Type
	var err error
	if len(ro.Type) > 0 {
		ty, err = ctyjson.UnmarshalType(ro.Type)
	} else {
		ty, err = ctyjson.ImpliedType(ro.Value)
	}
	if err != nil {
		return cty.NilVal, err
	}

	if len(ro.Value) == 0 {
		return cty.NullVal(ty), nil
	}
	return ctyjson.Unmarshal(ro.Value, ty)
}
