// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package exporter

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// RenderValue produces the string form of an output value to store in a
// workspace variable, along with whether the variable must be marked as
// an HCL expression.
//
// Non-null strings, numbers and bools become plain literals, the same
// way a user would type them into the variables UI. Everything else
// (lists, sets, maps, objects, tuples, and null of any type) is
// rendered as HCL expression source so the remote run evaluates it as a
// value of that type rather than an opaque string.
func RenderValue(v cty.Value) (string, bool) {
	if !v.IsNull() {
		switch v.Type() {
		case cty.String:
			return v.AsString(), false
		case cty.Number:
			// Text with a negative precision renders the shortest
			// exact decimal form, matching how the value appeared in
			// the output JSON.
			return v.AsBigFloat().Text('f', -1), false
		case cty.Bool:
			if v.True() {
				return "true", false
			}
			return "false", false
		}
	}

	return string(hclwrite.TokensForValue(v).Bytes()), true
}
