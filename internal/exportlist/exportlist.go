// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package exportlist deals with the export list file: a line-oriented
// mapping from output names to workspace variable names.
//
// Each non-empty, non-comment line holds two or three comma-separated
// fields:
//
//	<output name>,<variable name>[,<description>]
//
// Lines whose first non-blank character is "#" are comments. Blank
// lines are ignored. Everything else must parse, or the whole list is
// rejected before any API call is made.
package exportlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Directive is a single entry from the export list: copy the value of
// the named output into the named workspace variable.
type Directive struct {
	// SourceOutput is the name of the output value to export.
	SourceOutput string

	// TargetVariable is the name of the workspace variable to write.
	TargetVariable string

	// Description is the variable description to set. It is only
	// meaningful when HasDescription is true; an export list line may
	// legitimately carry an empty third field.
	Description    string
	HasDescription bool

	// Line is the 1-based line number the directive came from, for
	// error messages.
	Line int
}

// ParseError describes an export list line that could not be parsed.
// Parsing is fail-fast: the first malformed line aborts the parse and
// no directives are returned.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid export list entry on line %d: %s", e.Line, e.Message)
}

// Parse reads an export list and returns its directives in file order.
// Duplicate source or target names are preserved as written; they
// surface later as independent create/update attempts.
func Parse(r io.Reader) ([]Directive, error) {
	var directives []Directive

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, &ParseError{
				Line:    ln,
				Message: fmt.Sprintf("expected 2 or 3 comma-separated fields, got %d", len(fields)),
			}
		}

		d := Directive{
			SourceOutput:   strings.TrimSpace(fields[0]),
			TargetVariable: strings.TrimSpace(fields[1]),
			Line:           ln,
		}
		if d.SourceOutput == "" {
			return nil, &ParseError{Line: ln, Message: "output name is empty"}
		}
		if d.TargetVariable == "" {
			return nil, &ParseError{Line: ln, Message: "variable name is empty"}
		}
		if len(fields) == 3 {
			d.Description = strings.TrimSpace(fields[2])
			d.HasDescription = true
		}

		directives = append(directives, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export list: %w", err)
	}

	return directives, nil
}

// ParseFile is a convenience wrapper around Parse for a file on disk.
func ParseFile(path string) ([]Directive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export list: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
