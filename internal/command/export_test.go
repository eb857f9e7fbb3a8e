// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/cli"
)

const testOutputsJSON = `{
  "string": {"sensitive": false, "type": "string", "value": "aaa"},
  "number_0": {"sensitive": false, "type": "number", "value": 0},
  "tuple": {"sensitive": false, "type": ["tuple", ["string", "string"]], "value": ["aaa", "bbb"]}
}`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %s", name, err)
	}
	return path
}

// testAPIServer fakes the workspace read and variable endpoints for a
// single workspace "prod" that starts out with the given variables.
func testAPIServer(t *testing.T, existingVars string, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/organizations/acme/workspaces/prod", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/vnd.api+json")
		fmt.Fprint(w, `{"data": {"id": "ws-abc123", "type": "workspaces", "attributes": {"name": "prod"}}}`)
	})
	mux.HandleFunc("/api/v2/workspaces/ws-abc123/vars", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/vnd.api+json")
		switch r.Method {
		case http.MethodGet:
			fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"current-page": 1, "total-pages": 1}}}`, existingVars)
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data": {"id": "var-new", "type": "vars", "attributes": {"key": "string_copy", "value": "aaa", "category": "terraform"}}}`)
		default:
			t.Errorf("unexpected method %s on vars endpoint", r.Method)
		}
	})
	mux.HandleFunc("/api/v2/workspaces/ws-abc123/vars/", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/vnd.api+json")
		if r.Method != http.MethodPatch {
			t.Errorf("unexpected method %s on variable endpoint", r.Method)
		}
		fmt.Fprint(w, `{"data": {"id": "var-1", "type": "vars", "attributes": {"key": "string_copy", "value": "aaa", "category": "terraform"}}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testExportCommand(t *testing.T) (*ExportCommand, *cli.MockUi) {
	t.Helper()
	t.Setenv("TFVE_ORGANIZATION_NAME", "acme")
	t.Setenv("TFVE_TOKEN", "test-token")

	ui := cli.NewMockUi()
	return &ExportCommand{Meta: Meta{Ui: ui}}, ui
}

func TestExport_create(t *testing.T) {
	var requests atomic.Int64
	srv := testAPIServer(t, "", &requests)
	c, ui := testExportCommand(t)

	outputsPath := writeTestFile(t, "outputs.json", testOutputsJSON)
	listPath := writeTestFile(t, "export_list.txt", "string,string_copy,exported string\n")

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-workspaces=prod",
		outputsPath, listPath,
	})
	if code != 0 {
		t.Fatalf("wrong exit code %d; stderr:\n%s", code, ui.ErrorWriter.String())
	}

	if !strings.Contains(ui.OutputWriter.String(), "1 created, 0 updated, 0 conflict(s), 0 error(s)") {
		t.Errorf("missing summary line in output:\n%s", ui.OutputWriter.String())
	}
}

func TestExport_conflict(t *testing.T) {
	existing := `{"id": "var-1", "type": "vars", "attributes": {"key": "string_copy", "value": "old", "category": "terraform"}}`
	var requests atomic.Int64
	srv := testAPIServer(t, existing, &requests)
	c, ui := testExportCommand(t)

	outputsPath := writeTestFile(t, "outputs.json", testOutputsJSON)
	listPath := writeTestFile(t, "export_list.txt", "string,string_copy\n")

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-workspaces=prod",
		outputsPath, listPath,
	})
	if code != 1 {
		t.Fatalf("wrong exit code %d", code)
	}
	if !strings.Contains(ui.ErrorWriter.String(), "already exists") {
		t.Errorf("missing conflict message in stderr:\n%s", ui.ErrorWriter.String())
	}
}

func TestExport_allowUpdate(t *testing.T) {
	existing := `{"id": "var-1", "type": "vars", "attributes": {"key": "string_copy", "value": "old", "category": "terraform"}}`
	var requests atomic.Int64
	srv := testAPIServer(t, existing, &requests)
	c, ui := testExportCommand(t)

	outputsPath := writeTestFile(t, "outputs.json", testOutputsJSON)
	listPath := writeTestFile(t, "export_list.txt", "string,string_copy\n")

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-workspaces=prod",
		"-allow-update",
		outputsPath, listPath,
	})
	if code != 0 {
		t.Fatalf("wrong exit code %d; stderr:\n%s", code, ui.ErrorWriter.String())
	}
	if !strings.Contains(ui.OutputWriter.String(), "0 created, 1 updated") {
		t.Errorf("missing summary line in output:\n%s", ui.OutputWriter.String())
	}
}

func TestExport_parseFailureMakesNoRequests(t *testing.T) {
	var requests atomic.Int64
	srv := testAPIServer(t, "", &requests)
	c, ui := testExportCommand(t)

	outputsPath := writeTestFile(t, "outputs.json", testOutputsJSON)
	listPath := writeTestFile(t, "export_list.txt", "a,b,c,d\n")

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-workspaces=prod",
		outputsPath, listPath,
	})
	if code != 1 {
		t.Fatalf("wrong exit code %d", code)
	}
	if !strings.Contains(ui.ErrorWriter.String(), "line 1") {
		t.Errorf("parse error does not cite the line number:\n%s", ui.ErrorWriter.String())
	}
	if requests.Load() != 0 {
		t.Errorf("expected no API requests after a parse failure, got %d", requests.Load())
	}
}

func TestExport_missingWorkspacesFlag(t *testing.T) {
	c, ui := testExportCommand(t)

	outputsPath := writeTestFile(t, "outputs.json", testOutputsJSON)
	listPath := writeTestFile(t, "export_list.txt", "string,string_copy\n")

	code := c.Run([]string{outputsPath, listPath})
	if code != 1 {
		t.Fatalf("wrong exit code %d", code)
	}
	if !strings.Contains(ui.ErrorWriter.String(), "-workspaces") {
		t.Errorf("error does not mention the -workspaces flag:\n%s", ui.ErrorWriter.String())
	}
}

func TestExport_wrongArgumentCount(t *testing.T) {
	c, _ := testExportCommand(t)
	if code := c.Run([]string{"-workspaces=prod", "only-one-file"}); code == 0 {
		t.Fatal("expected failure for missing positional argument")
	}
}

func TestSplitWorkspaceNames(t *testing.T) {
	got := splitWorkspaceNames("prod, staging,,dev")
	want := []string{"prod", "staging", "dev"}
	if len(got) != len(want) {
		t.Fatalf("wrong names: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong name at %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
