/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestConfig writes a config that points the file backend into a temp dir.
func newTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "filestore.yaml")
	body := fmt.Sprintf("backend: file\nfile:\n  path: %s\nlog:\n  level: disabled\n", filepath.Join(dir, "file.json"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("filestore %s: %v", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(out.String())
}

func TestCommandsLifecycle(t *testing.T) {
	cfg := newTestConfig(t)

	id := run(t, cfg, "create", "User")
	if id == "" || strings.HasPrefix(id, "**") {
		t.Fatalf("create printed %q", id)
	}

	if out := run(t, cfg, "update", "User", id, "email", "airbnb@mail.com"); out != "" {
		t.Errorf("update printed %q", out)
	}

	shown := run(t, cfg, "show", "User", id)
	if !strings.HasPrefix(shown, "[User] ("+id+")") || !strings.Contains(shown, "airbnb@mail.com") {
		t.Errorf("show printed %q", shown)
	}

	run(t, cfg, "create", "Place")
	if lines := strings.Split(run(t, cfg, "all"), "\n"); len(lines) != 2 {
		t.Errorf("all printed %d lines, want 2", len(lines))
	}
	if lines := strings.Split(run(t, cfg, "all", "User"), "\n"); len(lines) != 1 {
		t.Errorf("all User printed %d lines, want 1", len(lines))
	}

	if out := run(t, cfg, "destroy", "User", id); out != "" {
		t.Errorf("destroy printed %q", out)
	}
	if out := run(t, cfg, "show", "User", id); out != msgNoInstance {
		t.Errorf("show after destroy printed %q", out)
	}
}

func TestCommandMessages(t *testing.T) {
	cfg := newTestConfig(t)
	id := run(t, cfg, "create", "BaseModel")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"create without class", []string{"create"}, msgClassMissing},
		{"create unknown class", []string{"create", "MyModel"}, msgClassUnknown},
		{"show without class", []string{"show"}, msgClassMissing},
		{"show without id", []string{"show", "BaseModel"}, msgIDMissing},
		{"show unknown id", []string{"show", "BaseModel", "121212"}, msgNoInstance},
		{"destroy unknown class", []string{"destroy", "MyModel", id}, msgClassUnknown},
		{"destroy unknown id", []string{"destroy", "BaseModel", "121212"}, msgNoInstance},
		{"all unknown class", []string{"all", "MyModel"}, msgClassUnknown},
		{"update without class", []string{"update"}, msgClassMissing},
		{"update without id", []string{"update", "BaseModel"}, msgIDMissing},
		{"update unknown id", []string{"update", "BaseModel", "121212"}, msgNoInstance},
		{"update without attribute", []string{"update", "BaseModel", id}, msgAttributeMissing},
		{"update without value", []string{"update", "BaseModel", id, "name"}, msgValueMissing},
		{"update protected field", []string{"update", "BaseModel", id, "id", "x"}, msgProtected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, cfg, tt.args...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out := run(t, newTestConfig(t), "version")
	if !strings.Contains(out, "version:") || !strings.Contains(out, "goVersion:") {
		t.Errorf("version printed %q", out)
	}
}

func TestRootHelpListsTypes(t *testing.T) {
	long := NewRootCommand().Long
	for _, name := range []string{"Amenity", "BaseModel", "City", "Place", "Review", "State", "User"} {
		if !strings.Contains(long, name) {
			t.Errorf("help text lacks %s: %q", name, long)
		}
	}
}
