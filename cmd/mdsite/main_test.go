package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no command", args: []string{"mdsite"}, wantCode: ExitUsage, wantStderr: "Usage: mdsite"},
		{name: "version", args: []string{"mdsite", "version"}, wantCode: ExitSuccess, wantStdout: "mdsite " + Version},
		{name: "version flag", args: []string{"mdsite", "--version"}, wantCode: ExitSuccess, wantStdout: "mdsite " + Version},
		{name: "help", args: []string{"mdsite", "help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help build", args: []string{"mdsite", "help", "build"}, wantCode: ExitSuccess, wantStdout: "--base-path"},
		{name: "help init", args: []string{"mdsite", "-h", "init"}, wantCode: ExitSuccess, wantStdout: "--force"},
		{name: "help unknown", args: []string{"mdsite", "help", "serve"}, wantCode: ExitUsage, wantStderr: "Unknown command: serve"},
		{name: "unknown command", args: []string{"mdsite", "serve"}, wantCode: ExitUsage, wantStderr: "unknown command: serve"},
		{name: "bad build flag", args: []string{"mdsite", "build", "--format"}, wantCode: ExitUsage, wantStderr: "error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			if code := run(context.Background(), tt.args, env); code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yaml")
	env, stdout, _ := testEnv(nil)

	if err := runInit([]string{path}, env); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Created "+path) {
		t.Errorf("stdout = %q", stdout.String())
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("written config = %+v, want defaults", *cfg)
	}

	t.Run("refuses to overwrite", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("workers: 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		env, _, _ := testEnv(nil)
		err := runInit([]string{path}, env)
		if !errors.Is(err, ErrConfigExists) {
			t.Errorf("err = %v, want ErrConfigExists", err)
		}
		if got := readFile(t, path); got != "workers: 2\n" {
			t.Errorf("file changed to %q", got)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		env, _, _ := testEnv(nil)
		if err := runInit([]string{"--force", path}, env); err != nil {
			t.Fatalf("runInit(--force) error = %v", err)
		}
		if got := readFile(t, path); got == "workers: 2\n" {
			t.Error("file was not overwritten")
		}
	})
}

func TestRunInit_Usage(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	err := runInit([]string{"a.yaml", "b.yaml"}, env)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("err = %v, want ErrUsage", err)
	}
	if code := exitCodeFor(err); code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
}
