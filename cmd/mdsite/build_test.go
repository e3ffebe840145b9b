package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

// site lays out a content, static and output directory under one root and
// writes a config file pointing at them.
type site struct {
	root, content, static, output, config string
}

func newSite(t *testing.T, extraYAML string) site {
	t.Helper()
	root := t.TempDir()
	s := site{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		output:  filepath.Join(root, "docs"),
		config:  filepath.Join(root, "mdsite.yaml"),
	}
	yaml := fmt.Sprintf("content:\n  dir: %q\nstatic:\n  dir: %q\noutput:\n  dir: %q\n%s",
		s.content, s.static, s.output, extraYAML)
	if err := os.WriteFile(s.config, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return s
}

func (s site) build(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	env, stdout, stderr := testEnv(nil)
	argv := append([]string{"mdsite", "build", "--config", s.config}, args...)
	code := run(context.Background(), argv, env)
	return code, stdout.String(), stderr.String()
}

func TestRunBuild_Site(t *testing.T) {
	t.Parallel()

	s := newSite(t, "site:\n  basePath: /blog/\n")
	writeFiles(t, s.content, map[string]string{
		"index.md":          "# Home\n\nSee [about](/about.html) and **more**.",
		"about.md":          "# About\n\n> Keep it small.",
		"posts/first.md":    "# First post\n\n- one\n- two",
		"posts/notes.txt":   "ignored",
		".drafts/hidden.md": "# Hidden",
	})
	writeFiles(t, s.static, map[string]string{
		"images/logo.png": "png",
	})

	code, stdout, stderr := s.build(t)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "3 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary", stdout)
	}

	index := readFile(t, filepath.Join(s.output, "index.html"))
	for _, want := range []string{
		"<title>Home</title>",
		`<a href="/blog/about.html">about</a>`,
		"<b>more</b>",
		`href="/blog/index.css"`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q:\n%s", want, index)
		}
	}

	post := readFile(t, filepath.Join(s.output, "posts", "first.html"))
	if !strings.Contains(post, "<ul><li>one</li><li>two</li></ul>") {
		t.Errorf("posts/first.html = %s", post)
	}

	if got := readFile(t, filepath.Join(s.output, "images", "logo.png")); got != "png" {
		t.Errorf("static copy = %q", got)
	}
	if css := readFile(t, filepath.Join(s.output, stylesheetName)); css == "" {
		t.Error("default stylesheet is empty")
	}
	for _, absent := range []string{"posts/notes.html", ".drafts/hidden.html"} {
		if _, err := os.Stat(filepath.Join(s.output, filepath.FromSlash(absent))); err == nil {
			t.Errorf("%s should not be generated", absent)
		}
	}
}

func TestRunBuild_StaticStylesheetWins(t *testing.T) {
	t.Parallel()

	s := newSite(t, "")
	writeFiles(t, s.content, map[string]string{"index.md": "# Home"})
	writeFiles(t, s.static, map[string]string{stylesheetName: "body{color:red}"})

	if code, _, stderr := s.build(t, "-q"); code != ExitSuccess {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
	}
	if got := readFile(t, filepath.Join(s.output, stylesheetName)); got != "body{color:red}" {
		t.Errorf("%s = %q, want the static copy", stylesheetName, got)
	}
}

func TestRunBuild_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantStale bool
	}{
		{name: "clean by default", wantStale: false},
		{name: "no-clean keeps files", args: []string{"--no-clean"}, wantStale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSite(t, "")
			writeFiles(t, s.content, map[string]string{"index.md": "# Home"})
			writeFiles(t, s.output, map[string]string{"stale.html": "old"})

			if code, _, stderr := s.build(t, tt.args...); code != ExitSuccess {
				t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
			}
			_, err := os.Stat(filepath.Join(s.output, "stale.html"))
			if gotStale := err == nil; gotStale != tt.wantStale {
				t.Errorf("stale file present = %v, want %v", gotStale, tt.wantStale)
			}
		})
	}
}

func TestRunBuild_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extraYAML  string
		files      map[string]string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "page without title",
			files:      map[string]string{"index.md": "# Home", "untitled.md": "just text"},
			wantCode:   ExitContent,
			wantStderr: "FAILED",
		},
		{
			name:       "malformed markdown",
			files:      map[string]string{"index.md": "# Home\n\nan **open bold"},
			wantCode:   ExitContent,
			wantStderr: "hint:",
		},
		{
			name:       "no pages",
			files:      map[string]string{"readme.txt": "nothing"},
			wantCode:   ExitIO,
			wantStderr: "no markdown pages found",
		},
		{
			name:       "unknown engine",
			files:      map[string]string{"index.md": "# Home"},
			args:       []string{"--engine", "pandoc"},
			wantCode:   ExitUsage,
			wantStderr: "pandoc",
		},
		{
			name:       "unknown template",
			files:      map[string]string{"index.md": "# Home"},
			args:       []string{"--template", "fancy"},
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "invalid workers",
			files:      map[string]string{"index.md": "# Home"},
			args:       []string{"--workers", "99"},
			wantCode:   ExitUsage,
			wantStderr: "worker",
		},
		{
			name:       "invalid base path",
			files:      map[string]string{"index.md": "# Home"},
			args:       []string{"blog"},
			wantCode:   ExitUsage,
			wantStderr: "basePath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSite(t, tt.extraYAML)
			writeFiles(t, s.content, tt.files)

			code, _, stderr := s.build(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d, stderr:\n%s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunBuild_FailedPageDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	s := newSite(t, "")
	writeFiles(t, s.content, map[string]string{
		"a.md": "# A",
		"b.md": "no heading here",
		"c.md": "# C",
	})

	code, stdout, _ := s.build(t)
	if code != ExitContent {
		t.Fatalf("exit = %d, want %d", code, ExitContent)
	}
	for _, name := range []string{"a.html", "c.html"} {
		if _, err := os.Stat(filepath.Join(s.output, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(stdout, "2 succeeded, 1 failed") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunBuild_FallbackTitle(t *testing.T) {
	t.Parallel()

	s := newSite(t, "site:\n  title: My Site\n")
	writeFiles(t, s.content, map[string]string{"index.md": "no heading here"})

	if code, _, stderr := s.build(t); code != ExitSuccess {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
	}
	if page := readFile(t, filepath.Join(s.output, "index.html")); !strings.Contains(page, "<title>My Site</title>") {
		t.Errorf("index.html = %s", page)
	}
}

func TestRunBuild_OverlappingDirs(t *testing.T) {
	t.Parallel()

	s := newSite(t, "")
	writeFiles(t, s.content, map[string]string{"index.md": "# Home"})

	code, _, _ := s.build(t, "--output", s.root)
	if code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
	if _, err := os.Stat(filepath.Join(s.content, "index.md")); err != nil {
		t.Errorf("content was touched: %v", err)
	}
}

func TestRunBuild_Help(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	if code := run(context.Background(), []string{"mdsite", "build", "--help"}, env); code != ExitSuccess {
		t.Errorf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stderr.String(), "Usage: mdsite build") {
		t.Errorf("stderr = %q, want build usage", stderr.String())
	}
}

func TestLoadBuildConfig_ExplicitMissing(t *testing.T) {
	t.Parallel()

	_, err := loadBuildConfig(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestIsParentDir(t *testing.T) {
	t.Parallel()

	sep := string(filepath.Separator)
	tests := []struct {
		parent, child string
		want          bool
	}{
		{sep + "a", sep + filepath.Join("a", "b"), true},
		{sep + "a", sep + "a", false},
		{sep + filepath.Join("a", "b"), sep + "a", false},
		{sep + "a", sep + "ab", false},
	}
	for _, tt := range tests {
		if got := isParentDir(tt.parent, tt.child); got != tt.want {
			t.Errorf("isParentDir(%q, %q) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestRunBuild_AssetPath(t *testing.T) {
	t.Parallel()

	s := newSite(t, "")
	assetDir := filepath.Join(s.root, "theme")
	writeFiles(t, s.content, map[string]string{"index.md": "# Home\n\nHi"})
	writeFiles(t, assetDir, map[string]string{
		"templates/plain.html": "<main data-title=\"{{ Title }}\">{{ Content }}</main>",
		"styles/default.css":   "main{margin:0}",
	})

	code, _, stderr := s.build(t, "--asset-path", assetDir, "--template", "plain")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
	}
	want := `<main data-title="Home"><div><h1>Home</h1><p>Hi</p></div></main>`
	if got := readFile(t, filepath.Join(s.output, "index.html")); got != want {
		t.Errorf("index.html = %q, want %q", got, want)
	}
	if got := readFile(t, filepath.Join(s.output, stylesheetName)); got != "main{margin:0}" {
		t.Errorf("%s = %q, want the theme stylesheet", stylesheetName, got)
	}
}

func TestRunBuild_MaxProcsLogFollowsVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "verbose", args: []string{"--verbose"}, want: true},
		{name: "default", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSite(t, "")
			writeFiles(t, s.content, map[string]string{"index.md": "# Home"})

			code, _, stderr := s.build(t, tt.args...)
			if code != ExitSuccess {
				t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
			}
			if got := strings.Contains(stderr, "maxprocs"); got != tt.want {
				t.Errorf("maxprocs logged = %v, want %v\nstderr:\n%s", got, tt.want, stderr)
			}
		})
	}
}
