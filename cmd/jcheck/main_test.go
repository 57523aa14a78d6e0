// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func runWith(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("LOG_LEVEL", "ERROR")
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Write test file: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	valid := result{Code: 0, Stdout: "Valid JSON\n"}
	invalid := result{Code: 1, Stderr: "Invalid JSON\n"}

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  result
	}{
		{"EmptyObject", "{}\n", nil, valid},
		{"Nested", `{"a":1,"b":[1,2,3]}`, []string{"-"}, valid},
		{"Empty", "", nil, invalid},
		{"ScalarRoot", "null", nil, invalid},
		{"ScalarRootAllowed", "null", []string{"-scalar"}, valid},
		{"PermissiveEscape", `{"a":"x\q"}`, nil, valid},
		{"StrictEscape", `{"a":"x\q"}`, []string{"-strict"}, invalid},
		{"TrailingComma", `{"a":1,}`, nil, invalid},
		{"JWCC", "{\"a\":1, // comment\n}", []string{"-jwcc"}, valid},
		{"TooDeep", `[[[]]]`, []string{"-max-depth", "2"}, invalid},
		{"Verbose", `[1,]`, []string{"-v"}, result{
			Code:   1,
			Stderr: "Invalid JSON: at 1:3: number: got ']', want digit\n",
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := runWith(t, test.stdin, test.args...)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("run %q: (-want, +got)\n%s", test.args, diff)
			}
		})
	}
}

func TestRun_file(t *testing.T) {
	good := writeFile(t, "good.json", `{"episodes": [{"id": 1}, {"id": 2}]}`)
	bad := writeFile(t, "bad.json", `{"episodes": [`)

	if got := runWith(t, "", good); got.Code != 0 {
		t.Errorf("run %s: got %+v, want success", good, got)
	}
	if got := runWith(t, "", bad); got.Code != 1 || got.Stderr != "Invalid JSON\n" {
		t.Errorf("run %s: got %+v, want failure", bad, got)
	}
}

func TestRun_unreadable(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nonesuch.json")
		got := runWith(t, "{}", path)
		if got.Code != 1 {
			t.Errorf("Exit code: got %d, want 1", got.Code)
		}
		if !strings.Contains(got.Stderr, "cannot read input") {
			t.Errorf("Stderr: got %q, want read error", got.Stderr)
		}
		if strings.Contains(got.Stderr, "Invalid JSON") {
			t.Errorf("Stderr: got %q, input should not have been checked", got.Stderr)
		}
	})

	t.Run("Permission", func(t *testing.T) {
		var opened string
		mtest.Swap(t, &openFile, func(path string) (io.ReadCloser, error) {
			opened = path
			return nil, fs.ErrPermission
		})
		got := runWith(t, "", "secret.json")
		if got.Code != 1 || got.Stdout != "" {
			t.Errorf("run: got %+v, want failure", got)
		}
		if opened != "secret.json" {
			t.Errorf("Opened %q, want secret.json", opened)
		}
		if !strings.Contains(got.Stderr, fs.ErrPermission.Error()) {
			t.Errorf("Stderr: got %q, want %q", got.Stderr, fs.ErrPermission)
		}
	})
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

func TestRun_stdinError(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	var stdout, stderr bytes.Buffer
	code := run(nil, errReader{errors.New("broken pipe")}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("Exit code: got %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "broken pipe") {
		t.Errorf("Stderr: got %q, want read error", stderr.String())
	}
}

func TestRun_usage(t *testing.T) {
	for _, args := range [][]string{
		{"a.json", "b.json"},
		{"-nonesuch"},
	} {
		got := runWith(t, "{}", args...)
		if got.Code != 1 {
			t.Errorf("run %q: exit code %d, want 1", args, got.Code)
		}
		if !strings.Contains(got.Stderr, "Usage: jcheck") {
			t.Errorf("run %q: stderr %q, want usage", args, got.Stderr)
		}
	}
}
