package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/oe-forge/bbgrep/pkg/search"
)

func TestWriterSerializeText(t *testing.T) {
	tests := []struct {
		name    string
		results []search.Result
		want    string
	}{
		{
			name: "name match standalone",
			results: []search.Result{
				{File: "/meta/busybox_1.36.bb", Recipe: "busybox", NameMatched: true},
			},
			want: "busybox\n",
		},
		{
			name: "name match with trailing provides",
			results: []search.Result{
				{Recipe: "busybox", NameMatched: true, Provides: []string{"busybox"}},
			},
			want: "busybox\n  Provides:\n    busybox\n",
		},
		{
			name: "provides under header",
			results: []search.Result{
				{Recipe: "acl", Provides: []string{"libacl"}},
			},
			want: "acl:\n  Provides:\n    libacl\n",
		},
		{
			name: "packages under header",
			results: []search.Result{
				{Recipe: "glibc", Packages: []string{"libc6", "libc6-extra"}},
			},
			want: "glibc:\n  Packages:\n    libc6\n    libc6-extra\n",
		},
		{
			name: "both sections",
			results: []search.Result{
				{Recipe: "glibc", Provides: []string{"virtual/libc"}, Packages: []string{"libc6"}},
			},
			want: "glibc:\n  Provides:\n    virtual/libc\n  Packages:\n    libc6\n",
		},
		{
			name: "multiple blocks in order",
			results: []search.Result{
				{Recipe: "busybox", NameMatched: true},
				{Recipe: "dash", Packages: []string{"dash"}},
			},
			want: "busybox\ndash:\n  Packages:\n    dash\n",
		},
		{
			name:    "no results, no output",
			results: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(FormatText, &buf)

			if err := w.Serialize(context.Background(), tt.results); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Serialize output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	data := []search.Result{
		{File: "/meta/busybox_1.36.bb", Recipe: "busybox", NameMatched: true, Provides: []string{"busybox"}},
	}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []search.Result
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 1 || result[0].Recipe != "busybox" || !result[0].NameMatched {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	data := []search.Result{
		{File: "/meta/glibc_2.39.bb", Recipe: "glibc", Packages: []string{"libc6"}},
	}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []search.Result
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 1 || result[0].Recipe != "glibc" || len(result[0].Packages) != 1 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestNewWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), []search.Result{{Recipe: "acl", NameMatched: true}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := buf.String(); got != "acl\n" {
		t.Errorf("unknown format should default to text, got %q", got)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	w := NewFileWriterOrStdout(FormatText, path)

	if err := w.Serialize(context.Background(), []search.Result{{Recipe: "busybox", NameMatched: true}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Close is safe to repeat
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(content) != "busybox\n" {
		t.Errorf("file content = %q, want %q", string(content), "busybox\n")
	}
}

func TestFormatIsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("Format(%q).IsUnknown() = true, want false", f)
		}
	}
	if !Format("csv").IsUnknown() {
		t.Error(`Format("csv").IsUnknown() = false, want true`)
	}
}
