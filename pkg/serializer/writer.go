package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oe-forge/bbgrep/pkg/search"
)

// Format represents the output format type.
type Format string

const (
	// FormatText outputs the classic per-recipe block format.
	FormatText Format = "text"
	// FormatJSON outputs results in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs results in YAML format.
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// Writer handles serialization of search results to various formats.
// Close must be called to release file handles when using
// NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a new Writer with the specified format and output
// destination. If output is nil, os.Stdout is used. If format is unknown,
// defaults to text format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to text", "format", format)
		format = FormatText
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter creates a new Writer that outputs to stdout in the
// specified format.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a new Writer that outputs to the specified
// file path in the given format. If the file cannot be created or the path
// is empty, it falls back to stdout. Remember to call Close() on the
// returned Writer to ensure the file is properly closed.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout", "error", err, "path", trimmed)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Close releases any resources associated with the Writer. It is safe to
// call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes the search results in the configured format. Context is
// accepted for interface consistency; file and stdout writes are fast and
// blocking.
func (w *Writer) Serialize(ctx context.Context, results []search.Result) error {
	switch w.format {
	case FormatText:
		return w.serializeText(results)
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

// serializeText renders one block per result:
//
//	busybox                    recipe-name match, printed standalone
//	acl:                       header when only sections below matched
//	  Provides:
//	    libacl
//	  Packages:
//	    libacl1
func (w *Writer) serializeText(results []search.Result) error {
	var b strings.Builder
	for _, r := range results {
		if r.NameMatched {
			fmt.Fprintln(&b, r.Recipe)
		} else {
			fmt.Fprintf(&b, "%s:\n", r.Recipe)
		}
		writeSection(&b, "Provides:", r.Provides)
		writeSection(&b, "Packages:", r.Packages)
	}

	if _, err := io.WriteString(w.output, b.String()); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

func writeSection(b *strings.Builder, header string, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", header)
	for _, e := range entries {
		fmt.Fprintf(b, "    %s\n", e)
	}
}
