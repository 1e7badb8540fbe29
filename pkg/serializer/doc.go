// Package serializer renders search results to an output destination.
//
// Three formats are supported:
//   - text: the classic per-recipe block format (default)
//   - json: machine-parseable, indented
//   - yaml: human-readable structured output
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatText, path)
//	defer w.Close() // releases file handles
//	if err := w.Serialize(ctx, results); err != nil {
//		return err
//	}
package serializer
