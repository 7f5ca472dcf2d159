// Package envfile reads and writes the flat KEY=VALUE backing file.
//
// Format rules:
//
//   - One KEY=VALUE pair per line, split on the first '='
//   - Leading and trailing whitespace around key and value is stripped on read
//   - Blank lines and lines starting with '#' are ignored
//   - Lines without '=' are skipped without error
//   - No quoting, escaping or multi-line values
//
// Writing always emits the whole set of pairs; the file is truncated first.
package envfile
