// Package output renders command results.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: struct-to-table conversion, grid and plain rendering
//   - json.go: JSON output
//   - yaml.go: YAML output
//
// The grid style boxes every row, header included, in +---+ borders with
// left-aligned cells. Fields tagged `table:"wide"` only appear in wide mode.
package output
