package output

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Style selects how a Table is drawn.
type Style int

const (
	// StyleGrid draws every cell inside +---+ borders, header included.
	StyleGrid Style = iota
	// StylePlain aligns columns with spaces and upper-cases headers.
	StylePlain
)

// TableFormatter formats a slice of structs as an ASCII table.
type TableFormatter struct {
	Wide  bool
	Style Style
}

// Format formats data, a slice of structs, as a table. Columns follow the
// struct fields; see columnsOf.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	table, err := toTable(data, f.Wide)
	if err != nil {
		return err
	}

	if f.Style == StylePlain {
		return table.RenderPlain(w)
	}
	return table.RenderGrid(w)
}

// column describes how one struct field is shown.
type column struct {
	index    int
	header   string
	humanize bool
}

// columnsOf reads `table` tags of struct type t. The tag holds an optional
// header name followed by flags: "-" hides the field, "wide" shows it only
// in wide mode, "humanize" renders times relative to now.
func columnsOf(t reflect.Type, wide bool) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		col := column{index: i, header: fieldName(field)}
		tag := field.Tag.Get("table")
		if tag == "-" {
			continue
		}

		skip := false
		for j, part := range strings.Split(tag, ",") {
			switch part {
			case "":
			case "wide":
				skip = skip || !wide
			case "humanize":
				col.humanize = true
			default:
				if j == 0 {
					col.header = part
				}
			}
		}
		if skip {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// fieldName returns the json name of field, or its snake-cased Go name.
func fieldName(field reflect.StructField) string {
	if jsonTag := field.Tag.Get("json"); jsonTag != "" {
		name, _, _ := strings.Cut(jsonTag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return toSnakeCase(field.Name)
}

// toTable converts a slice of structs to a Table. Headers come from the
// element type so an empty slice still yields a header row.
func toTable(data any, wide bool) (*Table, error) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("table output needs a slice, got %s", v.Kind())
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("table output needs struct elements, got %s", elemType.Kind())
	}

	cols := columnsOf(elemType, wide)
	table := &Table{}
	for _, c := range cols {
		table.Headers = append(table.Headers, c.header)
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, formatCell(elem.Field(c.index), c))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

var timeType = reflect.TypeOf(time.Time{})

func formatCell(v reflect.Value, c column) string {
	if c.humanize && v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	}
	return formatValue(v)
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	}

	switch v.Kind() {
	case reflect.String:
		s := v.String()
		if s == "" {
			return "-"
		}
		return s
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", v.Float())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", v.Len())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// toSnakeCase converts CamelCase to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderPlain renders the table with aligned columns and upper-case
// headers.
func (t *Table) RenderPlain(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(t.Headers) > 0 {
		upper := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			upper[i] = strings.ToUpper(h)
		}
		fmt.Fprintln(tw, strings.Join(upper, "\t"))
	}

	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// RenderGrid renders the table with +---+ borders around every row. The
// header is drawn like any other row and cells are left-aligned.
func (t *Table) RenderGrid(w io.Writer) error {
	rows := t.Rows
	if len(t.Headers) > 0 {
		rows = append([][]string{t.Headers}, rows...)
	}

	ncols := 0
	for _, row := range rows {
		ncols = max(ncols, len(row))
	}
	if ncols == 0 {
		return nil
	}

	widths := make([]int, ncols)
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var rule strings.Builder
	rule.WriteByte('+')
	for _, width := range widths {
		rule.WriteString(strings.Repeat("-", width+2))
		rule.WriteByte('+')
	}
	rule.WriteByte('\n')

	var out strings.Builder
	out.WriteString(rule.String())
	for _, row := range rows {
		out.WriteByte('|')
		for i, width := range widths {
			var c string
			if i < len(row) {
				c = row[i]
			}
			out.WriteByte(' ')
			out.WriteString(c)
			out.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(c)))
			out.WriteString(" |")
		}
		out.WriteByte('\n')
		out.WriteString(rule.String())
	}

	_, err := io.WriteString(w, out.String())
	return err
}
