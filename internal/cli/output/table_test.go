package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

type summary struct {
	Name        string    `json:"session_name"`
	LastUpdated string    `json:"last_updated"`
	Windows     int       `json:"num_windows"`
	Tabs        int       `json:"num_tabs"`
	UpdatedAt   time.Time `json:"-" table:"age,wide,humanize"`
}

func TestTableFormatter_Grid(t *testing.T) {
	data := []summary{
		{Name: "work", LastUpdated: "2024/06/01 00:00:00", Windows: 2, Tabs: 12},
		{Name: "home", LastUpdated: "2024/01/01 00:00:00", Windows: 1, Tabs: 3},
	}

	var buf bytes.Buffer
	f := &TableFormatter{Style: StyleGrid}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `+--------------+---------------------+-------------+----------+
| session_name | last_updated        | num_windows | num_tabs |
+--------------+---------------------+-------------+----------+
| work         | 2024/06/01 00:00:00 | 2           | 12       |
+--------------+---------------------+-------------+----------+
| home         | 2024/01/01 00:00:00 | 1           | 3        |
+--------------+---------------------+-------------+----------+
`
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatter_GridEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{Style: StyleGrid}
	if err := f.Format(&buf, []summary{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `+--------------+--------------+-------------+----------+
| session_name | last_updated | num_windows | num_tabs |
+--------------+--------------+-------------+----------+
`
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatter_GridWideWidth(t *testing.T) {
	table := &Table{
		Headers: []string{"name"},
		Rows:    [][]string{{"仕事"}, {"ab"}},
	}

	var buf bytes.Buffer
	if err := table.RenderGrid(&buf); err != nil {
		t.Fatalf("RenderGrid() error = %v", err)
	}

	want := `+------+
| name |
+------+
| 仕事 |
+------+
| ab   |
+------+
`
	if buf.String() != want {
		t.Errorf("RenderGrid() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatter_Wide(t *testing.T) {
	data := []summary{
		{Name: "work", LastUpdated: "x", UpdatedAt: time.Now().Add(-72 * time.Hour)},
		{Name: "old", LastUpdated: "y"},
	}

	t.Run("narrow hides age", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (&TableFormatter{}).Format(&buf, data); err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if strings.Contains(buf.String(), "age") {
			t.Errorf("age column should be wide-only:\n%s", buf.String())
		}
	})

	t.Run("wide humanizes age", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (&TableFormatter{Wide: true}).Format(&buf, data); err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "| age ") && !strings.Contains(out, "| age") {
			t.Errorf("missing age header:\n%s", out)
		}
		if !strings.Contains(out, "3 days ago") {
			t.Errorf("missing humanized age:\n%s", out)
		}
		if !strings.Contains(out, "| -") {
			t.Errorf("zero time should render as '-':\n%s", out)
		}
	})
}

func TestTableFormatter_Plain(t *testing.T) {
	data := []summary{{Name: "work", LastUpdated: "2024/06/01 00:00:00", Windows: 2, Tabs: 5}}

	var buf bytes.Buffer
	if err := (&TableFormatter{Style: StylePlain}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "SESSION_NAME") || !strings.Contains(lines[0], "NUM_TABS") {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); !reflect.DeepEqual(fields, []string{"work", "2024/06/01", "00:00:00", "2", "5"}) {
		t.Errorf("row fields = %v", fields)
	}
}

func TestTableFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q", buf.String())
	}
}

func TestTableFormatter_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"map", map[string]string{"k": "v"}},
		{"single struct", summary{Name: "work"}},
		{"slice of strings", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&TableFormatter{}).Format(&buf, tt.data); err == nil {
				t.Errorf("Format() should reject %T", tt.data)
			}
			if buf.Len() != 0 {
				t.Errorf("Format() wrote %q on error", buf.String())
			}
		})
	}
}

type skipFieldStruct struct {
	Name   string `json:"name"`
	Secret string `json:"-"`
	Skip   string `json:"skip" table:"-"`
}

func TestTableFormatter_SkipFields(t *testing.T) {
	var buf bytes.Buffer
	data := []skipFieldStruct{{Name: "visible", Secret: "s", Skip: "hidden"}}
	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "skip") || strings.Contains(out, "hidden") {
		t.Error("Format() should skip table:\"-\" fields")
	}
	if !strings.Contains(out, "secret") {
		t.Error("json:\"-\" should fall back to the snake-cased field name")
	}
}

type unexportedStruct struct {
	Public  string
	private string //nolint:unused
}

func TestTableFormatter_UnexportedFields(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, []unexportedStruct{{Public: "visible"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "public") {
		t.Error("Format() missing public field")
	}
	if strings.Contains(buf.String(), "private") {
		t.Error("Format() should not include unexported fields")
	}
}

type sliceMapStruct struct {
	Items []string       `json:"items"`
	Meta  map[string]int `json:"meta"`
}

func TestTableFormatter_NestedTypes(t *testing.T) {
	var buf bytes.Buffer
	data := []sliceMapStruct{{Items: []string{"a", "b"}, Meta: map[string]int{"x": 1}}}
	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[2 items]") {
		t.Error("Format() should show slice item count")
	}
	if !strings.Contains(buf.String(), "{1 keys}") {
		t.Error("Format() should show map key count")
	}
}

func TestFormatValue(t *testing.T) {
	s := "ptr"
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"empty string", "", "-"},
		{"int", 42, "42"},
		{"negative", -3, "-3"},
		{"uint", uint(7), "7"},
		{"float", 3.14159, "3.14"},
		{"bool", true, "true"},
		{"empty slice", []string{}, "-"},
		{"pointer", &s, "ptr"},
		{"time", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), "2024-06-01 09:30"},
		{"zero time", time.Time{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(reflect.ValueOf(tt.in)); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if got := formatValue(reflect.Value{}); got != "" {
		t.Errorf("formatValue(invalid) = %q, want empty", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"LastUpdated", "last_updated"},
		{"UpdatedAt", "updated_at"},
		{"lower", "lower"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toSnakeCase(tt.in); got != tt.want {
				t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
