package snapshot

import (
	"fmt"
	"strings"
	"testing"
)

// buildDoc returns a recovery document with the given number of windows,
// each holding tabs tabs with three history entries.
func buildDoc(windows, tabs int) string {
	var sb strings.Builder
	sb.WriteString(`{"version":["sessionrestore",1],"windows":[`)
	for w := 0; w < windows; w++ {
		if w > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{"tabs":[`)
		for t := 0; t < tabs; t++ {
			if t > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb,
				`{"entries":[{"url":"about:blank"},{"url":"https://w%d.example/%d"},{"url":"https://w%d.example/%d/next"}],"index":3}`,
				w, t, w, t)
		}
		sb.WriteString(`]}`)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func BenchmarkDecode(b *testing.B) {
	for _, scale := range []struct{ windows, tabs int }{
		{1, 10},
		{5, 50},
		{20, 200},
	} {
		data, err := Encode([]byte(buildDoc(scale.windows, scale.tabs)))
		if err != nil {
			b.Fatalf("Encode() error = %v", err)
		}

		b.Run(fmt.Sprintf("windows_%d_tabs_%d", scale.windows, scale.tabs), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decode(data); err != nil {
					b.Fatalf("Decode() error = %v", err)
				}
			}
		})
	}
}

func TestBuildDoc_Decodes(t *testing.T) {
	windows, err := ExtractWindows([]byte(buildDoc(3, 4)))
	if err != nil {
		t.Fatalf("ExtractWindows() error = %v", err)
	}
	if len(windows) != 3 {
		t.Fatalf("len(windows) = %d, want 3", len(windows))
	}
	for i, w := range windows {
		if len(w) != 4 {
			t.Errorf("window %d: len = %d, want 4", i, len(w))
		}
		want := fmt.Sprintf("https://w%d.example/3/next", i)
		if w[3] != want {
			t.Errorf("window %d: last tab = %q, want %q", i, w[3], want)
		}
	}
}
