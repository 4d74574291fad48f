package script

import "testing"

func TestRewriteSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", `(line a b :id "base")`, `(line a b "__kw_id" "base")`},
		{"keyword flag", `(spline cps :degree 2 :closed)`, `(spline cps "__kw_degree" 2 "__kw_closed")`},
		{"hyphenated keyword", `:snap-distance 4`, `"__kw_snap-distance" 4`},
		{"keyword inside string", `"at :origin"`, `"at :origin"`},
		{"escaped quote in string", `"say \":hi\"" :x`, `"say \":hi\"" "__kw_x"`},
		{"backtick string", "`a-b :c`", "`a-b :c`"},
		{"assignment", `(def x := 10)`, `(def x := 10)`},
		{"kebab identifier", `(ellipse-axes c m n)`, `(ellipse_axes c m n)`},
		{"subtraction", `(- 10 5)`, `(- 10 5)`},
		{"spaced subtraction", `(- hole-r 1)`, `(- hole_r 1)`},
		{"negative literal", `(pt -5 0)`, `(pt -5 0)`},
		{"number then minus", `(pt 5-x 0)`, `(pt 5_x 0)`},
		{"comment", ";; note :kw\n(pt 1 2)", "// note :kw\n(pt 1 2)"},
		{"trailing comment", `(pt 1 2) ; origin`, `(pt 1 2) // origin`},
		{"unterminated string", `"open :kw`, `"open :kw`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteSource(tt.in); got != tt.want {
				t.Errorf("rewriteSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
