package fact

import "testing"

func TestLeafTemplateDefaulting(t *testing.T) {
	tests := []struct {
		name string
		leaf Leaf
		want [4]string
	}{
		{
			name: "message only fills all four slots",
			leaf: Leaf{Message: "m"},
			want: [4]string{"m", "m", "m", "m"},
		},
		{
			name: "message and mid-sentence pair",
			leaf: Leaf{Message: "m", MidSentenceMessage: "mid"},
			want: [4]string{"m", "m", "mid", "mid"},
		},
		{
			name: "message and simplified pair",
			leaf: Leaf{Message: "m", SimplifiedMessage: "s"},
			want: [4]string{"m", "s", "m", "s"},
		},
		{
			name: "full quadruple",
			leaf: Leaf{
				Message:                      "m",
				SimplifiedMessage:            "s",
				MidSentenceMessage:           "mid",
				MidSentenceSimplifiedMessage: "mids",
			},
			want: [4]string{"m", "s", "mid", "mids"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := True(tt.leaf)
			if f.raw != tt.want {
				t.Fatalf("templates = %v, want %v", f.raw, tt.want)
			}
		})
	}
}

func TestLeafArgumentDefaulting(t *testing.T) {
	full := []any{"f"}
	simplified := []any{"s"}
	mid := []any{"m"}
	midSimplified := []any{"ms"}

	tests := []struct {
		name string
		leaf Leaf
		want [4][]any
	}{
		{
			name: "no args default to empty",
			leaf: Leaf{Message: "m"},
			want: [4][]any{nil, nil, nil, nil},
		},
		{
			name: "args parametrize every slot",
			leaf: Leaf{Message: "m", Args: full},
			want: [4][]any{full, full, full, full},
		},
		{
			name: "full and simplified pairs",
			leaf: Leaf{Message: "m", Args: full, SimplifiedArgs: simplified},
			want: [4][]any{full, simplified, full, simplified},
		},
		{
			name: "all four independent",
			leaf: Leaf{
				Message:                   "m",
				Args:                      full,
				SimplifiedArgs:            simplified,
				MidSentenceArgs:           mid,
				MidSentenceSimplifiedArgs: midSimplified,
			},
			want: [4][]any{full, simplified, mid, midSimplified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := True(tt.leaf)
			for mode, want := range tt.want {
				got := f.args[mode]
				if len(got) != len(want) {
					t.Fatalf("mode %s: args = %v, want %v", Mode(mode), got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("mode %s: args[%d] = %v, want %v", Mode(mode), i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestLeafCopiesArgumentSlices(t *testing.T) {
	args := []any{"before"}
	f := True(Leaf{Message: "value is %s", Args: args})
	args[0] = "after"

	if got := f.Message(); got != `true: value is "before"` {
		t.Fatalf("Message() = %q, want the snapshot taken at construction", got)
	}
}

func TestTrueIgnoresCause(t *testing.T) {
	f := True(Leaf{Message: "ok", Cause: errCause("ignored")})
	if f.Cause() != nil {
		t.Fatal("True recorded a cause")
	}
}

func TestLeafKinds(t *testing.T) {
	if got := leafTrue("a").Kind(); got != KindLeafTrue {
		t.Fatalf("True kind = %s, want LeafTrue", got)
	}
	if got := leafFalse("a").Kind(); got != KindLeafFalse {
		t.Fatalf("False kind = %s, want LeafFalse", got)
	}
}
