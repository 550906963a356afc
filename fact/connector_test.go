package fact

import "testing"

func TestAndConnector(t *testing.T) {
	tests := []struct {
		name           string
		leftComposite  bool
		rightComposite bool
		want           string
	}{
		{name: "two leaves", want: "%s, and %s"},
		{name: "composite left", leftComposite: true, want: "(%s), and %s"},
		{name: "composite right", rightComposite: true, want: "%s, and (%s)"},
		{name: "both composite", leftComposite: true, rightComposite: true, want: "(%s), and (%s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AndConnector("en-US", tt.leftComposite, tt.rightComposite); got != tt.want {
				t.Fatalf("AndConnector(%t, %t) = %q, want %q", tt.leftComposite, tt.rightComposite, got, tt.want)
			}
		})
	}
}

func TestOrConnector(t *testing.T) {
	tests := []struct {
		name           string
		locale         string
		leftComposite  bool
		rightComposite bool
		want           string
	}{
		{name: "two leaves", locale: "en-US", want: "%s, or %s"},
		{name: "composite left", locale: "en-US", leftComposite: true, want: "(%s), or %s"},
		{name: "composite right", locale: "en-US", rightComposite: true, want: "%s, or (%s)"},
		{name: "both composite localized", locale: "pt-BR", leftComposite: true, rightComposite: true, want: "(%s), ou (%s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrConnector(tt.locale, tt.leftComposite, tt.rightComposite); got != tt.want {
				t.Fatalf("OrConnector(%t, %t) = %q, want %q", tt.leftComposite, tt.rightComposite, got, tt.want)
			}
		})
	}
}

func TestConnectorFallsBackToBaseLocale(t *testing.T) {
	if got := AndConnector("fr-FR", false, false); got != "%s, and %s" {
		t.Fatalf("AndConnector fallback = %q, want the base-locale template", got)
	}
}
