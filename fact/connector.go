package fact

import "github.com/louisbranch/attest/internal/platform/i18n/catalog"

// Catalog keys for the connector templates joining two fact messages.
const (
	keyAnd            = "fact.and"
	keyAndLeftParens  = "fact.and_left_parens"
	keyAndRightParens = "fact.and_right_parens"
	keyAndBothParens  = "fact.and_both_parens"
	keyOr             = "fact.or"
	keyOrLeftParens   = "fact.or_left_parens"
	keyOrRightParens  = "fact.or_right_parens"
	keyOrBothParens   = "fact.or_both_parens"
)

// fallbackConnectors keeps rendering total if a catalog key is ever
// missing for every locale.
var fallbackConnectors = map[string]string{
	keyAnd:            "%s, and %s",
	keyAndLeftParens:  "(%s), and %s",
	keyAndRightParens: "%s, and (%s)",
	keyAndBothParens:  "(%s), and (%s)",
	keyOr:             "%s, or %s",
	keyOrLeftParens:   "(%s), or %s",
	keyOrRightParens:  "%s, or (%s)",
	keyOrBothParens:   "(%s), or (%s)",
}

func connector(locale, key string) string {
	if raw, ok := catalog.Default().Message(locale, key); ok {
		return raw
	}
	return fallbackConnectors[key]
}

// AndConnector returns the raw conjunction template for joining two fact
// messages, parenthesizing whichever operands are composite. It is a pure
// selection helper for callers laying out nested diagrams; the combinators
// themselves always join with the plain connector.
func AndConnector(locale string, leftComposite, rightComposite bool) string {
	switch {
	case leftComposite && rightComposite:
		return connector(locale, keyAndBothParens)
	case leftComposite:
		return connector(locale, keyAndLeftParens)
	case rightComposite:
		return connector(locale, keyAndRightParens)
	default:
		return connector(locale, keyAnd)
	}
}

// OrConnector is the disjunction counterpart of AndConnector.
func OrConnector(locale string, leftComposite, rightComposite bool) string {
	switch {
	case leftComposite && rightComposite:
		return connector(locale, keyOrBothParens)
	case leftComposite:
		return connector(locale, keyOrLeftParens)
	case rightComposite:
		return connector(locale, keyOrRightParens)
	default:
		return connector(locale, keyOr)
	}
}
