package fact

import (
	"strconv"

	"github.com/louisbranch/attest/internal/platform/i18n/catalog"
	"github.com/louisbranch/attest/prettify"
)

// Kind identifies the variant of a fact node.
type Kind int

const (
	KindLeafTrue Kind = iota
	KindLeafFalse
	KindNot
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindLeafTrue:
		return "LeafTrue"
	case KindLeafFalse:
		return "LeafFalse"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	default:
		return "Unknown"
	}
}

// Mode selects one of the four message template and argument slots.
type Mode int

const (
	ModeFull Mode = iota
	ModeSimplified
	ModeMidSentenceFull
	ModeMidSentenceSimplified
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "Full"
	case ModeSimplified:
		return "Simplified"
	case ModeMidSentenceFull:
		return "MidSentenceFull"
	case ModeMidSentenceSimplified:
		return "MidSentenceSimplified"
	default:
		return "Unknown"
	}
}

// Formatter bundles the value prettifier and locale used to render a fact's
// messages. Combinators inherit the formatter of the left (or only)
// operand, so it travels through the tree as explicit configuration rather
// than ambient state. The zero value uses prettify.Default and the base
// catalog locale.
type Formatter struct {
	Locale   string
	Prettify prettify.Prettifier
}

func (fm Formatter) locale() string {
	if fm.Locale == "" {
		return catalog.BaseLocale
	}
	return fm.Locale
}

func (fm Formatter) prettify(value any) string {
	if fm.Prettify == nil {
		return prettify.Default(value)
	}
	return fm.Prettify(value)
}

// Fact is an immutable node in a boolean expression tree. Each node stores
// a truth value and four raw message templates with matching argument
// lists, indexed by Mode. All fields are set at construction and never
// mutated, so concurrent rendering of the same tree is safe.
type Fact struct {
	kind      Kind
	value     bool
	raw       [4]string
	args      [4][]any
	cause     error
	formatter Formatter

	// inner is the negated operand on Not nodes, kept so that double
	// negation can return the original fact by identity.
	inner *Fact
}

// Truth reports whether the fact holds.
func (f *Fact) Truth() bool {
	return f.value
}

// Kind returns the variant of this node.
func (f *Fact) Kind() Kind {
	return f.kind
}

// Composite reports whether the fact was produced by a combinator. It is
// true for Not, And, and Or nodes and false for leaves, and drives the
// parenthesization choice when composing messages (see AndConnector).
func (f *Fact) Composite() bool {
	switch f.kind {
	case KindNot, KindAnd, KindOr:
		return true
	default:
		return false
	}
}

// Cause returns the underlying failure attached to a false leaf, or nil.
// Combinators never propagate causes.
func (f *Fact) Cause() error {
	return f.cause
}

// Formatter returns the formatter this fact renders with.
func (f *Fact) Formatter() Formatter {
	return f.formatter
}

// Message renders the full message, prefixed with the truth value.
func (f *Fact) Message() string {
	return f.prefixed(ModeFull)
}

// SimplifiedMessage renders the abbreviated message, prefixed with the
// truth value.
func (f *Fact) SimplifiedMessage() string {
	return f.prefixed(ModeSimplified)
}

// MidSentenceMessage renders the full message in mid-sentence grammar,
// prefixed with the truth value.
func (f *Fact) MidSentenceMessage() string {
	return f.prefixed(ModeMidSentenceFull)
}

// MidSentenceSimplifiedMessage renders the abbreviated message in
// mid-sentence grammar, prefixed with the truth value.
func (f *Fact) MidSentenceSimplifiedMessage() string {
	return f.prefixed(ModeMidSentenceSimplified)
}

func (f *Fact) prefixed(mode Mode) string {
	return strconv.FormatBool(f.value) + ": " + f.render(mode)
}

// render substitutes the slot's arguments into its raw template. Nested
// Rendering arguments recurse through their own fact's render, so message
// composition stays lazy at every depth. Nothing is cached: each call
// recomputes the string.
func (f *Fact) render(mode Mode) string {
	raw := f.raw[mode]
	args := f.args[mode]
	if len(args) == 0 {
		return raw
	}
	rendered := make([]any, len(args))
	for i, arg := range args {
		rendered[i] = f.formatter.prettify(arg)
	}
	return catalog.Default().Format(f.formatter.locale(), raw, rendered...)
}

// Rendering is a deferred view of a fact's message in a single mode. It
// implements fmt.Stringer, computing the string on demand every time, which
// is how nested facts appear inside a composed message without being
// rendered eagerly. The default prettifier passes Stringer values through
// verbatim, so rendered sub-messages are never quoted.
type Rendering struct {
	Fact *Fact
	Mode Mode
}

func (r Rendering) String() string {
	return r.Fact.render(r.Mode)
}
