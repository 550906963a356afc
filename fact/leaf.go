package fact

// Leaf describes a leaf fact to construct. Only Message is required; the
// remaining templates default in tiers so callers specify exactly as much
// differentiation as they need:
//
//   - SimplifiedMessage defaults to Message.
//   - MidSentenceMessage defaults to Message.
//   - MidSentenceSimplifiedMessage defaults to the first of
//     MidSentenceMessage, SimplifiedMessage, Message that was given.
//
// Argument lists cascade the same way: Args parametrizes the
// (full, mid-sentence-full) pair, SimplifiedArgs the
// (simplified, mid-sentence-simplified) pair, and each of the four slots
// can still be set independently. Unset lists default to empty, in which
// case the template is rendered as-is.
type Leaf struct {
	Message                      string
	SimplifiedMessage            string
	MidSentenceMessage           string
	MidSentenceSimplifiedMessage string

	Args                      []any
	SimplifiedArgs            []any
	MidSentenceArgs           []any
	MidSentenceSimplifiedArgs []any

	// Cause is the underlying failure behind a false leaf. True ignores it.
	Cause error

	Formatter Formatter
}

// True constructs a leaf fact that holds.
func True(leaf Leaf) *Fact {
	return newLeaf(KindLeafTrue, true, leaf, nil)
}

// False constructs a leaf fact that does not hold. The leaf's Cause, if
// any, is carried into the assertion error produced by Outcome.
func False(leaf Leaf) *Fact {
	return newLeaf(KindLeafFalse, false, leaf, leaf.Cause)
}

func newLeaf(kind Kind, value bool, leaf Leaf, cause error) *Fact {
	return &Fact{
		kind:  kind,
		value: value,
		raw: [4]string{
			ModeFull:                  leaf.Message,
			ModeSimplified:            firstTemplate(leaf.SimplifiedMessage, leaf.Message),
			ModeMidSentenceFull:       firstTemplate(leaf.MidSentenceMessage, leaf.Message),
			ModeMidSentenceSimplified: firstTemplate(leaf.MidSentenceSimplifiedMessage, leaf.MidSentenceMessage, leaf.SimplifiedMessage, leaf.Message),
		},
		args: [4][]any{
			ModeFull:                  copyArgs(leaf.Args),
			ModeSimplified:            copyArgs(firstArgs(leaf.SimplifiedArgs, leaf.Args)),
			ModeMidSentenceFull:       copyArgs(firstArgs(leaf.MidSentenceArgs, leaf.Args)),
			ModeMidSentenceSimplified: copyArgs(firstArgs(leaf.MidSentenceSimplifiedArgs, leaf.SimplifiedArgs, leaf.MidSentenceArgs, leaf.Args)),
		},
		cause:     cause,
		formatter: leaf.Formatter,
	}
}

func firstTemplate(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func firstArgs(candidates ...[]any) []any {
	for _, candidate := range candidates {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}

// copyArgs snapshots the caller's slice so leaves stay immutable even if
// the caller reuses the backing array.
func copyArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}
