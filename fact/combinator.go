package fact

// Not returns the negation of this fact. The full and simplified templates
// swap (negations usually read better in the abbreviated form), argument
// lists swap correspondingly, and the formatter passes through unchanged.
// Negating a negation returns the original fact by identity.
func (f *Fact) Not() *Fact {
	if f.kind == KindNot {
		return f.inner
	}
	return &Fact{
		kind:  KindNot,
		value: !f.value,
		raw: [4]string{
			ModeFull:                  f.raw[ModeSimplified],
			ModeSimplified:            f.raw[ModeFull],
			ModeMidSentenceFull:       f.raw[ModeMidSentenceSimplified],
			ModeMidSentenceSimplified: f.raw[ModeMidSentenceFull],
		},
		args: [4][]any{
			ModeFull:                  f.args[ModeSimplified],
			ModeSimplified:            f.args[ModeFull],
			ModeMidSentenceFull:       f.args[ModeMidSentenceSimplified],
			ModeMidSentenceSimplified: f.args[ModeMidSentenceFull],
		},
		formatter: f.formatter,
		inner:     f,
	}
}

// And combines this fact with a lazily constructed right operand. When the
// receiver is already false, the result is decided and the receiver is
// returned unchanged; the thunk is never invoked, so an expensive or
// side-effecting right-hand expression is never built.
func (f *Fact) And(right func() *Fact) *Fact {
	if !f.value {
		return f
	}
	return And(f, right)
}

// Or combines this fact with a lazily constructed right operand. When the
// receiver is already true, the result is decided and the receiver is
// returned unchanged without invoking the thunk.
func (f *Fact) Or(right func() *Fact) *Fact {
	if f.value {
		return f
	}
	return Or(f, right)
}

// And constructs a conjunction node. The right thunk is forced at most
// once, and only when left is true. When left is false the node copies
// left's templates verbatim and each slot re-renders left in the matching
// mode; otherwise every slot becomes the locale's "and" connector joining
// left (abbreviated, since a satisfied left branch is the less interesting
// one) with right in mid-sentence grammar.
func And(left *Fact, right func() *Fact) *Fact {
	f := &Fact{kind: KindAnd, formatter: left.formatter}

	if !left.value {
		f.value = false
		f.raw = left.raw
		f.args = [4][]any{
			ModeFull:                  {Rendering{Fact: left, Mode: ModeFull}},
			ModeSimplified:            {Rendering{Fact: left, Mode: ModeSimplified}},
			ModeMidSentenceFull:       {Rendering{Fact: left, Mode: ModeMidSentenceFull}},
			ModeMidSentenceSimplified: {Rendering{Fact: left, Mode: ModeMidSentenceFull}},
		}
		return f
	}

	r := right()
	f.value = r.value
	conj := connector(left.formatter.locale(), keyAnd)
	f.raw = [4]string{conj, conj, conj, conj}
	f.args = [4][]any{
		ModeFull: {
			Rendering{Fact: left, Mode: ModeSimplified},
			Rendering{Fact: r, Mode: ModeMidSentenceFull},
		},
		ModeSimplified: {
			Rendering{Fact: left, Mode: ModeSimplified},
			Rendering{Fact: r, Mode: ModeMidSentenceSimplified},
		},
		ModeMidSentenceFull: {
			Rendering{Fact: left, Mode: ModeMidSentenceSimplified},
			Rendering{Fact: r, Mode: ModeMidSentenceFull},
		},
		ModeMidSentenceSimplified: {
			Rendering{Fact: left, Mode: ModeMidSentenceSimplified},
			Rendering{Fact: r, Mode: ModeMidSentenceSimplified},
		},
	}
	return f
}

// Or constructs a disjunction node, the mirror image of And. The right
// thunk is forced at most once, and only when left is false. Unlike And, a
// satisfied left branch of a disjunction is the interesting one, so left
// keeps its full (or mid-sentence-full) rendering when both operands
// appear in the message.
func Or(left *Fact, right func() *Fact) *Fact {
	f := &Fact{kind: KindOr, formatter: left.formatter}

	if left.value {
		f.value = true
		f.raw = left.raw
		f.args = [4][]any{
			ModeFull:                  {Rendering{Fact: left, Mode: ModeFull}},
			ModeSimplified:            {Rendering{Fact: left, Mode: ModeSimplified}},
			ModeMidSentenceFull:       {Rendering{Fact: left, Mode: ModeMidSentenceFull}},
			ModeMidSentenceSimplified: {Rendering{Fact: left, Mode: ModeMidSentenceFull}},
		}
		return f
	}

	r := right()
	f.value = r.value
	conj := connector(left.formatter.locale(), keyOr)
	f.raw = [4]string{conj, conj, conj, conj}
	f.args = [4][]any{
		ModeFull: {
			Rendering{Fact: left, Mode: ModeFull},
			Rendering{Fact: r, Mode: ModeMidSentenceFull},
		},
		ModeSimplified: {
			Rendering{Fact: left, Mode: ModeFull},
			Rendering{Fact: r, Mode: ModeMidSentenceSimplified},
		},
		ModeMidSentenceFull: {
			Rendering{Fact: left, Mode: ModeMidSentenceFull},
			Rendering{Fact: r, Mode: ModeMidSentenceFull},
		},
		ModeMidSentenceSimplified: {
			Rendering{Fact: left, Mode: ModeMidSentenceFull},
			Rendering{Fact: r, Mode: ModeMidSentenceSimplified},
		},
	}
	return f
}
