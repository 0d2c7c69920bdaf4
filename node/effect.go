package node

// TextEffectType enumerates the inline formatting wrappers.
type TextEffectType int

const (
	EffectStrong TextEffectType = iota
	EffectEmphasis
	EffectUnderline
	EffectStrikethrough
	EffectMonospace
	EffectSubscript
	EffectSuperscript
	EffectBlockquote
	EffectSpan
)

var effectNames = map[TextEffectType]string{
	EffectStrong:        "strong",
	EffectEmphasis:      "emphasis",
	EffectUnderline:     "underline",
	EffectStrikethrough: "strikethrough",
	EffectMonospace:     "monospace",
	EffectSubscript:     "subscript",
	EffectSuperscript:   "superscript",
	EffectBlockquote:    "blockquote",
	EffectSpan:          "span",
}

func (t TextEffectType) String() string { return effectNames[t] }

// TextEffectElement wraps children in an inline formatting effect. The effect
// itself never survives into the canonical text.
type TextEffectElement struct {
	Type  TextEffectType
	Nodes []Node
}

func (*TextEffectElement) Kind() Kind { return KindTextEffect }

// Text-effect wrappers are inline regardless of effect, blockquote included.
func (*TextEffectElement) BlockLevel() bool { return false }

func (e *TextEffectElement) Children() []Node { return e.Nodes }
func (e *TextEffectElement) Text() string     { return joinText(e.Nodes) }

// TextBreakType enumerates the flow-break variants.
type TextBreakType int

const (
	BreakParagraph TextBreakType = iota
	BreakLine
	BreakHorizontalRule
)

var breakNames = map[TextBreakType]string{
	BreakParagraph:      "paragraph",
	BreakLine:           "line-break",
	BreakHorizontalRule: "horizontal-rule",
}

func (t TextBreakType) String() string { return breakNames[t] }

// TextBreakElement is a paragraph, a line break, or a horizontal rule.
// Only paragraphs carry children.
type TextBreakElement struct {
	Type  TextBreakType
	Nodes []Node
}

func (*TextBreakElement) Kind() Kind { return KindTextBreak }

func (b *TextBreakElement) BlockLevel() bool { return b.Type != BreakLine }

func (b *TextBreakElement) Children() []Node { return b.Nodes }

func (b *TextBreakElement) Text() string {
	switch b.Type {
	case BreakLine:
		return "\n"
	case BreakHorizontalRule:
		return ""
	}
	return joinText(b.Nodes)
}
