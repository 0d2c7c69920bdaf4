package node

// Text is a raw text run.
type Text struct {
	Content string
}

func (*Text) Kind() Kind       { return KindText }
func (*Text) BlockLevel() bool { return false }
func (*Text) Children() []Node { return nil }
func (t *Text) Text() string   { return t.Content }

// Image is an inline image, either external (Src) or an attachment
// (Filename). Nodes holds the optional caption content.
type Image struct {
	Src           string
	Alt           string
	Title         string
	Width         string
	Height        string
	Filename      string
	VersionAtSave string
	Nodes         []Node
}

func (*Image) Kind() Kind           { return KindImage }
func (*Image) BlockLevel() bool     { return false }
func (img *Image) Children() []Node { return img.Nodes }

func (img *Image) Text() string {
	label := img.Alt
	if label == "" {
		label = img.Filename
	}
	if label == "" {
		label = img.Src
	}
	if label == "" {
		label = "Unknown"
	}
	text := "🖼️ Image: " + label
	if caption := flattenLine(joinText(img.Nodes)); caption != "" {
		text += " (" + caption + ")"
	}
	return text
}

// Emoticon is an ac:emoticon element.
type Emoticon struct {
	Name      string
	Shortname string
	EmojiID   string
	Fallback  string
}

func (*Emoticon) Kind() Kind       { return KindEmoticon }
func (*Emoticon) BlockLevel() bool { return false }
func (*Emoticon) Children() []Node { return nil }

func (e *Emoticon) Text() string {
	switch {
	case e.Fallback != "":
		return e.Fallback
	case e.Shortname != "":
		return e.Shortname
	case e.Name != "":
		return ":" + e.Name + ":"
	}
	return ""
}

// Time is a <time> element carrying a datetime value.
type Time struct {
	Datetime string
}

func (*Time) Kind() Kind       { return KindTime }
func (*Time) BlockLevel() bool { return false }
func (*Time) Children() []Node { return nil }

func (t *Time) Text() string {
	if t.Datetime == "" {
		return "📅 Date"
	}
	return "📅 " + t.Datetime
}

// PlaceholderElement is editor placeholder text (ac:placeholder).
type PlaceholderElement struct {
	Type    string
	Content string
}

func (*PlaceholderElement) Kind() Kind       { return KindPlaceholder }
func (*PlaceholderElement) BlockLevel() bool { return false }
func (*PlaceholderElement) Children() []Node { return nil }

func (p *PlaceholderElement) Text() string {
	if p.Content == "" {
		return "Placeholder"
	}
	return "Placeholder: " + p.Content
}

// InlineCommentMarker wraps text that carries an inline comment reference.
// It is transparent for text rendering.
type InlineCommentMarker struct {
	Ref   string
	Nodes []Node
}

func (*InlineCommentMarker) Kind() Kind         { return KindInlineComment }
func (*InlineCommentMarker) BlockLevel() bool   { return false }
func (m *InlineCommentMarker) Children() []Node { return m.Nodes }
func (m *InlineCommentMarker) Text() string     { return joinText(m.Nodes) }
