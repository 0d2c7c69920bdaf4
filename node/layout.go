package node

// LayoutSectionType enumerates the column arrangements a layout section can
// take, spelled as in the ac:type attribute.
type LayoutSectionType int

const (
	SectionSingle LayoutSectionType = iota
	SectionFixedWidth
	SectionFullWidth
	SectionWide
	SectionTwoEqual
	SectionTwoColumn
	SectionTwoLeftSidebar
	SectionTwoRightSidebar
	SectionThreeEqual
	SectionThreeColumn
	SectionThreeWithSidebars
)

var sectionNames = map[LayoutSectionType]string{
	SectionSingle:            "single",
	SectionFixedWidth:        "fixed-width",
	SectionFullWidth:         "full-width",
	SectionWide:              "wide",
	SectionTwoEqual:          "two_equal",
	SectionTwoColumn:         "two-column",
	SectionTwoLeftSidebar:    "two_left_sidebar",
	SectionTwoRightSidebar:   "two_right_sidebar",
	SectionThreeEqual:        "three_equal",
	SectionThreeColumn:       "three-column",
	SectionThreeWithSidebars: "three_with_sidebars",
}

func (t LayoutSectionType) String() string { return sectionNames[t] }

// ParseLayoutSectionType maps an ac:type attribute value to its enum value.
func ParseLayoutSectionType(s string) (LayoutSectionType, bool) {
	for t, name := range sectionNames {
		if name == s {
			return t, true
		}
	}
	return SectionSingle, false
}

// LayoutElement is a page layout with LayoutSection children.
type LayoutElement struct {
	Nodes []Node
}

func (*LayoutElement) Kind() Kind         { return KindLayout }
func (*LayoutElement) BlockLevel() bool   { return true }
func (l *LayoutElement) Children() []Node { return l.Nodes }
func (l *LayoutElement) Text() string     { return joinText(l.Nodes) }

// LayoutSection is one horizontal band of a layout, holding LayoutCell
// children side by side.
type LayoutSection struct {
	Type          LayoutSectionType
	BreakoutMode  string
	BreakoutWidth string
	Nodes         []Node
}

func (*LayoutSection) Kind() Kind         { return KindLayoutSection }
func (*LayoutSection) BlockLevel() bool   { return true }
func (s *LayoutSection) Children() []Node { return s.Nodes }
func (s *LayoutSection) Text() string     { return joinText(s.Nodes) }

// LayoutCell is one column of a layout section.
type LayoutCell struct {
	Nodes []Node
}

func (*LayoutCell) Kind() Kind         { return KindLayoutCell }
func (*LayoutCell) BlockLevel() bool   { return true }
func (c *LayoutCell) Children() []Node { return c.Nodes }
func (c *LayoutCell) Text() string     { return joinText(c.Nodes) }
