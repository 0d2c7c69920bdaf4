// Package node defines the immutable content-node model for parsed
// Confluence storage-format documents, together with depth-first traversal,
// typed filtering, and canonical plain-text rendering.
//
// Every concrete variant implements Node. Nodes are never mutated after
// construction; a tree may be read from any number of goroutines.
package node

import "iter"

// Kind discriminates the closed set of node variants.
type Kind int

const (
	KindInvalid Kind = iota

	// Leaf content
	KindText
	KindImage
	KindEmoticon
	KindTime
	KindPlaceholder
	KindInlineComment

	// Text formatting
	KindTextEffect
	KindTextBreak

	// Structure
	KindHeading
	KindList
	KindListItem
	KindDecisionList
	KindDecisionListItem

	// Tables
	KindTable
	KindTableRow
	KindTableCell

	// Layout
	KindLayout
	KindLayoutSection
	KindLayoutCell

	// Links and references
	KindLink
	KindResourceIdentifier

	// Macros
	KindPanelMacro
	KindCodeMacro
	KindStatusMacro
	KindExpandMacro
	KindDetailsMacro
	KindTocMacro
	KindJiraMacro
	KindIncludeMacro
	KindExcerptIncludeMacro
	KindTasksReportMacro
	KindAttachmentsMacro
	KindViewPdfMacro
	KindViewFileMacro
	KindProfileMacro
	KindAnchorMacro
	KindExcerptMacro

	// Utility
	KindFragment
	KindContainer
)

var kindNames = map[Kind]string{
	KindInvalid:             "Invalid",
	KindText:                "Text",
	KindImage:               "Image",
	KindEmoticon:            "Emoticon",
	KindTime:                "Time",
	KindPlaceholder:         "Placeholder",
	KindInlineComment:       "InlineComment",
	KindTextEffect:          "TextEffect",
	KindTextBreak:           "TextBreak",
	KindHeading:             "Heading",
	KindList:                "List",
	KindListItem:            "ListItem",
	KindDecisionList:        "DecisionList",
	KindDecisionListItem:    "DecisionListItem",
	KindTable:               "Table",
	KindTableRow:            "TableRow",
	KindTableCell:           "TableCell",
	KindLayout:              "Layout",
	KindLayoutSection:       "LayoutSection",
	KindLayoutCell:          "LayoutCell",
	KindLink:                "Link",
	KindResourceIdentifier:  "ResourceIdentifier",
	KindPanelMacro:          "PanelMacro",
	KindCodeMacro:           "CodeMacro",
	KindStatusMacro:         "StatusMacro",
	KindExpandMacro:         "ExpandMacro",
	KindDetailsMacro:        "DetailsMacro",
	KindTocMacro:            "TocMacro",
	KindJiraMacro:           "JiraMacro",
	KindIncludeMacro:        "IncludeMacro",
	KindExcerptIncludeMacro: "ExcerptIncludeMacro",
	KindTasksReportMacro:    "TasksReportMacro",
	KindAttachmentsMacro:    "AttachmentsMacro",
	KindViewPdfMacro:        "ViewPdfMacro",
	KindViewFileMacro:       "ViewFileMacro",
	KindProfileMacro:        "ProfileMacro",
	KindAnchorMacro:         "AnchorMacro",
	KindExcerptMacro:        "ExcerptMacro",
	KindFragment:            "Fragment",
	KindContainer:           "Container",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is the capability contract shared by every variant.
//
// Children returns the ordered child list, nil for leaves. BlockLevel is a
// fixed classification of the variant (for TextBreakElement, of its break
// kind) and governs text joining: block siblings are separated by one blank
// line, inline siblings are concatenated directly. Text renders the canonical
// plain text of the subtree and is a pure function of its content.
type Node interface {
	Kind() Kind
	BlockLevel() bool
	Children() []Node
	Text() string
}

// Walk returns a lazy pre-order depth-first traversal of the subtree rooted
// at n, starting with n itself. The sequence is finite and restartable: the
// same sequence is produced each time it is ranged over.
func Walk(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n != nil {
			walk(n, yield)
		}
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// FindAll filters the subtree rooted at root by variant kind. It returns one
// bucket per requested kind, each in document (pre-order) order. A node whose
// kind is requested more than once appears in every matching bucket.
func FindAll(root Node, kinds ...Kind) [][]Node {
	buckets := make([][]Node, len(kinds))
	if root == nil {
		return buckets
	}
	for n := range Walk(root) {
		for i, k := range kinds {
			if n.Kind() == k {
				buckets[i] = append(buckets[i], n)
			}
		}
	}
	return buckets
}
