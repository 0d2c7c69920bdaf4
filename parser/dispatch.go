package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Unificon/confluence-content-parser/node"
	"github.com/Unificon/confluence-content-parser/storage"
)

// builder walks an element forest depth-first and produces nodes. It holds
// the per-call diagnostics collector and nothing else.
type builder struct {
	diags *Collector
}

// buildFunc converts one element. A nil result drops the element without
// leaving a node behind.
type buildFunc func(*builder, *storage.Element) node.Node

// dispatch maps a qualified tag name to its build function. Filled in init
// because the build functions recurse through the table.
var dispatch map[string]buildFunc

func init() {
	dispatch = map[string]buildFunc{
		"h1": buildHeading, "h2": buildHeading, "h3": buildHeading,
		"h4": buildHeading, "h5": buildHeading, "h6": buildHeading,

		"p":  buildParagraph,
		"br": buildLineBreak,
		"hr": buildHorizontalRule,

		"strong":     effectBuilder(node.EffectStrong),
		"b":          effectBuilder(node.EffectStrong),
		"em":         effectBuilder(node.EffectEmphasis),
		"i":          effectBuilder(node.EffectEmphasis),
		"u":          effectBuilder(node.EffectUnderline),
		"ins":        effectBuilder(node.EffectUnderline),
		"s":          effectBuilder(node.EffectStrikethrough),
		"del":        effectBuilder(node.EffectStrikethrough),
		"strike":     effectBuilder(node.EffectStrikethrough),
		"code":       effectBuilder(node.EffectMonospace),
		"sub":        effectBuilder(node.EffectSubscript),
		"sup":        effectBuilder(node.EffectSuperscript),
		"blockquote": effectBuilder(node.EffectBlockquote),
		"span":       effectBuilder(node.EffectSpan),

		"a":   buildAnchorTag,
		"img": buildImgTag,

		"table": buildTable,
		"tr":    buildTableRow,
		"td":    buildTableCell,
		"th":    buildTableCell,

		"ul":   buildList,
		"ol":   buildList,
		"li":   buildListItem,
		"time": buildTime,

		"ac:layout":         buildLayout,
		"ac:layout-section": buildLayoutSection,
		"ac:layout-cell":    buildLayoutCell,

		"ac:task-list": buildTaskList,
		"ac:task":      buildTask,

		"ac:placeholder":           buildPlaceholder,
		"ac:emoticon":              buildEmoticon,
		"ac:image":                 buildImage,
		"ac:link":                  buildLink,
		"ac:inline-comment-marker": buildInlineComment,

		"ac:structured-macro": buildStructuredMacro,
		"ac:macro":            buildStructuredMacro,

		"ac:adf-extension": buildADFExtension,
		"ac:adf-node":      buildADFNode,
		"ac:adf-fallback":  skipElement,

		"ri:page":           buildResource,
		"ri:blog-post":      buildResource,
		"ri:attachment":     buildResource,
		"ri:url":            buildResource,
		"ri:shortcut":       buildResource,
		"ri:user":           buildResource,
		"ri:space":          buildResource,
		"ri:content-entity": buildResource,
	}
}

func skipElement(*builder, *storage.Element) node.Node { return nil }

// element converts one tag. Unknown tags degrade to a ContainerElement that
// preserves the subtree, with a diagnostic recording the tag name.
func (b *builder) element(el *storage.Element) node.Node {
	if fn, ok := dispatch[el.QName()]; ok {
		return fn(b, el)
	}
	b.diags.UnknownElement(el.QName())
	return &node.ContainerElement{Tag: el.QName(), Nodes: b.children(el)}
}

func (b *builder) children(el *storage.Element) []node.Node {
	return b.nodes(el.Children)
}

// nodes converts a sibling run, turning text into Text nodes and dropping
// formatting whitespace at the edges of the run.
func (b *builder) nodes(els []*storage.Element) []node.Node {
	var out []node.Node
	for _, c := range els {
		if c.IsText() {
			if t := normalizeRun(c.Text); t != "" {
				out = append(out, &node.Text{Content: t})
			}
			continue
		}
		if n := b.element(c); n != nil {
			out = append(out, n)
		}
	}
	return trimEdges(out)
}

// normalizeRun collapses whitespace spans that contain a newline, which
// pretty-printed markup inserts between tags, into a single space. Spaces
// the author wrote stay intact, including a space-only run separating two
// inline elements; a newline-only run is indentation and is dropped.
func normalizeRun(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" || strings.ContainsAny(s, "\n\r") {
			return ""
		}
		return " "
	}
	var out strings.Builder
	var ws strings.Builder
	newline := false
	flush := func() {
		if ws.Len() == 0 {
			return
		}
		if newline {
			out.WriteByte(' ')
		} else {
			out.WriteString(ws.String())
		}
		ws.Reset()
		newline = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			ws.WriteRune(r)
			if r == '\n' || r == '\r' {
				newline = true
			}
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()
	return out.String()
}

// trimEdges strips leading space from the first text node and trailing
// space from the last, discarding either if it ends up empty.
func trimEdges(out []node.Node) []node.Node {
	if len(out) > 0 {
		if t, ok := out[0].(*node.Text); ok {
			t.Content = strings.TrimLeft(t.Content, " \t")
			if t.Content == "" {
				out = out[1:]
			}
		}
	}
	if len(out) > 0 {
		if t, ok := out[len(out)-1].(*node.Text); ok {
			t.Content = strings.TrimRight(t.Content, " \t")
			if t.Content == "" {
				out = out[:len(out)-1]
			}
		}
	}
	return out
}

func buildHeading(b *builder, el *storage.Element) node.Node {
	level := int(el.Local[1] - '0')
	return &node.HeadingElement{Level: level, Nodes: b.children(el)}
}

func buildParagraph(b *builder, el *storage.Element) node.Node {
	return &node.TextBreakElement{Type: node.BreakParagraph, Nodes: b.children(el)}
}

func buildLineBreak(b *builder, el *storage.Element) node.Node {
	return &node.TextBreakElement{Type: node.BreakLine}
}

func buildHorizontalRule(b *builder, el *storage.Element) node.Node {
	return &node.TextBreakElement{Type: node.BreakHorizontalRule}
}

func effectBuilder(t node.TextEffectType) buildFunc {
	return func(b *builder, el *storage.Element) node.Node {
		return &node.TextEffectElement{Type: t, Nodes: b.children(el)}
	}
}

func buildAnchorTag(b *builder, el *storage.Element) node.Node {
	href := el.AttrOr("", "href", "")
	link := &node.LinkElement{
		Href:           href,
		CardAppearance: el.AttrOr("", "data-card-appearance", ""),
		Nodes:          b.children(el),
	}
	switch {
	case strings.HasPrefix(href, "mailto:"):
		link.Type = node.LinkMailto
	case strings.HasPrefix(href, "#"):
		link.Type = node.LinkAnchor
		link.Anchor = strings.TrimPrefix(href, "#")
	default:
		link.Type = node.LinkExternal
	}
	return link
}

func buildImgTag(b *builder, el *storage.Element) node.Node {
	return &node.Image{
		Src:    el.AttrOr("", "src", ""),
		Alt:    el.AttrOr("", "alt", ""),
		Title:  el.AttrOr("", "title", ""),
		Width:  el.AttrOr("", "width", ""),
		Height: el.AttrOr("", "height", ""),
	}
}

func buildTime(b *builder, el *storage.Element) node.Node {
	dt, ok := el.Attr("", "datetime")
	if !ok || dt == "" {
		b.diags.InvalidField("time missing datetime")
	}
	return &node.Time{Datetime: dt}
}

func buildTable(b *builder, el *storage.Element) node.Node {
	t := &node.Table{
		Width:       el.AttrOr("", "data-table-width", ""),
		Layout:      el.AttrOr("", "data-layout", ""),
		LocalID:     el.AttrOr("ac", "local-id", ""),
		DisplayMode: el.AttrOr("", "data-display-mode", ""),
	}
	t.Nodes = b.tableRows(el)
	return t
}

// tableRows flattens row groups; thead, tbody and tfoot contribute their
// rows directly and column sizing elements carry no content.
func (b *builder) tableRows(el *storage.Element) []node.Node {
	var out []node.Node
	for _, c := range el.ChildElements() {
		switch c.QName() {
		case "tbody", "thead", "tfoot":
			out = append(out, b.tableRows(c)...)
		case "colgroup", "col":
		default:
			if n := b.element(c); n != nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func buildTableRow(b *builder, el *storage.Element) node.Node {
	return &node.TableRow{Nodes: b.children(el)}
}

func buildTableCell(b *builder, el *storage.Element) node.Node {
	return &node.TableCell{
		IsHeader: el.Local == "th",
		RowSpan:  b.spanAttr(el, "rowspan"),
		ColSpan:  b.spanAttr(el, "colspan"),
		Nodes:    b.children(el),
	}
}

func (b *builder) spanAttr(el *storage.Element, name string) int {
	raw, ok := el.Attr("", name)
	if !ok || raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		b.diags.InvalidField(el.Local + " " + name + ": " + raw)
		return 1
	}
	return n
}

func buildList(b *builder, el *storage.Element) node.Node {
	l := &node.ListElement{Type: node.ListUnordered, Start: 1}
	if el.Local == "ol" {
		l.Type = node.ListOrdered
		if raw, ok := el.Attr("", "start"); ok && raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				b.diags.InvalidField("ol start: " + raw)
			} else {
				l.Start = n
			}
		}
	}
	l.Nodes = b.children(el)
	return l
}

func buildListItem(b *builder, el *storage.Element) node.Node {
	return &node.ListItem{Nodes: b.children(el)}
}

func buildLayout(b *builder, el *storage.Element) node.Node {
	return &node.LayoutElement{Nodes: b.children(el)}
}

func buildLayoutSection(b *builder, el *storage.Element) node.Node {
	s := &node.LayoutSection{
		BreakoutMode:  el.AttrOr("ac", "breakout-mode", ""),
		BreakoutWidth: el.AttrOr("ac", "breakout-width", ""),
	}
	raw := el.AttrOr("ac", "type", "")
	t, ok := node.ParseLayoutSectionType(raw)
	if !ok {
		b.diags.InvalidField("layout-section type: " + raw)
	}
	s.Type = t
	s.Nodes = b.children(el)
	return s
}

func buildLayoutCell(b *builder, el *storage.Element) node.Node {
	return &node.LayoutCell{Nodes: b.children(el)}
}

func buildTaskList(b *builder, el *storage.Element) node.Node {
	return &node.ListElement{Type: node.ListTask, Start: 1, Nodes: b.children(el)}
}

func buildTask(b *builder, el *storage.Element) node.Node {
	item := &node.ListItem{
		TaskID:   el.AttrOr("ac", "task-id", ""),
		TaskUUID: el.AttrOr("ac", "task-uuid", ""),
	}
	var body *storage.Element
	for _, c := range el.ChildElements() {
		if c.Space != "ac" {
			continue
		}
		switch c.Local {
		case "task-id":
			item.TaskID = strings.TrimSpace(c.InnerText())
		case "task-uuid":
			item.TaskUUID = strings.TrimSpace(c.InnerText())
		case "task-status":
			switch status := strings.TrimSpace(c.InnerText()); status {
			case "complete":
				item.Status = node.TaskComplete
			case "incomplete":
				item.Status = node.TaskIncomplete
			case "":
			default:
				b.diags.InvalidField("task status: " + status)
			}
		case "task-body":
			body = c
		}
	}
	if body != nil {
		item.Nodes = b.children(body)
	} else {
		item.Nodes = b.children(el)
	}
	return item
}

func buildPlaceholder(b *builder, el *storage.Element) node.Node {
	return &node.PlaceholderElement{
		Type:    el.AttrOr("ac", "type", ""),
		Content: strings.TrimSpace(el.InnerText()),
	}
}

func buildEmoticon(b *builder, el *storage.Element) node.Node {
	return &node.Emoticon{
		Name:      el.AttrOr("ac", "name", ""),
		Shortname: el.AttrOr("ac", "emoji-shortname", ""),
		EmojiID:   el.AttrOr("ac", "emoji-id", ""),
		Fallback:  el.AttrOr("ac", "emoji-fallback", ""),
	}
}

// buildImage absorbs the nested resource identifier into the Image fields;
// a caption element keeps its rendered children.
func buildImage(b *builder, el *storage.Element) node.Node {
	img := &node.Image{
		Src:    el.AttrOr("ac", "src", ""),
		Alt:    el.AttrOr("ac", "alt", ""),
		Title:  el.AttrOr("ac", "title", ""),
		Width:  el.AttrOr("ac", "width", ""),
		Height: el.AttrOr("ac", "height", ""),
	}
	for _, c := range el.ChildElements() {
		switch c.QName() {
		case "ri:attachment":
			img.Filename = c.AttrOr("ri", "filename", "")
			img.VersionAtSave = c.AttrOr("ri", "version-at-save", "")
		case "ri:url":
			img.Src = c.AttrOr("ri", "value", "")
		case "ac:caption":
			img.Nodes = b.children(c)
		default:
			if n := b.element(c); n != nil {
				img.Nodes = append(img.Nodes, n)
			}
		}
	}
	return img
}

func buildLink(b *builder, el *storage.Element) node.Node {
	link := &node.LinkElement{
		Anchor:         el.AttrOr("ac", "anchor", ""),
		CardAppearance: el.AttrOr("ac", "card-appearance", ""),
	}
	var resource *node.ResourceIdentifier
	for _, c := range el.ChildElements() {
		switch c.QName() {
		case "ac:link-body":
			link.Nodes = append(link.Nodes, b.children(c)...)
		case "ac:plain-text-link-body":
			if s := c.InnerText(); s != "" {
				link.Nodes = append(link.Nodes, &node.Text{Content: s})
			}
		default:
			n := b.element(c)
			if n == nil {
				continue
			}
			if ri, ok := n.(*node.ResourceIdentifier); ok && resource == nil {
				resource = ri
			}
			link.Nodes = append(link.Nodes, n)
		}
	}
	link.Type = linkTypeFor(link.Anchor, resource)
	return link
}

func linkTypeFor(anchor string, resource *node.ResourceIdentifier) node.LinkType {
	if resource == nil {
		if anchor != "" {
			return node.LinkAnchor
		}
		return node.LinkExternal
	}
	switch resource.Type {
	case node.ResourcePage:
		return node.LinkPage
	case node.ResourceBlogPost:
		return node.LinkBlogPost
	case node.ResourceUser:
		return node.LinkUser
	case node.ResourceAttachment:
		return node.LinkAttachment
	case node.ResourceSpace:
		return node.LinkSpace
	default:
		return node.LinkExternal
	}
}

func buildInlineComment(b *builder, el *storage.Element) node.Node {
	return &node.InlineCommentMarker{
		Ref:   el.AttrOr("ac", "ref", ""),
		Nodes: b.children(el),
	}
}

func buildResource(b *builder, el *storage.Element) node.Node {
	ri := &node.ResourceIdentifier{
		SpaceKey:      el.AttrOr("ri", "space-key", ""),
		ContentTitle:  el.AttrOr("ri", "content-title", ""),
		PostingDay:    el.AttrOr("ri", "posting-day", ""),
		Filename:      el.AttrOr("ri", "filename", ""),
		ContentID:     el.AttrOr("ri", "content-id", ""),
		Value:         el.AttrOr("ri", "value", ""),
		Key:           el.AttrOr("ri", "key", ""),
		Parameter:     el.AttrOr("ri", "parameter", ""),
		AccountID:     el.AttrOr("ri", "account-id", ""),
		LocalID:       el.AttrOr("ri", "local-id", ""),
		UserKey:       el.AttrOr("ri", "userkey", ""),
		VersionAtSave: el.AttrOr("ri", "version-at-save", ""),
	}
	switch el.Local {
	case "page":
		ri.Type = node.ResourcePage
	case "blog-post":
		ri.Type = node.ResourceBlogPost
	case "attachment":
		ri.Type = node.ResourceAttachment
	case "url":
		ri.Type = node.ResourceURL
	case "shortcut":
		ri.Type = node.ResourceShortcut
	case "user":
		ri.Type = node.ResourceUser
	case "space":
		ri.Type = node.ResourceSpace
	case "content-entity":
		ri.Type = node.ResourceContentEntity
	}
	// Attachments may carry a nested page reference naming the owning page.
	if el.Local == "attachment" {
		if page := el.FirstChild("ri", "page"); page != nil {
			ri.SpaceKey = page.AttrOr("ri", "space-key", ri.SpaceKey)
			ri.ContentTitle = page.AttrOr("ri", "content-title", ri.ContentTitle)
		}
	}
	return ri
}

func buildADFExtension(b *builder, el *storage.Element) node.Node {
	nodes := b.children(el)
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &node.ContainerElement{Tag: el.QName(), Nodes: nodes}
}

func buildADFNode(b *builder, el *storage.Element) node.Node {
	switch el.AttrOr("", "type", "") {
	case "decision-list":
		return b.buildDecisionList(el)
	case "decision-item":
		return b.buildDecisionItem(el)
	default:
		return &node.ContainerElement{Tag: el.QName(), Nodes: b.adfChildren(el)}
	}
}

func (b *builder) buildDecisionList(el *storage.Element) node.Node {
	list := &node.DecisionList{LocalID: adfAttribute(el, "local-id")}
	for _, c := range el.ChildElements() {
		switch c.QName() {
		case "ac:adf-node":
			if n := buildADFNode(b, c); n != nil {
				list.Nodes = append(list.Nodes, n)
			}
		case "ac:adf-attribute":
		case "ul", "ol":
			// Some storage snapshots serialize decision items as plain
			// list items inside the decision-list node.
			for _, li := range c.ChildElements() {
				if li.QName() != "li" {
					continue
				}
				list.Nodes = append(list.Nodes, &node.DecisionListItem{Nodes: b.children(li)})
			}
		default:
			if n := b.element(c); n != nil {
				list.Nodes = append(list.Nodes, n)
			}
		}
	}
	return list
}

func (b *builder) buildDecisionItem(el *storage.Element) node.Node {
	item := &node.DecisionListItem{LocalID: adfAttribute(el, "local-id")}
	if adfAttribute(el, "state") == "DECIDED" {
		item.State = node.DecisionDecided
	}
	item.Nodes = b.adfChildren(el)
	return item
}

// adfChildren renders the adf-content children of an ADF node, ignoring
// the attribute elements that sit alongside them.
func (b *builder) adfChildren(el *storage.Element) []node.Node {
	var out []node.Node
	for _, c := range el.ChildElements() {
		switch c.QName() {
		case "ac:adf-content":
			out = append(out, b.children(c)...)
		case "ac:adf-attribute":
		default:
			if n := b.element(c); n != nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func adfAttribute(el *storage.Element, key string) string {
	for _, c := range el.ChildElements() {
		if c.QName() == "ac:adf-attribute" && c.AttrOr("", "key", "") == key {
			return strings.TrimSpace(c.InnerText())
		}
	}
	return ""
}
