package parser

import (
	"strconv"
	"strings"

	"github.com/Unificon/confluence-content-parser/node"
	"github.com/Unificon/confluence-content-parser/storage"
)

// macroRegistry maps an ac:name to its build function. Unregistered names
// degrade to a ContainerElement carrying the rendered body, with a
// diagnostic recording the macro name.
var macroRegistry map[string]buildFunc

func init() {
	macroRegistry = map[string]buildFunc{
		"panel":   panelBuilder(node.PanelPlain),
		"info":    panelBuilder(node.PanelInfo),
		"note":    panelBuilder(node.PanelNote),
		"warning": panelBuilder(node.PanelWarning),
		"error":   panelBuilder(node.PanelError),
		"success": panelBuilder(node.PanelSuccess),
		"tip":     panelBuilder(node.PanelSuccess),

		"code":    buildCodeMacro,
		"status":  buildStatusMacro,
		"expand":  buildExpandMacro,
		"details": buildDetailsMacro,
		"toc":     buildTocMacro,
		"jira":    buildJiraMacro,

		"include":            buildIncludeMacro,
		"excerpt-include":    buildExcerptIncludeMacro,
		"tasks-report-macro": buildTasksReportMacro,
		"attachments":        buildAttachmentsMacro,
		"viewpdf":            buildViewPdfMacro,
		"view-file":          buildViewFileMacro,
		"profile":            buildProfileMacro,
		"anchor":             buildAnchorMacro,
		"excerpt":            buildExcerptMacro,
	}
}

func buildStructuredMacro(b *builder, el *storage.Element) node.Node {
	name := el.AttrOr("ac", "name", "")
	if name == "" {
		b.diags.InvalidField("structured-macro missing name")
		return &node.ContainerElement{Tag: el.QName(), Nodes: b.macroBody(el)}
	}
	fn, ok := macroRegistry[name]
	if !ok {
		b.diags.UnknownMacro(name)
		return &node.ContainerElement{Tag: name, Nodes: b.macroBody(el)}
	}
	return fn(b, el)
}

// macroBody renders the rich-text body if the macro has one, otherwise
// whatever non-parameter children it carries.
func (b *builder) macroBody(el *storage.Element) []node.Node {
	if body := el.FirstChild("ac", "rich-text-body"); body != nil {
		return b.children(body)
	}
	var rest []*storage.Element
	for _, c := range el.Children {
		if !c.IsText() && c.Space == "ac" && c.Local == "parameter" {
			continue
		}
		rest = append(rest, c)
	}
	return b.nodes(rest)
}

// macroParams collects the ac:parameter children keyed by their ac:name.
// Confluence serializes some single-parameter macros with an empty name.
func macroParams(el *storage.Element) map[string]*storage.Element {
	params := make(map[string]*storage.Element)
	for _, c := range el.ChildElements() {
		if c.Space == "ac" && c.Local == "parameter" {
			params[c.AttrOr("ac", "name", "")] = c
		}
	}
	return params
}

func paramText(params map[string]*storage.Element, name string) string {
	p, ok := params[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(p.InnerText())
}

func (b *builder) boolParam(params map[string]*storage.Element, macro, name string) bool {
	switch raw := paramText(params, name); raw {
	case "", "false":
		return false
	case "true":
		return true
	default:
		b.diags.InvalidField(macro + " " + name + ": " + raw)
		return false
	}
}

func (b *builder) intParam(params map[string]*storage.Element, macro, name string, def int) int {
	raw := paramText(params, name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		b.diags.InvalidField(macro + " " + name + ": " + raw)
		return def
	}
	return n
}

// paramResource finds a resource identifier element nested inside any of
// the named parameters, trying them in order.
func paramResource(params map[string]*storage.Element, local string, names ...string) *storage.Element {
	for _, name := range names {
		p, ok := params[name]
		if !ok {
			continue
		}
		if ri := p.FirstChild("ri", local); ri != nil {
			return ri
		}
	}
	return nil
}

func panelBuilder(t node.PanelType) buildFunc {
	return func(b *builder, el *storage.Element) node.Node {
		params := macroParams(el)
		p := &node.PanelMacro{
			Type:  t,
			Title: paramText(params, "title"),
			Nodes: b.macroBody(el),
		}
		if t == node.PanelPlain {
			p.BGColor = paramText(params, "bgColor")
			p.PanelIcon = paramText(params, "panelIcon")
			p.PanelIconID = paramText(params, "panelIconId")
			p.PanelIconText = paramText(params, "panelIconText")
		}
		return p
	}
}

func buildCodeMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	m := &node.CodeMacro{
		Language: paramText(params, "language"),
		Title:    paramText(params, "title"),
	}
	if body := el.FirstChild("ac", "plain-text-body"); body != nil {
		m.Code = body.InnerText()
	} else {
		b.diags.InvalidField("code macro missing plain-text body")
	}
	return m
}

func buildStatusMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.StatusMacro{
		Title:  paramText(params, "title"),
		Colour: paramText(params, "colour"),
	}
}

func buildExpandMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.ExpandMacro{
		Title: paramText(params, "title"),
		Nodes: b.macroBody(el),
	}
}

func buildDetailsMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.DetailsMacro{
		ID:     paramText(params, "id"),
		Hidden: b.boolParam(params, "details", "hidden"),
		Nodes:  b.macroBody(el),
	}
}

func buildTocMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.TocMacro{
		Style:    paramText(params, "style"),
		MinLevel: b.intParam(params, "toc", "minLevel", 1),
		MaxLevel: b.intParam(params, "toc", "maxLevel", 6),
	}
}

func buildJiraMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.JiraMacro{
		IssueKey: paramText(params, "key"),
		Server:   paramText(params, "server"),
		ServerID: paramText(params, "serverId"),
	}
}

func buildIncludeMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	m := &node.IncludeMacro{}
	if page := paramResource(params, "page", "", "page"); page != nil {
		m.ContentTitle = page.AttrOr("ri", "content-title", "")
		m.SpaceKey = page.AttrOr("ri", "space-key", "")
	} else {
		b.diags.InvalidField("include macro missing page reference")
	}
	return m
}

func buildExcerptIncludeMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	m := &node.ExcerptIncludeMacro{
		NoPanel: b.boolParam(params, "excerpt-include", "nopanel"),
	}
	if page := paramResource(params, "page", "", "page"); page != nil {
		m.ContentTitle = page.AttrOr("ri", "content-title", "")
		m.SpaceKey = page.AttrOr("ri", "space-key", "")
	} else if post := paramResource(params, "blog-post", "", "page"); post != nil {
		m.ContentTitle = post.AttrOr("ri", "content-title", "")
		m.SpaceKey = post.AttrOr("ri", "space-key", "")
		m.PostingDay = post.AttrOr("ri", "posting-day", "")
	} else {
		m.ContentTitle = paramText(params, "")
	}
	return m
}

func buildTasksReportMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.TasksReportMacro{
		Spaces:                    paramText(params, "spaces"),
		Pages:                     paramText(params, "pages"),
		MissingRequiredParameters: b.boolParam(params, "tasks-report-macro", "isMissingRequiredParameters"),
	}
}

func buildAttachmentsMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.AttachmentsMacro{
		Patterns: paramText(params, "patterns"),
		Upload:   b.boolParam(params, "attachments", "upload"),
	}
}

func buildViewPdfMacro(b *builder, el *storage.Element) node.Node {
	f, v := b.attachmentParam(el, "viewpdf")
	return &node.ViewPdfMacro{Filename: f, VersionAtSave: v}
}

func buildViewFileMacro(b *builder, el *storage.Element) node.Node {
	f, v := b.attachmentParam(el, "view-file")
	return &node.ViewFileMacro{Filename: f, VersionAtSave: v}
}

func (b *builder) attachmentParam(el *storage.Element, macro string) (filename, version string) {
	params := macroParams(el)
	att := paramResource(params, "attachment", "name", "")
	if att == nil {
		if f := paramText(params, "name"); f != "" {
			return f, ""
		}
		b.diags.InvalidField(macro + " macro missing attachment")
		return "", ""
	}
	return att.AttrOr("ri", "filename", ""), att.AttrOr("ri", "version-at-save", "")
}

func buildProfileMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	m := &node.ProfileMacro{}
	if user := paramResource(params, "user", "user", ""); user != nil {
		m.AccountID = user.AttrOr("ri", "account-id", "")
	} else {
		m.AccountID = paramText(params, "user")
	}
	return m
}

func buildAnchorMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	name := paramText(params, "")
	if name == "" {
		name = paramText(params, "anchor")
	}
	return &node.AnchorMacro{Name: name}
}

func buildExcerptMacro(b *builder, el *storage.Element) node.Node {
	params := macroParams(el)
	return &node.ExcerptMacro{
		Hidden: b.boolParam(params, "excerpt", "hidden"),
		Nodes:  b.macroBody(el),
	}
}
