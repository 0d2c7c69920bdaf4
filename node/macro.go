package node

// PanelType enumerates the panel-family macros.
type PanelType int

const (
	PanelPlain PanelType = iota
	PanelNote
	PanelSuccess
	PanelWarning
	PanelError
	PanelInfo
)

var panelNames = map[PanelType]string{
	PanelPlain:   "panel",
	PanelNote:    "note",
	PanelSuccess: "success",
	PanelWarning: "warning",
	PanelError:   "error",
	PanelInfo:    "info",
}

func (t PanelType) String() string { return panelNames[t] }

var panelLabels = map[PanelType]string{
	PanelPlain:   "📋 PANEL",
	PanelNote:    "📝 NOTE",
	PanelSuccess: "✅ SUCCESS",
	PanelWarning: "⚠️ WARNING",
	PanelError:   "❌ ERROR",
	PanelInfo:    "ℹ️ INFO",
}

// PanelMacro is the panel family: panel, note, success, warning, error,
// info (and tip, normalized to success).
type PanelMacro struct {
	Type          PanelType
	Title         string
	BGColor       string
	PanelIcon     string
	PanelIconID   string
	PanelIconText string
	Nodes         []Node
}

func (*PanelMacro) Kind() Kind         { return KindPanelMacro }
func (*PanelMacro) BlockLevel() bool   { return true }
func (p *PanelMacro) Children() []Node { return p.Nodes }

// Text renders the panel as a single line: a label fixed by the panel type
// (a custom icon wins for plain panels), then the body flattened to one line
// with block separators collapsed to spaces.
func (p *PanelMacro) Text() string {
	label := panelLabels[p.Type]
	if p.Type == PanelPlain && p.PanelIconText != "" {
		label = p.PanelIconText
	}
	body := flattenLine(joinText(p.Nodes))
	if body == "" {
		return label
	}
	return label + ": " + body
}

// CodeMacro is a code block. The code is kept verbatim and never dispatched.
type CodeMacro struct {
	Language string
	Title    string
	Code     string
}

func (*CodeMacro) Kind() Kind       { return KindCodeMacro }
func (*CodeMacro) BlockLevel() bool { return true }
func (*CodeMacro) Children() []Node { return nil }
func (c *CodeMacro) Text() string   { return c.Code }

// StatusMacro is an inline status lozenge.
type StatusMacro struct {
	Title  string
	Colour string
}

func (*StatusMacro) Kind() Kind       { return KindStatusMacro }
func (*StatusMacro) BlockLevel() bool { return false }
func (*StatusMacro) Children() []Node { return nil }

func (s *StatusMacro) Text() string {
	title := s.Title
	if title == "" {
		title = "Status"
	}
	text := "🏷️ Status: " + title
	if s.Colour != "" {
		text += " (" + s.Colour + ")"
	}
	return text
}

// ExpandMacro is a collapsible section. The title stays out of the canonical
// text; only the body renders.
type ExpandMacro struct {
	Title string
	Nodes []Node
}

func (*ExpandMacro) Kind() Kind         { return KindExpandMacro }
func (*ExpandMacro) BlockLevel() bool   { return true }
func (e *ExpandMacro) Children() []Node { return e.Nodes }
func (e *ExpandMacro) Text() string     { return joinText(e.Nodes) }

// DetailsMacro wraps page-properties content; like ExpandMacro it renders
// its body only.
type DetailsMacro struct {
	ID     string
	Hidden bool
	Nodes  []Node
}

func (*DetailsMacro) Kind() Kind         { return KindDetailsMacro }
func (*DetailsMacro) BlockLevel() bool   { return true }
func (d *DetailsMacro) Children() []Node { return d.Nodes }
func (d *DetailsMacro) Text() string     { return joinText(d.Nodes) }

// TocMacro is a table-of-contents marker; it carries presentation parameters
// but no content of its own.
type TocMacro struct {
	Style    string
	MinLevel int
	MaxLevel int
}

func (*TocMacro) Kind() Kind       { return KindTocMacro }
func (*TocMacro) BlockLevel() bool { return true }
func (*TocMacro) Children() []Node { return nil }
func (*TocMacro) Text() string     { return "📑 Table of Contents" }

// JiraMacro references a Jira issue.
type JiraMacro struct {
	IssueKey string
	Server   string
	ServerID string
}

func (*JiraMacro) Kind() Kind       { return KindJiraMacro }
func (*JiraMacro) BlockLevel() bool { return false }
func (*JiraMacro) Children() []Node { return nil }

func (j *JiraMacro) Text() string {
	if j.IssueKey == "" {
		return "🎫 JIRA Issue"
	}
	if j.Server != "" && !isSystemServer(j.Server) {
		return "🎫 " + j.IssueKey + " (" + j.Server + ")"
	}
	return "🎫 " + j.IssueKey
}

func isSystemServer(server string) bool {
	return len(server) >= 7 && server[:7] == "System "
}

// IncludeMacro transcludes another page.
type IncludeMacro struct {
	ContentTitle string
	SpaceKey     string
}

func (*IncludeMacro) Kind() Kind       { return KindIncludeMacro }
func (*IncludeMacro) BlockLevel() bool { return true }
func (*IncludeMacro) Children() []Node { return nil }

func (m *IncludeMacro) Text() string {
	if m.ContentTitle == "" {
		return "📄 Include Page"
	}
	return "📄 Include: " + m.ContentTitle
}

// ExcerptIncludeMacro transcludes the excerpt of another page or blog post.
type ExcerptIncludeMacro struct {
	ContentTitle string
	SpaceKey     string
	PostingDay   string
	NoPanel      bool
}

func (*ExcerptIncludeMacro) Kind() Kind       { return KindExcerptIncludeMacro }
func (*ExcerptIncludeMacro) BlockLevel() bool { return true }
func (*ExcerptIncludeMacro) Children() []Node { return nil }

func (m *ExcerptIncludeMacro) Text() string {
	if m.ContentTitle == "" {
		return "📝 Excerpt Include"
	}
	if m.PostingDay != "" {
		return "📝 Excerpt: " + m.ContentTitle + " (" + m.PostingDay + ")"
	}
	return "📝 Excerpt: " + m.ContentTitle
}

// TasksReportMacro renders a report over task lists.
type TasksReportMacro struct {
	Spaces                    string
	Pages                     string
	MissingRequiredParameters bool
}

func (*TasksReportMacro) Kind() Kind       { return KindTasksReportMacro }
func (*TasksReportMacro) BlockLevel() bool { return true }
func (*TasksReportMacro) Children() []Node { return nil }

func (m *TasksReportMacro) Text() string {
	if m.Spaces == "" {
		return "📊 Tasks Report"
	}
	return "📊 Tasks Report: " + m.Spaces
}

// AttachmentsMacro lists page attachments matching the patterns.
type AttachmentsMacro struct {
	Patterns string
	Upload   bool
}

func (*AttachmentsMacro) Kind() Kind       { return KindAttachmentsMacro }
func (*AttachmentsMacro) BlockLevel() bool { return true }
func (*AttachmentsMacro) Children() []Node { return nil }

func (m *AttachmentsMacro) Text() string {
	if m.Patterns == "" {
		return "📎 Attachments"
	}
	return "📎 Attachments: " + m.Patterns
}

// ViewPdfMacro embeds a PDF attachment viewer.
type ViewPdfMacro struct {
	Filename      string
	VersionAtSave string
}

func (*ViewPdfMacro) Kind() Kind       { return KindViewPdfMacro }
func (*ViewPdfMacro) BlockLevel() bool { return true }
func (*ViewPdfMacro) Children() []Node { return nil }

func (m *ViewPdfMacro) Text() string {
	if m.Filename == "" {
		return "📄 PDF Viewer"
	}
	return "📄 PDF: " + m.Filename
}

// ViewFileMacro embeds a generic attachment viewer.
type ViewFileMacro struct {
	Filename      string
	VersionAtSave string
}

func (*ViewFileMacro) Kind() Kind       { return KindViewFileMacro }
func (*ViewFileMacro) BlockLevel() bool { return true }
func (*ViewFileMacro) Children() []Node { return nil }

func (m *ViewFileMacro) Text() string {
	if m.Filename == "" {
		return "📁 File Viewer"
	}
	return "📁 File: " + m.Filename
}

// ProfileMacro shows a user profile card.
type ProfileMacro struct {
	AccountID string
}

func (*ProfileMacro) Kind() Kind       { return KindProfileMacro }
func (*ProfileMacro) BlockLevel() bool { return false }
func (*ProfileMacro) Children() []Node { return nil }

func (m *ProfileMacro) Text() string {
	if m.AccountID == "" {
		return "👤 User Profile"
	}
	return "👤 Profile: " + m.AccountID
}

// AnchorMacro marks a named jump target.
type AnchorMacro struct {
	Name string
}

func (*AnchorMacro) Kind() Kind       { return KindAnchorMacro }
func (*AnchorMacro) BlockLevel() bool { return false }
func (*AnchorMacro) Children() []Node { return nil }

func (m *AnchorMacro) Text() string {
	if m.Name == "" {
		return "⚓ Anchor"
	}
	return "⚓ Anchor: " + m.Name
}

// ExcerptMacro marks the page excerpt region.
type ExcerptMacro struct {
	Hidden bool
	Nodes  []Node
}

func (*ExcerptMacro) Kind() Kind         { return KindExcerptMacro }
func (*ExcerptMacro) BlockLevel() bool   { return true }
func (m *ExcerptMacro) Children() []Node { return m.Nodes }

func (m *ExcerptMacro) Text() string {
	if body := joinText(m.Nodes); body != "" {
		return "📄 Excerpt: " + body
	}
	return "📄 Excerpt"
}
