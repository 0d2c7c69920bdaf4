package format

import (
	"encoding/json"
	"io"

	"github.com/Unificon/confluence-content-parser/node"
	"github.com/Unificon/confluence-content-parser/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonDocument{
		Root:        nodeToJSON(e.doc.Root()),
		Diagnostics: e.doc.Diagnostics(),
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonDocument struct {
	Root        *jsonNode `json:"root"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
}

type jsonNode struct {
	Kind     string         `json:"kind"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Children []*jsonNode    `json:"children,omitempty"`
}

func nodeToJSON(n node.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Kind:  n.Kind().String(),
		Attrs: nodeAttrs(n),
	}
	for _, c := range n.Children() {
		jn.Children = append(jn.Children, nodeToJSON(c))
	}
	return jn
}

// nodeAttrs picks out the variant-specific fields, skipping zero values so
// the output stays readable.
func nodeAttrs(n node.Node) map[string]any {
	attrs := make(map[string]any)
	set := func(key string, value any) {
		switch v := value.(type) {
		case string:
			if v != "" {
				attrs[key] = v
			}
		case int:
			if v != 0 {
				attrs[key] = v
			}
		case bool:
			if v {
				attrs[key] = v
			}
		default:
			attrs[key] = value
		}
	}

	switch v := n.(type) {
	case *node.Text:
		set("content", v.Content)
	case *node.Image:
		set("src", v.Src)
		set("alt", v.Alt)
		set("title", v.Title)
		set("width", v.Width)
		set("height", v.Height)
		set("filename", v.Filename)
		set("versionAtSave", v.VersionAtSave)
	case *node.Emoticon:
		set("name", v.Name)
		set("shortname", v.Shortname)
		set("emojiId", v.EmojiID)
		set("fallback", v.Fallback)
	case *node.Time:
		set("datetime", v.Datetime)
	case *node.PlaceholderElement:
		set("type", v.Type)
		set("content", v.Content)
	case *node.InlineCommentMarker:
		set("ref", v.Ref)
	case *node.TextEffectElement:
		set("effect", v.Type.String())
	case *node.TextBreakElement:
		set("break", v.Type.String())
	case *node.HeadingElement:
		set("level", v.Level)
	case *node.ListElement:
		set("type", v.Type.String())
		if v.Type == node.ListOrdered {
			set("start", v.Start)
		}
	case *node.ListItem:
		set("taskId", v.TaskID)
		set("taskUuid", v.TaskUUID)
		set("status", v.Status.String())
	case *node.DecisionList:
		set("localId", v.LocalID)
	case *node.DecisionListItem:
		set("localId", v.LocalID)
		set("state", v.State.String())
	case *node.Table:
		set("width", v.Width)
		set("layout", v.Layout)
		set("localId", v.LocalID)
		set("displayMode", v.DisplayMode)
	case *node.TableCell:
		set("header", v.IsHeader)
		if v.RowSpan > 1 {
			set("rowSpan", v.RowSpan)
		}
		if v.ColSpan > 1 {
			set("colSpan", v.ColSpan)
		}
	case *node.LayoutSection:
		set("type", v.Type.String())
		set("breakoutMode", v.BreakoutMode)
		set("breakoutWidth", v.BreakoutWidth)
	case *node.LinkElement:
		set("type", v.Type.String())
		set("href", v.Href)
		set("anchor", v.Anchor)
		set("cardAppearance", v.CardAppearance)
	case *node.ResourceIdentifier:
		set("type", v.Type.String())
		set("uri", v.CanonicalURI())
	case *node.PanelMacro:
		set("type", v.Type.String())
		set("title", v.Title)
		set("bgColor", v.BGColor)
		set("panelIcon", v.PanelIcon)
		set("panelIconId", v.PanelIconID)
		set("panelIconText", v.PanelIconText)
	case *node.CodeMacro:
		set("language", v.Language)
		set("title", v.Title)
		set("code", v.Code)
	case *node.StatusMacro:
		set("title", v.Title)
		set("colour", v.Colour)
	case *node.ExpandMacro:
		set("title", v.Title)
	case *node.DetailsMacro:
		set("id", v.ID)
		set("hidden", v.Hidden)
	case *node.TocMacro:
		set("style", v.Style)
		set("minLevel", v.MinLevel)
		set("maxLevel", v.MaxLevel)
	case *node.JiraMacro:
		set("issueKey", v.IssueKey)
		set("server", v.Server)
		set("serverId", v.ServerID)
	case *node.IncludeMacro:
		set("contentTitle", v.ContentTitle)
		set("spaceKey", v.SpaceKey)
	case *node.ExcerptIncludeMacro:
		set("contentTitle", v.ContentTitle)
		set("spaceKey", v.SpaceKey)
		set("postingDay", v.PostingDay)
		set("nopanel", v.NoPanel)
	case *node.TasksReportMacro:
		set("spaces", v.Spaces)
		set("pages", v.Pages)
		set("missingRequiredParameters", v.MissingRequiredParameters)
	case *node.AttachmentsMacro:
		set("patterns", v.Patterns)
		set("upload", v.Upload)
	case *node.ViewPdfMacro:
		set("filename", v.Filename)
		set("versionAtSave", v.VersionAtSave)
	case *node.ViewFileMacro:
		set("filename", v.Filename)
		set("versionAtSave", v.VersionAtSave)
	case *node.ProfileMacro:
		set("accountId", v.AccountID)
	case *node.AnchorMacro:
		set("name", v.Name)
	case *node.ExcerptMacro:
		set("hidden", v.Hidden)
	case *node.ContainerElement:
		set("tag", v.Tag)
	}

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
