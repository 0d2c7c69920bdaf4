package node

import "strings"

// LinkType classifies a link by its target.
type LinkType int

const (
	LinkExternal LinkType = iota
	LinkMailto
	LinkSpace
	LinkPage
	LinkBlogPost
	LinkUser
	LinkAttachment
	LinkAnchor
)

var linkNames = map[LinkType]string{
	LinkExternal:   "external",
	LinkMailto:     "mailto",
	LinkSpace:      "space",
	LinkPage:       "page",
	LinkBlogPost:   "blog-post",
	LinkUser:       "user",
	LinkAttachment: "attachment",
	LinkAnchor:     "anchor",
}

func (t LinkType) String() string { return linkNames[t] }

// LinkElement is an <a> anchor or an ac:link. Children hold the resource
// identifiers and the link text.
type LinkElement struct {
	Type           LinkType
	Href           string
	Anchor         string
	CardAppearance string
	Nodes          []Node
}

func (*LinkElement) Kind() Kind         { return KindLink }
func (*LinkElement) BlockLevel() bool   { return false }
func (l *LinkElement) Children() []Node { return l.Nodes }

// Text prefers the link's own text, prefixed with the resource label when a
// resource identifier is present, and falls back to the href.
func (l *LinkElement) Text() string {
	var resource, content string
	for _, c := range l.Nodes {
		if _, ok := c.(*ResourceIdentifier); ok {
			if t := c.Text(); t != "" {
				if resource != "" {
					resource += " "
				}
				resource += t
			}
			continue
		}
		if t := c.Text(); strings.TrimSpace(t) != "" {
			content += t
		}
	}
	switch {
	case resource != "" && content != "":
		return resource + " " + content
	case resource != "":
		return resource
	case content != "":
		return content
	}
	return l.Href
}

// ResourceIdentifierType classifies an ri: reference.
type ResourceIdentifierType int

const (
	ResourcePage ResourceIdentifierType = iota
	ResourceBlogPost
	ResourceAttachment
	ResourceURL
	ResourceShortcut
	ResourceUser
	ResourceSpace
	ResourceContentEntity
)

var resourceNames = map[ResourceIdentifierType]string{
	ResourcePage:          "page",
	ResourceBlogPost:      "blog-post",
	ResourceAttachment:    "attachment",
	ResourceURL:           "url",
	ResourceShortcut:      "shortcut",
	ResourceUser:          "user",
	ResourceSpace:         "space",
	ResourceContentEntity: "content-entity",
}

func (t ResourceIdentifierType) String() string { return resourceNames[t] }

// ResourceIdentifier is a reference to a Confluence resource, produced from
// the ri: elements nested inside links, images, and macro parameters. Only
// the fields relevant to the identifier's type are populated.
type ResourceIdentifier struct {
	Type          ResourceIdentifierType
	SpaceKey      string
	ContentTitle  string
	PostingDay    string
	Filename      string
	ContentID     string
	Value         string
	Key           string
	Parameter     string
	AccountID     string
	LocalID       string
	UserKey       string
	VersionAtSave string
}

func (*ResourceIdentifier) Kind() Kind       { return KindResourceIdentifier }
func (*ResourceIdentifier) BlockLevel() bool { return false }
func (*ResourceIdentifier) Children() []Node { return nil }

func (r *ResourceIdentifier) Text() string {
	switch r.Type {
	case ResourcePage:
		return "📄 Page"
	case ResourceBlogPost:
		return labelled("📝 Blog", r.PostingDay)
	case ResourceAttachment:
		return labelled("📎 Attachment", r.Filename)
	case ResourceURL:
		return labelled("🔗 URL", r.Value)
	case ResourceShortcut:
		detail := r.Key
		if r.Parameter != "" {
			detail += "@" + r.Parameter
		}
		return labelled("🔗 Shortcut", detail)
	case ResourceUser:
		id := r.AccountID
		if id == "" {
			id = r.UserKey
		}
		return labelled("👤 User", id)
	case ResourceSpace:
		return labelled("🏠 Space", r.SpaceKey)
	case ResourceContentEntity:
		return labelled("📄 Content", r.ContentID)
	}
	return ""
}

func labelled(label, detail string) string {
	if detail == "" {
		return label
	}
	return label + ": " + detail
}

// CanonicalURI renders the reference as a stable pseudo-URI, e.g.
// "page://SPACE/Title@v3" or "user://account-id". It returns "" when the
// identifying fields are absent.
func (r *ResourceIdentifier) CanonicalURI() string {
	switch r.Type {
	case ResourceUser:
		if r.AccountID != "" {
			return "user://" + r.AccountID
		}
	case ResourcePage:
		uri := "page://" + r.SpaceKey + "/" + r.ContentTitle
		if r.VersionAtSave != "" {
			uri += "@v" + r.VersionAtSave
		}
		return uri
	case ResourceBlogPost:
		return "blog://" + r.SpaceKey + "/" + r.ContentTitle + "@" + r.PostingDay
	case ResourceSpace:
		return "space://" + r.SpaceKey
	case ResourceAttachment:
		uri := "attach://" + r.Filename
		if r.VersionAtSave != "" {
			uri += "@v" + r.VersionAtSave
		}
		return uri
	case ResourceContentEntity:
		return "contentid://" + r.ContentID
	case ResourceShortcut:
		return "shortcut://" + r.Key + "/" + r.Parameter
	case ResourceURL:
		return r.Value
	}
	return ""
}
