package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Unificon/confluence-content-parser/node"
)

func mustParse(t *testing.T, markup string, opts ...Option) *Document {
	t.Helper()
	doc, err := New(opts...).Parse(markup)
	if err != nil {
		t.Fatalf("Parse(%q): %v", markup, err)
	}
	return doc
}

func TestParseEmptyInput(t *testing.T) {
	doc := mustParse(t, "")
	if doc.Root() != nil {
		t.Errorf("root = %v, want nil", doc.Root())
	}
	if doc.Text() != "" {
		t.Errorf("text = %q, want empty", doc.Text())
	}
	if len(doc.Diagnostics()) != 0 {
		t.Errorf("diagnostics = %v, want none", doc.Diagnostics())
	}
}

func TestParseSingleRootIsNotWrapped(t *testing.T) {
	doc := mustParse(t, "<p>Hello world!</p>")
	if doc.Root().Kind() != node.KindTextBreak {
		t.Errorf("root kind = %v, want TextBreak", doc.Root().Kind())
	}
	if doc.Text() != "Hello world!" {
		t.Errorf("text = %q", doc.Text())
	}
}

func TestParseMultipleRootsWrapInFragment(t *testing.T) {
	doc := mustParse(t, "<h1>A</h1><p>B</p>")
	root := doc.Root()
	if root.Kind() != node.KindFragment {
		t.Fatalf("root kind = %v, want Fragment", root.Kind())
	}
	if len(root.Children()) != 2 {
		t.Errorf("got %d children, want 2", len(root.Children()))
	}
}

func TestDocumentText(t *testing.T) {
	markup := "<p>Hello <strong>world</strong>!</p><h1>Main Heading</h1>" +
		"<p>Some paragraph text with <em>emphasis</em>.</p>"
	doc := mustParse(t, markup)
	want := "Hello world!\n\nMain Heading\n\nSome paragraph text with emphasis."
	if got := doc.Text(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestFindAllHeadings(t *testing.T) {
	doc := mustParse(t, "<h1>Main Title</h1><h2>Subtitle</h2>")
	buckets := doc.FindAll(node.KindHeading)
	if len(buckets) != 1 || len(buckets[0]) != 2 {
		t.Fatalf("got %d headings, want 2", len(buckets[0]))
	}
	var texts []string
	var levels []int
	for _, h := range buckets[0] {
		texts = append(texts, h.Text())
		levels = append(levels, h.(*node.HeadingElement).Level)
	}
	if diff := cmp.Diff([]string{"Main Title", "Subtitle"}, texts); diff != "" {
		t.Errorf("heading texts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, levels); diff != "" {
		t.Errorf("heading levels (-want +got):\n%s", diff)
	}
}

func TestInfoMacroText(t *testing.T) {
	markup := `<ac:structured-macro ac:name="info"><ac:rich-text-body>` +
		`<p>This is an info panel with <strong>important</strong> information.</p>` +
		`</ac:rich-text-body></ac:structured-macro>`
	doc := mustParse(t, markup)
	want := "ℹ️ INFO: This is an info panel with important information."
	if got := doc.Text(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestUnclosedHeadingParsesWithoutDiagnostics(t *testing.T) {
	doc := mustParse(t, "<h1>Unclosed heading", WithStrict(false))
	if len(doc.Diagnostics()) != 0 {
		t.Errorf("diagnostics = %v, want none", doc.Diagnostics())
	}
	if doc.Text() != "Unclosed heading" {
		t.Errorf("text = %q", doc.Text())
	}
}

func TestUnknownElement(t *testing.T) {
	markup := "<p><custom-tag>inside</custom-tag></p>"

	_, err := New().Parse(markup)
	var diagErr *DiagnosticsError
	if !errors.As(err, &diagErr) {
		t.Fatalf("strict parse error = %v, want DiagnosticsError", err)
	}
	if diff := cmp.Diff([]string{"unknown_element:custom-tag"}, diagErr.Diagnostics); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}

	doc := mustParse(t, markup, WithStrict(false))
	if diff := cmp.Diff([]string{"unknown_element:custom-tag"}, doc.Diagnostics()); diff != "" {
		t.Errorf("lenient diagnostics (-want +got):\n%s", diff)
	}
	containers := doc.FindAll(node.KindContainer)[0]
	if len(containers) != 1 {
		t.Fatalf("got %d containers, want 1", len(containers))
	}
	c := containers[0].(*node.ContainerElement)
	if c.Tag != "custom-tag" || c.Text() != "inside" {
		t.Errorf("container = %q with text %q", c.Tag, c.Text())
	}
}

func TestUnknownMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="fancy"><ac:rich-text-body>` +
		`<p>kept body</p></ac:rich-text-body></ac:structured-macro>`
	doc := mustParse(t, markup, WithStrict(false))
	if diff := cmp.Diff([]string{"unknown_macro:fancy"}, doc.Diagnostics()); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}
	c, ok := doc.Root().(*node.ContainerElement)
	if !ok {
		t.Fatalf("root = %T, want ContainerElement", doc.Root())
	}
	if c.Tag != "fancy" || c.Text() != "kept body" {
		t.Errorf("container = %q with text %q", c.Tag, c.Text())
	}
}

func TestStrictIsTheDefault(t *testing.T) {
	_, err := New().Parse("<unknowable/>")
	if err == nil {
		t.Fatal("strict default did not reject a diagnostic-producing parse")
	}
	doc := mustParse(t, "<unknowable/>", WithStrict(false))
	if len(doc.Diagnostics()) != 1 {
		t.Errorf("diagnostics = %v, want exactly one", doc.Diagnostics())
	}
}

func TestMetadataCarriesDiagnostics(t *testing.T) {
	doc := mustParse(t, "<mystery/>", WithStrict(false))
	diags, ok := doc.Metadata()["diagnostics"].([]string)
	if !ok || len(diags) != 1 || diags[0] != "unknown_element:mystery" {
		t.Errorf("metadata diagnostics = %v", doc.Metadata()["diagnostics"])
	}
}

func TestTableCells(t *testing.T) {
	markup := "<table><tbody>" +
		"<tr><th>Name</th><th>Age</th></tr>" +
		"<tr><td>Ada</td><td>36</td></tr>" +
		"</tbody></table>"
	doc := mustParse(t, markup)

	cells := doc.FindAll(node.KindTableCell)[0]
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	wantHeader := []bool{true, true, false, false}
	for i, c := range cells {
		if got := c.(*node.TableCell).IsHeader; got != wantHeader[i] {
			t.Errorf("cell %d IsHeader = %v, want %v", i, got, wantHeader[i])
		}
	}
	if got, want := doc.Text(), "Name | Age\nAda | 36"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestTaskList(t *testing.T) {
	markup := `<ac:task-list>` +
		`<ac:task><ac:task-id>1</ac:task-id><ac:task-status>complete</ac:task-status>` +
		`<ac:task-body>Ship the release</ac:task-body></ac:task>` +
		`<ac:task><ac:task-id>2</ac:task-id><ac:task-status>incomplete</ac:task-status>` +
		`<ac:task-body>Write the announcement</ac:task-body></ac:task>` +
		`</ac:task-list>`
	doc := mustParse(t, markup)

	list, ok := doc.Root().(*node.ListElement)
	if !ok || list.Type != node.ListTask {
		t.Fatalf("root = %T, want task list", doc.Root())
	}
	items := doc.FindAll(node.KindListItem)[0]
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	first := items[0].(*node.ListItem)
	if first.TaskID != "1" || first.Status != node.TaskComplete {
		t.Errorf("first item = id %q status %v", first.TaskID, first.Status)
	}
	if got, want := doc.Text(), "✓ Ship the release\n○ Write the announcement"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestOrderedListStart(t *testing.T) {
	doc := mustParse(t, `<ol start="5"><li>a</li><li>b</li></ol>`)
	if got, want := doc.Text(), "5. a\n6. b"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestPageLink(t *testing.T) {
	markup := `<ac:link><ri:page ri:space-key="DEV" ri:content-title="Home"/>` +
		`<ac:plain-text-link-body><![CDATA[the home page]]></ac:plain-text-link-body></ac:link>`
	doc := mustParse(t, markup)

	link, ok := doc.Root().(*node.LinkElement)
	if !ok {
		t.Fatalf("root = %T, want LinkElement", doc.Root())
	}
	if link.Type != node.LinkPage {
		t.Errorf("link type = %v, want page", link.Type)
	}
	ri := doc.FindAll(node.KindResourceIdentifier)[0][0].(*node.ResourceIdentifier)
	if got, want := ri.CanonicalURI(), "page://DEV/Home"; got != want {
		t.Errorf("uri = %q, want %q", got, want)
	}
	if got, want := doc.Text(), "📄 Page the home page"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestMailtoAndAnchorLinks(t *testing.T) {
	doc := mustParse(t, `<p><a href="mailto:a@b.c">mail</a> <a href="#section">jump</a></p>`)
	links := doc.FindAll(node.KindLink)[0]
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if got := links[0].(*node.LinkElement).Type; got != node.LinkMailto {
		t.Errorf("first link type = %v, want mailto", got)
	}
	second := links[1].(*node.LinkElement)
	if second.Type != node.LinkAnchor || second.Anchor != "section" {
		t.Errorf("second link = %v anchor %q", second.Type, second.Anchor)
	}
}

func TestCodeMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="code">` +
		`<ac:parameter ac:name="language">go</ac:parameter>` +
		`<ac:plain-text-body><![CDATA[func main() {
	println("hi")
}]]></ac:plain-text-body></ac:structured-macro>`
	doc := mustParse(t, markup)

	m, ok := doc.Root().(*node.CodeMacro)
	if !ok {
		t.Fatalf("root = %T, want CodeMacro", doc.Root())
	}
	if m.Language != "go" {
		t.Errorf("language = %q, want go", m.Language)
	}
	want := "func main() {\n\tprintln(\"hi\")\n}"
	if m.Code != want {
		t.Errorf("code = %q, want %q", m.Code, want)
	}
	if doc.Text() != want {
		t.Errorf("text = %q, want the code verbatim", doc.Text())
	}
}

func TestCodeMacroMissingBody(t *testing.T) {
	doc := mustParse(t, `<ac:structured-macro ac:name="code"/>`, WithStrict(false))
	if diff := cmp.Diff([]string{"invalid_field:code macro missing plain-text body"}, doc.Diagnostics()); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}
	if doc.Root().(*node.CodeMacro).Code != "" {
		t.Error("missing body should default to empty code")
	}
}

func TestExpandMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="expand">` +
		`<ac:parameter ac:name="title">More details</ac:parameter>` +
		`<ac:rich-text-body><p>the fine print</p></ac:rich-text-body></ac:structured-macro>`
	doc := mustParse(t, markup)

	m := doc.Root().(*node.ExpandMacro)
	if m.Title != "More details" {
		t.Errorf("title = %q", m.Title)
	}
	if got := doc.Text(); got != "the fine print" {
		t.Errorf("text = %q, want body without title", got)
	}
}

func TestTipMacroNormalizesToSuccess(t *testing.T) {
	markup := `<ac:structured-macro ac:name="tip"><ac:rich-text-body><p>nice</p></ac:rich-text-body></ac:structured-macro>`
	doc := mustParse(t, markup)
	p := doc.Root().(*node.PanelMacro)
	if p.Type != node.PanelSuccess {
		t.Errorf("panel type = %v, want success", p.Type)
	}
	if got, want := doc.Text(), "✅ SUCCESS: nice"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestStatusMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="status">` +
		`<ac:parameter ac:name="title">DONE</ac:parameter>` +
		`<ac:parameter ac:name="colour">Green</ac:parameter></ac:structured-macro>`
	doc := mustParse(t, markup)
	if got, want := doc.Text(), "🏷️ Status: DONE (Green)"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestJiraMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="jira">` +
		`<ac:parameter ac:name="key">PROJ-7</ac:parameter>` +
		`<ac:parameter ac:name="server">System JIRA</ac:parameter></ac:structured-macro>`
	doc := mustParse(t, markup)
	if got, want := doc.Text(), "🎫 PROJ-7"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestLayout(t *testing.T) {
	markup := `<ac:layout><ac:layout-section ac:type="two_equal">` +
		`<ac:layout-cell><p>left</p></ac:layout-cell>` +
		`<ac:layout-cell><p>right</p></ac:layout-cell>` +
		`</ac:layout-section></ac:layout>`
	doc := mustParse(t, markup)

	sections := doc.FindAll(node.KindLayoutSection)[0]
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if got := sections[0].(*node.LayoutSection).Type; got != node.SectionTwoEqual {
		t.Errorf("section type = %v, want two_equal", got)
	}
	if got, want := doc.Text(), "left\n\nright"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestLayoutSectionBadType(t *testing.T) {
	doc := mustParse(t, `<ac:layout-section ac:type="sideways"/>`, WithStrict(false))
	if diff := cmp.Diff([]string{"invalid_field:layout-section type: sideways"}, doc.Diagnostics()); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestDecisionList(t *testing.T) {
	markup := `<ac:adf-extension><ac:adf-node type="decision-list">` +
		`<ac:adf-attribute key="local-id">dl-1</ac:adf-attribute>` +
		`<ac:adf-node type="decision-item">` +
		`<ac:adf-attribute key="state">DECIDED</ac:adf-attribute>` +
		`<ac:adf-content>Use Go</ac:adf-content></ac:adf-node>` +
		`<ac:adf-node type="decision-item">` +
		`<ac:adf-content>Pick a database</ac:adf-content></ac:adf-node>` +
		`</ac:adf-node><ac:adf-fallback><ul><li>Use Go</li></ul></ac:adf-fallback>` +
		`</ac:adf-extension>`
	doc := mustParse(t, markup)

	list, ok := doc.Root().(*node.DecisionList)
	if !ok {
		t.Fatalf("root = %T, want DecisionList", doc.Root())
	}
	if list.LocalID != "dl-1" {
		t.Errorf("local id = %q", list.LocalID)
	}
	items := doc.FindAll(node.KindDecisionListItem)[0]
	if len(items) != 2 {
		t.Fatalf("got %d decision items, want 2", len(items))
	}
	if got, want := doc.Text(), "✅ Use Go\n⏳ Pick a database"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestInlineCommentMarkerIsTransparent(t *testing.T) {
	doc := mustParse(t, `<p>agreed <ac:inline-comment-marker ac:ref="r1">on this</ac:inline-comment-marker></p>`)
	if got, want := doc.Text(), "agreed on this"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	markers := doc.FindAll(node.KindInlineComment)[0]
	if len(markers) != 1 || markers[0].(*node.InlineCommentMarker).Ref != "r1" {
		t.Errorf("markers = %v", markers)
	}
}

func TestAttachedImage(t *testing.T) {
	markup := `<ac:image ac:alt="diagram"><ri:attachment ri:filename="arch.png" ri:version-at-save="2"/></ac:image>`
	doc := mustParse(t, markup)
	img := doc.Root().(*node.Image)
	if img.Filename != "arch.png" || img.VersionAtSave != "2" {
		t.Errorf("image = %+v", img)
	}
	if got, want := doc.Text(), "🖼️ Image: diagram"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestProfileMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="profile"><ac:parameter ac:name="user">` +
		`<ri:user ri:account-id="abc123"/></ac:parameter></ac:structured-macro>`
	doc := mustParse(t, markup)
	if got := doc.Root().(*node.ProfileMacro).AccountID; got != "abc123" {
		t.Errorf("account id = %q, want abc123", got)
	}
}

func TestViewFileMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="view-file"><ac:parameter ac:name="name">` +
		`<ri:attachment ri:filename="slides.pptx"/></ac:parameter></ac:structured-macro>`
	doc := mustParse(t, markup)
	if got := doc.Root().(*node.ViewFileMacro).Filename; got != "slides.pptx" {
		t.Errorf("filename = %q, want slides.pptx", got)
	}
}

func TestIncludeMacro(t *testing.T) {
	markup := `<ac:structured-macro ac:name="include"><ac:parameter ac:name="">` +
		`<ri:page ri:space-key="DEV" ri:content-title="Runbook"/></ac:parameter></ac:structured-macro>`
	doc := mustParse(t, markup)
	m := doc.Root().(*node.IncludeMacro)
	if m.SpaceKey != "DEV" || m.ContentTitle != "Runbook" {
		t.Errorf("include = %+v", m)
	}
}

func TestFormattingWhitespaceDropped(t *testing.T) {
	markup := "<table>\n  <tbody>\n    <tr>\n      <td>\n        <p>Cell content</p>\n      </td>\n    </tr>\n  </tbody>\n</table>"
	doc := mustParse(t, markup)
	if got, want := doc.Text(), "Cell content"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestParserIsReusable(t *testing.T) {
	p := New(WithStrict(false))
	if _, err := p.Parse("<unknown-tag/>"); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	doc, err := p.Parse("<p>clean</p>")
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if len(doc.Diagnostics()) != 0 {
		t.Errorf("diagnostics leaked across calls: %v", doc.Diagnostics())
	}
}

func TestWalkFromDocument(t *testing.T) {
	doc := mustParse(t, "<h1>T</h1><p>b</p>")
	var kinds []node.Kind
	for n := range doc.Walk() {
		kinds = append(kinds, n.Kind())
	}
	want := []node.Kind{
		node.KindFragment,
		node.KindHeading, node.KindText,
		node.KindTextBreak, node.KindText,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("walk kinds (-want +got):\n%s", diff)
	}
}
