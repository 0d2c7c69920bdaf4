package node

// Table is a table with TableRow children. The remaining fields mirror the
// table-level attributes of the storage format.
type Table struct {
	Width       string
	Layout      string
	LocalID     string
	DisplayMode string
	Nodes       []Node
}

func (*Table) Kind() Kind         { return KindTable }
func (*Table) BlockLevel() bool   { return true }
func (t *Table) Children() []Node { return t.Nodes }

// Text renders one line per row.
func (t *Table) Text() string {
	var out string
	for _, row := range t.Nodes {
		line := row.Text()
		if line == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += line
	}
	return out
}

// TableRow holds TableCell children.
type TableRow struct {
	Nodes []Node
}

func (*TableRow) Kind() Kind         { return KindTableRow }
func (*TableRow) BlockLevel() bool   { return true }
func (r *TableRow) Children() []Node { return r.Nodes }

// Text joins cells with " | ".
func (r *TableRow) Text() string {
	var out string
	for _, cell := range r.Nodes {
		if out != "" {
			out += " | "
		}
		out += cell.Text()
	}
	return out
}

// TableCell is a header or data cell. IsHeader reflects the source tag (th
// vs td), never the cell's position.
type TableCell struct {
	IsHeader bool
	RowSpan  int
	ColSpan  int
	Nodes    []Node
}

func (*TableCell) Kind() Kind         { return KindTableCell }
func (*TableCell) BlockLevel() bool   { return true }
func (c *TableCell) Children() []Node { return c.Nodes }

// Text flattens the cell content to a single line so rows stay one line.
func (c *TableCell) Text() string { return flattenLine(joinText(c.Nodes)) }
