package node

// Fragment is a neutral multi-root wrapper, synthesized only when a parsed
// document has more than one top-level element.
type Fragment struct {
	Nodes []Node
}

func (*Fragment) Kind() Kind         { return KindFragment }
func (*Fragment) BlockLevel() bool   { return true }
func (f *Fragment) Children() []Node { return f.Nodes }
func (f *Fragment) Text() string     { return joinText(f.Nodes) }

// ContainerElement is the degrade target for constructs the dispatcher does
// not recognize: the construct itself is dropped, its children survive. Tag
// records the offending source name.
type ContainerElement struct {
	Tag   string
	Nodes []Node
}

func (*ContainerElement) Kind() Kind         { return KindContainer }
func (*ContainerElement) BlockLevel() bool   { return true }
func (c *ContainerElement) Children() []Node { return c.Nodes }
func (c *ContainerElement) Text() string     { return joinText(c.Nodes) }
