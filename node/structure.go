package node

import "strconv"

// HeadingElement is an h1-h6 heading. The level is not encoded into the
// canonical text.
type HeadingElement struct {
	Level int
	Nodes []Node
}

func (*HeadingElement) Kind() Kind         { return KindHeading }
func (*HeadingElement) BlockLevel() bool   { return true }
func (h *HeadingElement) Children() []Node { return h.Nodes }
func (h *HeadingElement) Text() string     { return joinText(h.Nodes) }

// ListType enumerates list flavours.
type ListType int

const (
	ListUnordered ListType = iota
	ListOrdered
	ListTask
)

var listNames = map[ListType]string{
	ListUnordered: "unordered",
	ListOrdered:   "ordered",
	ListTask:      "task",
}

func (t ListType) String() string { return listNames[t] }

// ListElement is an unordered, ordered, or task list. Start is the first
// number of an ordered list; 0 means unset and numbering begins at 1.
type ListElement struct {
	Type  ListType
	Start int
	Nodes []Node
}

func (*ListElement) Kind() Kind         { return KindList }
func (*ListElement) BlockLevel() bool   { return true }
func (l *ListElement) Children() []Node { return l.Nodes }

// Text renders one line per item: "- " bullets for unordered lists, numbers
// counted from Start for ordered lists, and a completion mark for task
// lists. Children that are not list items render on lines of their own.
func (l *ListElement) Text() string {
	number := l.Start
	if number <= 0 {
		number = 1
	}
	var out string
	for _, child := range l.Nodes {
		line := ""
		if item, ok := child.(*ListItem); ok {
			switch l.Type {
			case ListOrdered:
				line = strconv.Itoa(number) + ". " + item.Text()
				number++
			case ListTask:
				switch item.Status {
				case TaskComplete:
					line = "✓ " + item.Text()
				case TaskIncomplete:
					line = "○ " + item.Text()
				default:
					line = item.Text()
				}
			default:
				line = "- " + item.Text()
			}
		} else {
			line = child.Text()
		}
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

// TaskStatus is the completion state of a task-list item.
type TaskStatus int

const (
	TaskStatusUnknown TaskStatus = iota
	TaskComplete
	TaskIncomplete
)

var taskStatusNames = map[TaskStatus]string{
	TaskStatusUnknown: "",
	TaskComplete:      "complete",
	TaskIncomplete:    "incomplete",
}

func (s TaskStatus) String() string { return taskStatusNames[s] }

// ListItem is one entry of a ListElement. Task lists additionally carry the
// task identity and completion status.
type ListItem struct {
	TaskID   string
	TaskUUID string
	Status   TaskStatus
	Nodes    []Node
}

func (*ListItem) Kind() Kind         { return KindListItem }
func (*ListItem) BlockLevel() bool   { return true }
func (i *ListItem) Children() []Node { return i.Nodes }

// Text joins block children with a single newline so a nested list starts
// directly under its parent item.
func (i *ListItem) Text() string { return joinTextSep(i.Nodes, "\n") }

// DecisionListItemState is the resolution state of a decision item.
type DecisionListItemState int

const (
	DecisionPending DecisionListItemState = iota
	DecisionDecided
)

var decisionStateNames = map[DecisionListItemState]string{
	DecisionPending: "pending",
	DecisionDecided: "decided",
}

func (s DecisionListItemState) String() string { return decisionStateNames[s] }

// DecisionList holds DecisionListItem children.
type DecisionList struct {
	LocalID string
	Nodes   []Node
}

func (*DecisionList) Kind() Kind         { return KindDecisionList }
func (*DecisionList) BlockLevel() bool   { return true }
func (d *DecisionList) Children() []Node { return d.Nodes }

func (d *DecisionList) Text() string {
	if text := joinTextSep(d.Nodes, "\n"); text != "" {
		return text
	}
	return "📋 Decision List"
}

// DecisionListItem is one decision, rendered with a state marker.
type DecisionListItem struct {
	LocalID string
	State   DecisionListItemState
	Nodes   []Node
}

func (*DecisionListItem) Kind() Kind         { return KindDecisionListItem }
func (*DecisionListItem) BlockLevel() bool   { return true }
func (i *DecisionListItem) Children() []Node { return i.Nodes }

func (i *DecisionListItem) Text() string {
	marker := "⏳"
	if i.State == DecisionDecided {
		marker = "✅"
	}
	if text := joinText(i.Nodes); text != "" {
		return marker + " " + text
	}
	return marker
}
