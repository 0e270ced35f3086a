package components

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/ui/theme"
)

// Diagram renders a case's system diagram as a row of node boxes with a
// connection list below, plus an inspector panel for the selected node.
// Left/right moves the selection.
type Diagram struct {
	Nodes    []cases.Node
	Edges    []cases.Edge
	Selected int
}

// NewDiagram creates a diagram component for a case.
func NewDiagram(d cases.Diagram) Diagram {
	return Diagram{
		Nodes: d.Nodes,
		Edges: d.Edges,
	}
}

// Init returns nil.
func (d Diagram) Init() tea.Cmd {
	return nil
}

// Update handles node selection.
func (d Diagram) Update(msg tea.Msg) (Diagram, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if d.Selected > 0 {
			d.Selected--
		}
	case "right", "l":
		if d.Selected < len(d.Nodes)-1 {
			d.Selected++
		}
	}

	return d, nil
}

// SelectedNode returns the node under the cursor.
func (d Diagram) SelectedNode() *cases.Node {
	if d.Selected < 0 || d.Selected >= len(d.Nodes) {
		return nil
	}
	return &d.Nodes[d.Selected]
}

// View renders node boxes, the connection list, and the inspector.
func (d Diagram) View(width int) string {
	var sections []string
	sections = append(sections, d.renderNodes(width))
	sections = append(sections, d.renderEdges())
	if inspector := d.renderInspector(width); inspector != "" {
		sections = append(sections, inspector)
	}
	return strings.Join(sections, "\n\n")
}

func (d Diagram) renderNodes(width int) string {
	boxes := make([]string, 0, len(d.Nodes))
	for i, n := range d.Nodes {
		borderColor := theme.Border
		if i == d.Selected {
			borderColor = theme.Primary
		}

		label := statusStyle(n.Status).Render(n.Status.Icon()) + " " + n.Label
		sub := lipgloss.NewStyle().Foreground(theme.TextDim).Render(n.Type)

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Render(label + "\n" + sub)
		boxes = append(boxes, box)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if lipgloss.Width(row) > width {
		// Narrow terminals fall back to a vertical stack.
		row = lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	return row
}

func (d Diagram) renderEdges() string {
	labels := make(map[string]string, len(d.Nodes))
	for _, n := range d.Nodes {
		labels[n.ID] = n.Label
	}

	var b strings.Builder
	for _, e := range d.Edges {
		arrow, style := edgeArrow(e.Style)
		line := fmt.Sprintf("  %s %s %s", labels[e.Source], arrow, labels[e.Target])
		if e.Label != "" {
			line += "  " + theme.Hint.Render("("+e.Label+")")
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d Diagram) renderInspector(width int) string {
	n := d.SelectedNode()
	if n == nil || !n.Inspectable || n.InspectData == nil {
		return ""
	}
	info := n.InspectData

	var b strings.Builder
	b.WriteString(statusStyle(n.Status).Render(info.Title) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("status: ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(info.Status) + "\n")
	for _, kv := range sortedData(info.Data) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(kv[0]+": ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(kv[1]) + "\n")
	}
	for _, line := range info.Logs {
		b.WriteString(theme.Hint.Render("› "+line) + "\n")
	}

	cw := width - 6
	if cw > 60 {
		cw = 60
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}

// sortedData returns key/value pairs in stable key order.
func sortedData(data map[string]string) [][2]string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, data[k]})
	}
	return out
}

func statusStyle(s cases.NodeStatus) lipgloss.Style {
	switch s {
	case cases.StatusFailed:
		return theme.NodeFailed
	case cases.StatusDegraded:
		return theme.NodeDegraded
	default:
		return theme.NodeHealthy
	}
}

func edgeArrow(s cases.EdgeStyle) (string, lipgloss.Style) {
	switch s {
	case cases.EdgeBroken:
		return "──✗──▶", lipgloss.NewStyle().Foreground(theme.Error)
	case cases.EdgeSlow:
		return "──~──▶", lipgloss.NewStyle().Foreground(theme.Warning)
	default:
		return "─────▶", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

