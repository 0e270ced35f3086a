package cases

// NodeStatus tags a diagram node's health.
type NodeStatus string

const (
	StatusHealthy  NodeStatus = "healthy"
	StatusDegraded NodeStatus = "degraded"
	StatusFailed   NodeStatus = "failed"
)

// Icon returns the display icon for a node status.
func (s NodeStatus) Icon() string {
	switch s {
	case StatusHealthy:
		return "✅"
	case StatusDegraded:
		return "⚠️"
	case StatusFailed:
		return "❌"
	default:
		return "?"
	}
}

// EdgeStyle tags how a diagram edge should render.
type EdgeStyle string

const (
	EdgeNormal EdgeStyle = "normal"
	EdgeBroken EdgeStyle = "broken"
	EdgeSlow   EdgeStyle = "slow"
)

// InspectData is the detail payload revealed when a node is inspected.
type InspectData struct {
	Title  string            `json:"title"`
	Logs   []string          `json:"logs,omitempty"`
	Data   map[string]string `json:"data,omitempty"`
	Status string            `json:"status"`
}

// Node is one component in a case's system diagram.
type Node struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Status      NodeStatus   `json:"status"`
	Inspectable bool         `json:"inspectable"`
	InspectData *InspectData `json:"inspectData,omitempty"`
}

// Edge connects two diagram nodes.
type Edge struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Label    string    `json:"label,omitempty"`
	Animated bool      `json:"animated,omitempty"`
	Style    EdgeStyle `json:"style,omitempty"`
}

// Diagram is the system picture for a case.
type Diagram struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Option is one selectable answer to a diagnosis question.
type Option struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// Question is a prompt with its option set. Exactly one option is correct.
type Question struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Diagnosis holds the two sequential questions of a case.
type Diagnosis struct {
	RootCause Question `json:"rootCause"`
	Fix       Question `json:"fix"`
}

// Brief is the narrative setup for a case.
type Brief struct {
	Narrative string   `json:"narrative"`
	Symptoms  []string `json:"symptoms"`
	Objective string   `json:"objective"`
}

// Badge is the cosmetic reward for closing a case.
type Badge struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Case is one self-contained scenario. Case ids have the form "case-NN"
// where NN is the zero-padded case number; ids and numbers are identical
// across locale catalogs.
type Case struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Brief     Brief     `json:"brief"`
	Diagram   Diagram   `json:"diagram"`
	Diagnosis Diagnosis `json:"diagnosis"`
	ConceptID string    `json:"conceptId"`
	Badge     Badge     `json:"badge"`
}

// KeyTerm is a term/definition pair attached to a concept.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Concept is the explanatory record linked from a case.
type Concept struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Explanation []string  `json:"explanation"`
	KeyTerms    []KeyTerm `json:"keyTerms"`
}
