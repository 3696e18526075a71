package entities

// Node is one step of a SAST result data flow
type Node struct {
	ID          string `json:"id,omitempty"`
	Line        int    `json:"line"`
	Name        string `json:"name,omitempty"`
	Column      int    `json:"column"`
	Length      int    `json:"length"`
	Method      string `json:"method,omitempty"`
	NodeID      int    `json:"nodeID"`
	DomType     string `json:"domType,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	TypeName    string `json:"typeName,omitempty"`
	MethodLine  int    `json:"methodLine"`
	Definitions string `json:"definitions,omitempty"`
}

// Equal compares the fields that identify a node in source code.
// ID and NodeID are assigned per result and are ignored.
func (n Node) Equal(o Node) bool {
	return n.Line == o.Line &&
		n.Column == o.Column &&
		n.Length == o.Length &&
		n.Name == o.Name &&
		n.Method == o.Method &&
		n.DomType == o.DomType &&
		n.FileName == o.FileName &&
		n.FullName == o.FullName &&
		n.TypeName == o.TypeName &&
		n.MethodLine == o.MethodLine &&
		n.Definitions == o.Definitions
}

// TenantSetting is a key/value pair of tenant configuration
type TenantSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TelemetryEvent describes a user interaction with an AI feature
type TelemetryEvent struct {
	AIProvider      string
	Agent           string
	EventType       string
	SubType         string
	Engine          string
	ProblemSeverity string
	ScanType        string
	Status          string
	TotalCount      int
}
