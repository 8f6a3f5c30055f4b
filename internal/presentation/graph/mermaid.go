package graph

import (
	"fmt"
	"strings"
)

// Kind is the role a participant plays in a pattern.
type Kind string

const (
	KindClient    Kind = "client"
	KindInterface Kind = "interface"
	KindConcrete  Kind = "concrete"
)

// Participant is one type of a pattern example.
// Variant is the selector that picks it, if any.
type Participant struct {
	Name    string
	Kind    Kind
	Variant string
}

// Relation is an edge between two participants.
// Implements edges are drawn dotted.
type Relation struct {
	From       string
	To         string
	Label      string
	Implements bool
}

// Diagram is the structure of one example.
type Diagram struct {
	Participants []Participant
	Relations    []Relation
}

// Overlay highlights the participants involved in one variant.
type Overlay struct {
	Variant string
}

// GenerateMermaid produces a Mermaid flowchart from a diagram.
// Shapes follow the participant kind:
// - Client: ((Circle))
// - Interface: ([Stadium])
// - Concrete: [Rectangle]
func GenerateMermaid(d Diagram, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, p := range d.Participants {
		opener, closer := "[", "]"
		switch p.Kind {
		case KindClient:
			opener, closer = "((", "))"
		case KindInterface:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(p.Name), opener, p.Name, closer))
	}

	for _, r := range d.Relations {
		arrow := "-->"
		if r.Implements {
			arrow = "-.->"
		}
		if r.Label != "" {
			label := strings.ReplaceAll(r.Label, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
			if r.Implements {
				arrow = fmt.Sprintf("-. \"%s\" .->", label)
			}
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(r.From), arrow, sanitizeMermaidID(r.To)))
	}

	if overlay != nil && overlay.Variant != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on both light and dark themes.
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, p := range d.Participants {
			if p.Variant == overlay.Variant {
				sb.WriteString(fmt.Sprintf("    class %s selected;\n", sanitizeMermaidID(p.Name)))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
