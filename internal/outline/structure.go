package outline

// Node is a section with the lower-level sections nested under it.
type Node struct {
	Section
	Children []Node `json:"children,omitempty"`
}

// Tree turns the flat, level-annotated outline into a hierarchy. A section
// becomes the child of the closest preceding section with a higher level
// (smaller number); sections without one are roots.
func Tree(sections []Section) []Node {
	roots, _ := subtree(sections, 0, LevelNone)
	return roots
}

func subtree(sections []Section, i int, parent Level) ([]Node, int) {
	var out []Node
	for i < len(sections) && sections[i].Level > parent {
		n := Node{Section: sections[i]}
		n.Children, i = subtree(sections, i+1, sections[i].Level)
		out = append(out, n)
	}
	return out, i
}
