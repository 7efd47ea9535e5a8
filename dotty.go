package lineflow

import (
	"fmt"
	"io"
)

// CatalogToDot outputs a break catalog in Graphviz DOT format (for
// debugging purposes). Candidates appear in text order, labelled with their
// position, type and penalty.
func CatalogToDot(cat *Catalog, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\"start\" [label=\"0\" %s];\n", dotStyles(BreakMandatory))
	prev := "start"
	for i := 0; i < cat.Len(); i++ {
		bp := cat.At(i)
		id := fmt.Sprintf("b%d", i)
		label := fmt.Sprintf("@%d\\n%s\\np=%.0f", bp.Pos, bp.Type, bp.Penalty)
		nodelist += fmt.Sprintf("\"%s\" [label=\"%s\" %s];\n", id, label, dotStyles(bp.Type))
		edgelist += fmt.Sprintf("\"%s\" -> \"%s\";\n", prev, id)
		prev = id
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// LinesToDot outputs a flow result in Graphviz DOT format, one node per
// line, annotated with the line's ratio and badness.
func LinesToDot(res *FlowResult, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box,style=filled];\n")
	prev := ""
	for i, line := range res.Lines {
		id := fmt.Sprintf("l%d", i)
		color := "#CCDDFF"
		if line.Overflow {
			color = "#FFCCAA"
		}
		label := fmt.Sprintf("%d…%d\\nr=%.2f b=%.1f", line.From, line.To, line.Ratio, line.Badness)
		fmt.Fprintf(w, "\"%s\" [label=\"%s\",fillcolor=\"%s\"];\n", id, label, color)
		if prev != "" {
			fmt.Fprintf(w, "\"%s\" -> \"%s\";\n", prev, id)
		}
		prev = id
	}
	io.WriteString(w, "}\n")
}

func dotStyles(t BreakType) string {
	s := ",style=filled"
	switch t {
	case BreakMandatory:
		s += ",shape=doublecircle,fillcolor=\"#a3d7e4\""
	case BreakSpace:
		s += ",shape=circle,fillcolor=\"#CCDDFF\""
	case BreakEmergency:
		s += ",shape=circle,fillcolor=\"#FFCCAA\""
	default:
		s += ",shape=circle,fillcolor=\"#AACCFF\""
	}
	return s
}
