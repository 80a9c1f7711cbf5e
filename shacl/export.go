package shacl

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/dcatqa/vocabulary"
)

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"Severity",
	"Focus Node",
	"Path",
	"Value",
	"Message",
	"Source Shape",
	"Constraint Component",
	"Additional Info URL",
}

// ExportCSV writes the report's results, all severities, one row per result,
// in severity order. Multi-message results join their messages with a
// newline inside the Message cell.
func ExportCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, group := range [][]Violation{r.Violations, r.Warnings, r.Infos} {
		for _, v := range group {
			row := []string{
				string(v.Severity),
				v.FocusNode,
				v.Path,
				v.Value,
				strings.Join(v.Messages, "\n"),
				v.SourceShape,
				v.SourceConstraintComponent,
				v.FoafPage,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportTurtle serializes the report as a SHACL validation report in Turtle.
func ExportTurtle(r *Report) string {
	var sb strings.Builder

	for _, prefix := range []string{"sh", "rdf", "xsd", "foaf"} {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, vocabulary.Prefixes[prefix]))
	}
	sb.WriteString("@prefix dcatqa: <urn:dcatqa:> .\n\n")

	sb.WriteString(fmt.Sprintf("<urn:uuid:%s>\n", r.ID))
	sb.WriteString("    a sh:ValidationReport ;\n")
	sb.WriteString(fmt.Sprintf("    sh:conforms %t", r.Conforms))

	results := make([]Violation, 0, r.TotalResults())
	results = append(results, r.Violations...)
	results = append(results, r.Warnings...)
	results = append(results, r.Infos...)
	if len(results) == 0 {
		sb.WriteString(" .\n")
		return sb.String()
	}
	sb.WriteString(" ;\n")

	refs := make([]string, 0, len(results))
	for i := range results {
		refs = append(refs, fmt.Sprintf("_:result%d", i+1))
	}
	sb.WriteString(fmt.Sprintf("    sh:result %s .\n\n", strings.Join(refs, ", ")))

	for i, v := range results {
		writeResultTurtle(&sb, refs[i], v)
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeResultTurtle(sb *strings.Builder, ref string, v Violation) {
	sb.WriteString(ref + "\n")
	sb.WriteString("    a sh:ValidationResult ;\n")
	sb.WriteString(fmt.Sprintf("    sh:resultSeverity sh:%s ;\n", v.Severity))
	if v.FocusNode != "" {
		sb.WriteString(fmt.Sprintf("    sh:focusNode %s ;\n", turtleNode(v.FocusNode)))
	}
	if v.Path != "" {
		sb.WriteString(fmt.Sprintf("    sh:resultPath %s ;\n", turtleNode(v.Path)))
	}
	if v.Value != "" {
		sb.WriteString(fmt.Sprintf("    sh:value %s ;\n", turtleObject(v.Value)))
	}
	for _, m := range v.Messages {
		sb.WriteString(fmt.Sprintf("    sh:resultMessage %s ;\n", turtleMessage(m)))
	}
	if v.FoafPage != "" {
		sb.WriteString(fmt.Sprintf("    foaf:page <%s> ;\n", v.FoafPage))
	}
	if v.SourceShape != "" {
		sb.WriteString(fmt.Sprintf("    sh:sourceShape %s ;\n", turtleObject(v.SourceShape)))
	}
	sb.WriteString(fmt.Sprintf("    sh:sourceConstraintComponent %s .\n", turtleComponent(v.SourceConstraintComponent)))
}

// turtleNode renders a focus node or path. IRIs and compactable names stay
// resources; blank-node labels pass through; anything else becomes a literal.
func turtleNode(s string) string {
	switch {
	case strings.HasPrefix(s, "_:"):
		return s
	case strings.Contains(s, "://"):
		return "<" + s + ">"
	default:
		if compact := vocabulary.Compact(s); compact != s && !strings.ContainsAny(compact, " /|^()") {
			return compact
		}
		return turtleLiteral(s)
	}
}

// turtleObject renders a value whose node kind is no longer known: IRIs stay
// IRIs, everything else is a plain literal.
func turtleObject(s string) string {
	if strings.Contains(s, "://") {
		return "<" + s + ">"
	}
	if strings.HasPrefix(s, "_:") {
		return s
	}
	return turtleLiteral(s)
}

// turtleMessage renders a message, passing through the "text"@lang form the
// normalizer produces and quoting everything else.
func turtleMessage(s string) string {
	if strings.HasPrefix(s, `"`) {
		if idx := strings.LastIndex(s, `"@`); idx > 0 {
			return turtleLiteral(s[1:idx]) + s[idx+1:]
		}
	}
	return turtleLiteral(s)
}

// turtleComponent renders a constraint component, keeping prefixed names as
// resources.
func turtleComponent(s string) string {
	if strings.Contains(s, "://") {
		return "<" + s + ">"
	}
	if strings.Contains(s, ":") && !strings.ContainsAny(s, " \t\n") {
		return s
	}
	return turtleLiteral(s)
}

func turtleLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
