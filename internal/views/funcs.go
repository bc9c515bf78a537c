package views

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bnema/umlgen/internal/domain"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"alias":             alias,
		"quote":             quote,
		"label":             label,
		"humanize":          humanize,
		"stereotype":        stereotype,
		"entityKeyword":     entityKeyword,
		"visibility":        visibilitySymbol,
		"params":            params,
		"componentKeyword":  componentKeyword,
		"deploymentKeyword": deploymentKeyword,
		"deploymentStereo":  deploymentStereotype,
		"ordered":           domain.OrderedMessages,
		"pseudoState":       pseudoState,
		"hasDefault":        func(v any) bool { return v != nil },
		"value":             value,
	}
}

// alias turns a model id into a PlantUML identifier. ASCII letters, digits
// and underscores pass through; any other rune becomes _x<HEX>_. An underscore
// followed by x and a leading digit are escaped too, so distinct ids never
// share an alias.
func alias(id string) string {
	if id == "" {
		return "_x_"
	}

	runes := []rune(id)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case i == 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
			escapeRune(&b, r)
		case r == '_' && i+1 < len(runes) && runes[i+1] == 'x':
			escapeRune(&b, r)
		case r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))):
			b.WriteRune(r)
		default:
			escapeRune(&b, r)
		}
	}
	return b.String()
}

func escapeRune(b *strings.Builder, r rune) {
	fmt.Fprintf(b, "_x%X_", r)
}

// value prints an attribute default. An empty string stays visible as "".
func value(v any) string {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return label(fmt.Sprint(v))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(label(s), `"`, "'") + `"`
}

// label keeps free text on one markup line.
func label(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", `\n`)
}

// humanize names an element the model references but never defines.
func humanize(id string) string {
	return inflect.Humanize(inflect.Underscore(id))
}

// viewTitle builds a fresh caser per call; casers keep state between calls.
func viewTitle(view domain.ViewID) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(view), "_", " "))
}

func stereotype(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return " <<" + strings.Trim(s, "<>") + ">>"
}

func entityKeyword(kind domain.EntityKind) string {
	switch kind {
	case domain.EntityKindInterface:
		return "interface"
	case domain.EntityKindAbstract:
		return "abstract class"
	case domain.EntityKindEnum:
		return "enum"
	default:
		return "class"
	}
}

func visibilitySymbol(v domain.Visibility) string {
	switch v {
	case domain.VisibilityPublic:
		return "+"
	case domain.VisibilityProtected:
		return "#"
	case domain.VisibilityPackage:
		return "~"
	default:
		return "-"
	}
}

func params(ps []domain.Parameter) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.Type == "" {
			parts = append(parts, p.Name)
			continue
		}
		parts = append(parts, p.Name+": "+p.Type)
	}
	return strings.Join(parts, ", ")
}

func relationshipArrow(kind domain.RelationshipKind) string {
	switch kind {
	case domain.RelationshipAggregation:
		return "o--"
	case domain.RelationshipComposition:
		return "*--"
	case domain.RelationshipInheritance:
		return "--|>"
	case domain.RelationshipRealization:
		return "..|>"
	case domain.RelationshipDependency:
		return "..>"
	default:
		return "-->"
	}
}

func componentKeyword(kind domain.ComponentKind) string {
	switch kind {
	case domain.ComponentKindPackage:
		return "package"
	case domain.ComponentKindSubsystem:
		return "frame"
	default:
		return "component"
	}
}

func deploymentKeyword(kind domain.DeploymentNodeKind) string {
	if kind == domain.DeploymentKindSystem {
		return "cloud"
	}
	return "node"
}

// deploymentStereotype prefers the node's own stereotype over the one implied
// by its kind.
func deploymentStereotype(node domain.DeploymentNode) string {
	if node.Stereotype != "" {
		return stereotype(node.Stereotype)
	}
	switch node.Kind {
	case domain.DeploymentKindDevice:
		return stereotype("device")
	case domain.DeploymentKindExecutionEnvironment:
		return stereotype("executionEnvironment")
	default:
		return ""
	}
}

func pseudoState(kind domain.StateKind) bool {
	return kind == domain.StateInitial || kind == domain.StateFinal
}
