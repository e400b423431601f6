package authoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"movegraph/internal/bootstrap"
	errs "movegraph/internal/errors"
)

// Format renders d as a fragment meant to be spliced into the body of an
// existing moveset object, hence the leading comma.
func Format(d *Draft, format string) (string, error) {
	switch format {
	case bootstrap.FormatJSON:
		return formatJSON(d)
	case bootstrap.FormatLegacy:
		return formatLegacy(d), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownFormat, format)
	}
}

func formatJSON(d *Draft) (string, error) {
	key, err := marshal(d.Name, "")
	if err != nil {
		return "", err
	}
	node, err := marshal(d.Node, "    ")
	if err != nil {
		return "", err
	}
	return ",\n" + key + ": " + node, nil
}

func marshal(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// formatLegacy reproduces the historical clipboard text: list-literal
// parents/children and unquoted area/type, not valid JSON.
func formatLegacy(d *Draft) string {
	return fmt.Sprintf("\t,\n\"%s\":{\n"+
		"     \t\t\"parents\": %s,\n"+
		"     \t\t\"children\": %s,\n"+
		"    \t\t\"area\": %s,\n"+
		"     \t\t\"type\": %s,\n"+
		" \t}",
		d.Name, listLiteral(d.Node.Parents), listLiteral(d.Node.Children), d.Area, d.Type)
}

func listLiteral(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = stringLiteral(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// stringLiteral quotes s with single quotes unless s contains a single
// quote and no double quote.
func stringLiteral(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x80 || unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
