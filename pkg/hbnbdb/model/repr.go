package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// describe renders "[<Kind>] (<id>) {<field>: <value>, ...}" with the base
// fields first and the kind's own fields in schema order.
func describe(e Entity) string {
	b := e.GetBase()
	values := e.fieldValues()

	parts := []string{
		fmt.Sprintf("'%s': %s", FieldID, formatValue(b.ID)),
		fmt.Sprintf("'%s': %s", FieldCreatedAt, formatValue(b.CreatedAt)),
		fmt.Sprintf("'%s': %s", FieldUpdatedAt, formatValue(b.UpdatedAt)),
	}

	for _, f := range FieldsOf(e.Kind()) {
		parts = append(parts, fmt.Sprintf("'%s': %s", f.Name, formatValue(values[f.Name])))
	}

	return fmt.Sprintf("[%s] (%s) {%s}", e.Kind(), b.ID, strings.Join(parts, ", "))
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return quote(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat(v)
	case time.Time:
		return quote(FormatTime(v))
	case []string:
		quoted := make([]string, 0, len(v))
		for _, s := range v {
			quoted = append(quoted, quote(s))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// formatFloat keeps a decimal point on whole numbers so floats stay
// distinguishable from integers (4.0 rather than 4).
func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		format = 'g'
	}

	s := strconv.FormatFloat(f, format, -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}
