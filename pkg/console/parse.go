package console

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// dotCallPattern matches the "<Kind>.<command>(<args>)" form.
var dotCallPattern = regexp.MustCompile(`^(\w+)\.(\w+)\((.*)\)$`)

// parsedLine is a console line reduced to a command name and its
// arguments. attrs is only set for the dictionary form of update.
type parsedLine struct {
	cmd   string
	args  []string
	attrs map[string]string
}

func parseLine(line string) (parsedLine, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return parsedLine{}, nil
	}

	if m := dotCallPattern.FindStringSubmatch(line); m != nil {
		return parseDotCall(m[1], m[2], m[3])
	}

	name, rest, _ := strings.Cut(line, " ")
	return parsedLine{cmd: name, args: splitArgs(rest)}, nil
}

// parseDotCall turns User.update("id", "name", "Betty") into the same shape
// as "update User id name Betty".
func parseDotCall(kind, cmd, argText string) (parsedLine, error) {
	p := parsedLine{cmd: cmd, args: []string{kind}}

	if cmd == "update" && strings.Contains(argText, "{") {
		idText, dictText, _ := strings.Cut(argText, ",")
		p.args = append(p.args, unquote(idText))

		attrs, err := parseAttrDict(dictText)
		if err != nil {
			return p, err
		}
		p.attrs = attrs
		return p, nil
	}

	for _, arg := range splitArgs(argText) {
		p.args = append(p.args, strings.TrimSuffix(arg, ","))
	}

	return p, nil
}

// parseAttrDict reads {"name": "value", 'rooms': 3} into attribute text.
func parseAttrDict(text string) (map[string]string, error) {
	text = doubleQuoteStrings(strings.TrimSpace(text))

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, errors.Wrapf(err, "bad attribute dictionary %s", text)
	}

	attrs := make(map[string]string, len(raw))
	for name, value := range raw {
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", name)
		}
		attrs[name] = s
	}

	return attrs, nil
}

// doubleQuoteStrings rewrites single quoted strings as double quoted ones.
// Quote characters inside a string are left alone, apart from a double
// quote inside a single quoted string, which is escaped.
func doubleQuoteStrings(text string) string {
	var b strings.Builder
	var quote rune
	escaped := false

	for _, r := range text {
		switch {
		case quote == 0:
			if r == '\'' {
				quote = r
				r = '"'
			} else if r == '"' {
				quote = r
			}
			b.WriteRune(r)
		case escaped:
			escaped = false
			if r != '\'' {
				b.WriteRune('\\')
			}
			b.WriteRune(r)
		case r == '\\':
			escaped = true
		case r == quote:
			quote = 0
			b.WriteRune('"')
		case r == '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// splitArgs splits with shell quoting rules. Text with unbalanced quotes
// falls back to splitting on whitespace.
func splitArgs(text string) []string {
	args, err := shlex.Split(text, true)
	if err != nil {
		return strings.Fields(text)
	}

	return args
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, `"'`)
}

// createParamValue converts a create parameter value: underscores stand for
// spaces.
func createParamValue(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}
