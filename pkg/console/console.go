package console

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/stor"
)

const Prompt = "(hbnb) "

// Diagnostics written by commands. Each is printed on its own line.
const (
	MsgClassMissing    = "** class name missing **"
	MsgClassUnknown    = "** class doesn't exist **"
	MsgIDMissing       = "** instance id missing **"
	MsgNoInstance      = "** no instance found **"
	MsgAttrMissing     = "** attribute name missing **"
	MsgValueMissing    = "** value missing **"
	MsgAttrUnknown     = "** attribute doesn't exist **"
	MsgAttrReadOnly    = "** attribute can't be updated **"
	MsgValueInvalid    = "** invalid value **"
	MsgDictInvalid     = "** invalid attribute dictionary **"
	unknownSyntaxStart = "*** Unknown syntax: "
)

type command struct {
	run   func(c *Console, p parsedLine) bool
	usage []string
}

// Console is the line oriented front end over a Stor. Commands write their
// results and diagnostics to the output writer; nothing is returned to the
// caller apart from whether the session should end.
type Console struct {
	stor     stor.Stor
	out      io.Writer
	commands map[string]command
}

func NewConsole(s stor.Stor, out io.Writer) *Console {
	return &Console{
		stor:     s,
		out:      out,
		commands: commandTable(),
	}
}

// Run reads commands from in until quit or end of input. When interactive
// is set the prompt is printed before each line.
func (c *Console) Run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			_, _ = fmt.Fprint(c.out, Prompt)
		}

		if !scanner.Scan() {
			c.OneCmd("EOF")
			return scanner.Err()
		}

		if c.OneCmd(scanner.Text()) {
			return nil
		}
	}
}

// OneCmd runs a single console line and reports whether it asked to quit.
func (c *Console) OneCmd(line string) bool {
	p, err := parseLine(line)
	if err != nil {
		clog.Console().Debugf("parse failed for %q: %s", line, err)
		c.println(MsgDictInvalid)
		return false
	}

	if p.cmd == "" {
		return false
	}

	cmd, ok := c.commands[p.cmd]
	if !ok {
		c.println(unknownSyntaxStart + strings.TrimSpace(line))
		return false
	}

	return cmd.run(c, p)
}

// Exec runs name with already split arguments, as when the command line
// of the hbnb binary carries a single console command.
func (c *Console) Exec(name string, args []string) bool {
	cmd, ok := c.commands[name]
	if !ok {
		c.println(unknownSyntaxStart + strings.TrimSpace(name+" "+strings.Join(args, " ")))
		return false
	}

	return cmd.run(c, parsedLine{cmd: name, args: args})
}

func (c *Console) help(topic string) {
	if topic == "" {
		names := make([]string, 0, len(c.commands))
		for name, cmd := range c.commands {
			if len(cmd.usage) > 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		c.println("")
		c.println("Documented commands (type help <topic>):")
		c.println(strings.Repeat("=", 40))
		c.println(strings.Join(names, "  "))
		c.println("")
		return
	}

	cmd, ok := c.commands[topic]
	if !ok || len(cmd.usage) == 0 {
		c.println(fmt.Sprintf("*** No help on %s", topic))
		return
	}

	for _, line := range cmd.usage {
		c.println(line)
	}
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
