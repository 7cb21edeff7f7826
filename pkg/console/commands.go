package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/model"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/stor"
	"github.com/pkg/errors"
)

func commandTable() map[string]command {
	return map[string]command{
		"quit": {
			run:   func(c *Console, p parsedLine) bool { return true },
			usage: []string{"Exits the program"},
		},
		"EOF": {
			run: func(c *Console, p parsedLine) bool {
				c.println("")
				return true
			},
			usage: []string{"Exits the program on receiving the EOF signal"},
		},
		"help": {
			run: func(c *Console, p parsedLine) bool {
				topic := ""
				if len(p.args) > 0 {
					topic = p.args[0]
				}
				c.help(topic)
				return false
			},
		},
		"create": {
			run: (*Console).create,
			usage: []string{
				"Creates a class instance with optional parameters",
				"[Usage]: create <className> OR",
				"         create <className> <param1> <param2> <param3> ...",
				"Param syntax: <key name>=<value>",
				"",
			},
		},
		"show": {
			run:   (*Console).show,
			usage: []string{"Shows an individual instance of a class", "[Usage]: show <className> <objectId>", ""},
		},
		"destroy": {
			run:   (*Console).destroy,
			usage: []string{"Destroys an individual instance of a class", "[Usage]: destroy <className> <objectId>", ""},
		},
		"all": {
			run:   (*Console).all,
			usage: []string{"Shows all objects, or all of a class", "[Usage]: all <className>", ""},
		},
		"count": {
			run:   (*Console).count,
			usage: []string{"Usage: count <class_name>"},
		},
		"update": {
			run:   (*Console).update,
			usage: []string{"Updates an object with new information", "Usage: update <className> <id> <attName> <attVal>", ""},
		},
	}
}

// kindArg validates the class name argument, printing the diagnostic when
// it is missing or unknown.
func (c *Console) kindArg(args []string) (model.Kind, bool) {
	if len(args) == 0 || args[0] == "" {
		c.println(MsgClassMissing)
		return "", false
	}

	kind, err := model.ParseKind(args[0])
	if err != nil {
		c.println(MsgClassUnknown)
		return "", false
	}

	return kind, true
}

// instanceArg validates the class name and id arguments and loads the
// instance they name.
func (c *Console) instanceArg(args []string) (model.Entity, bool) {
	kind, ok := c.kindArg(args)
	if !ok {
		return nil, false
	}

	if len(args) < 2 || args[1] == "" {
		c.println(MsgIDMissing)
		return nil, false
	}

	e, err := c.stor.Get(kind, args[1])
	switch {
	case errors.Is(err, stor.ErrNotFound):
		c.println(MsgNoInstance)
		return nil, false
	case err != nil:
		c.storageFailed("show", err)
		return nil, false
	}

	return e, true
}

func (c *Console) create(p parsedLine) bool {
	kind, ok := c.kindArg(p.args)
	if !ok {
		return false
	}

	e, err := model.New(kind)
	if err != nil {
		c.println(MsgClassUnknown)
		return false
	}

	for _, param := range p.args[1:] {
		name, text, found := strings.Cut(param, "=")
		if !found || name == "" || model.IsBaseField(name) {
			clog.Console().Debugf("create %s: ignoring parameter %q", kind, param)
			continue
		}

		value, err := model.ParseFieldValue(kind, name, createParamValue(text))
		if err == nil {
			err = model.Decode(e, model.Record{name: value})
		}

		if err != nil {
			clog.Console().Debugf("create %s: ignoring parameter %q: %s", kind, param, err)
		}
	}

	if err := stor.SaveEntity(c.stor, e); err != nil {
		c.storageFailed("create", err)
		return false
	}

	c.println(e.GetBase().ID)
	return false
}

func (c *Console) show(p parsedLine) bool {
	if e, ok := c.instanceArg(p.args); ok {
		c.println(e.String())
	}

	return false
}

func (c *Console) destroy(p parsedLine) bool {
	e, ok := c.instanceArg(p.args)
	if !ok {
		return false
	}

	if err := c.stor.Delete(e); err != nil {
		c.storageFailed("destroy", err)
	}

	return false
}

func (c *Console) all(p parsedLine) bool {
	var kinds []model.Kind
	if len(p.args) > 0 {
		kind, ok := c.kindArg(p.args)
		if !ok {
			return false
		}
		kinds = append(kinds, kind)
	}

	entities, err := c.stor.All(kinds...)
	if err != nil {
		c.storageFailed("all", err)
		return false
	}

	keys := make([]string, 0, len(entities))
	for key := range entities {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	descriptions := make([]string, 0, len(keys))
	for _, key := range keys {
		descriptions = append(descriptions, entities[key].String())
	}

	c.println("[" + strings.Join(descriptions, ", ") + "]")
	return false
}

func (c *Console) count(p parsedLine) bool {
	kind, ok := c.kindArg(p.args)
	if !ok {
		return false
	}

	n, err := c.stor.Count(kind)
	if err != nil {
		c.storageFailed("count", err)
		return false
	}

	c.println(fmt.Sprintf("%d", n))
	return false
}

func (c *Console) update(p parsedLine) bool {
	e, ok := c.instanceArg(p.args)
	if !ok {
		return false
	}

	attrs := p.attrs
	if attrs == nil {
		if len(p.args) < 3 || p.args[2] == "" {
			c.println(MsgAttrMissing)
			return false
		}

		if len(p.args) < 4 || p.args[3] == "" {
			c.println(MsgValueMissing)
			return false
		}

		attrs = map[string]string{p.args[2]: p.args[3]}
	}

	rec := model.Record{}
	for name, text := range attrs {
		if name == "" {
			c.println(MsgAttrMissing)
			return false
		}

		if text == "" {
			c.println(MsgValueMissing)
			return false
		}

		if model.IsBaseField(name) {
			c.println(MsgAttrReadOnly)
			return false
		}

		value, err := model.ParseFieldValue(e.Kind(), name, text)
		switch {
		case errors.Is(err, model.ErrUnknownField):
			c.println(MsgAttrUnknown)
			return false
		case err != nil:
			c.println(MsgValueInvalid)
			return false
		}

		rec[name] = value
	}

	// Changes go onto a copy so a rejected update leaves the held entity as
	// it was.
	updated, err := model.FromRecord(model.ToRecord(e))
	if err == nil {
		err = model.Decode(updated, rec)
	}

	if err != nil {
		clog.Console().Debugf("update %s: %s", model.Key(e), err)
		c.println(MsgValueInvalid)
		return false
	}

	if err := stor.SaveEntity(c.stor, updated); err != nil {
		c.storageFailed("update", err)
	}

	return false
}

func (c *Console) storageFailed(op string, err error) {
	clog.Console().WithField("op", op).Errorf("storage failure: %s", err)
	c.println(fmt.Sprintf("** %s failed: %s **", op, err))
}
