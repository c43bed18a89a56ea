package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	AnchorColor
)

type Colors struct {
	Map map[ColorAttr]color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]color.Attribute{
			KeyColor:    color.FgHiCyan,
			StringColor: color.FgGreen,
			NumberColor: color.FgHiMagenta,
			BoolColor:   color.FgHiYellow,
			AnchorColor: color.FgHiYellow,
		},
	}
}

func (c *Colors) property(attr ColorAttr) *printer.Property {
	return &printer.Property{
		Prefix: fmt.Sprintf("\x1b[%dm", c.Map[attr]),
		Suffix: fmt.Sprintf("\x1b[%dm", color.Reset),
	}
}

// Colorize rewrites YAML bytes with ANSI colors.
func Colorize(data []byte) []byte {
	return NewColors().Colorize(data)
}

func (c *Colors) Colorize(data []byte) []byte {
	tokens := lexer.Tokenize(string(data))
	p := printer.Printer{
		MapKey: func() *printer.Property {
			return c.property(KeyColor)
		},
		String: func() *printer.Property {
			return c.property(StringColor)
		},
		Number: func() *printer.Property {
			return c.property(NumberColor)
		},
		Bool: func() *printer.Property {
			return c.property(BoolColor)
		},
		Anchor: func() *printer.Property {
			return c.property(AnchorColor)
		},
		Alias: func() *printer.Property {
			return c.property(AnchorColor)
		},
	}
	out := p.PrintTokens(tokens)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out)
}
