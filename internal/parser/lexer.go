package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits roller notation like "2d6" into count, separator and sides.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Die", Pattern: `[dD]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates the parser from the struct tags in ast.go
func Build() *participle.Parser[Notation] {
	return participle.MustBuild[Notation](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
