// Package parser builds Snek syntax trees from source text or from a token
// sequence produced by package lexer.
//
// The parser is a recursive descent parser. Expressions use a fixed ladder
// of precedence levels, lowest binding first:
//
//	==  !=
//	<  >  <=  >=
//	+  -
//	*  /  %  ^  <<  >>  &&  ||
//	!  +  -  ~            (prefix, right recursive)
//	call  .field  [index]  ?.  (postfix)
//
// Blocks follow indentation: a `:' followed by a new line opens an indented
// block of statements, while a `:' followed by anything else takes a single
// inline statement.
//
// Type annotations combine builtin and named types, string literal types,
// tuples, lists, function and record types. A chain of `&' or `|' produces
// one flat intersection or union; mixing the two in one chain is an error.
//
// Parsing stops at the first error, which is always a *SyntaxError.
// Nesting deeper than the configured maximum fails with a SyntaxError that
// wraps ErrNestingTooDeep.
package parser
