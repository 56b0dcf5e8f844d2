// Package command parses the line-oriented command language of the
// interactive simulator:
//
//	DEFINE PROGRAM <name> <language>
//	DEFINE INTERPRETER <base> <language>
//	DEFINE TRANSLATOR <base> <source> <target>
//	EXECUTABLE <name>
//	EXPLAIN <name>
//	DISPLAY [TEXT|DOT]
//	STATUS
//	HELP
//	EXIT
//
// Command words are case-insensitive and accept numeric and Spanish
// aliases (DEFINIR, EJECUTABLE, SALIR, MOSTRAR, PROGRAMA, INTERPRETE,
// TRADUCTOR, ...). Arguments are case-sensitive. Parsing validates arity and
// token shape only; whether a definition is accepted is up to the session.
package command
