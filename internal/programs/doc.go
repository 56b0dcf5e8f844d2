// Package programs provides the program registry: the mapping from program
// names to the language each program is written in.
//
// A program name denotes at most one (name, language) pair for the whole
// lifetime of a registry. Redefinition is rejected and programs are never
// removed.
package programs
