// Package hcl provides the HCL implementation of the config.Loader
// interface. A manifest is a sequence of program, interpreter and
// translator blocks:
//
//	program "hello" {
//	  language = "Java"
//	}
//
//	interpreter {
//	  base     = LOCAL
//	  language = "C"
//	}
//
//	interpreter {
//	  base      = "JVM"
//	  languages = ["Java", "Kotlin"]
//	}
//
//	translator {
//	  base   = LOCAL
//	  source = "Java"
//	  target = "C"
//	}
//
// Blocks are returned in file order. The bare variable LOCAL evaluates to
// the reference executor's name.
package hcl
