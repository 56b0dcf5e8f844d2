// Package config defines the format-agnostic model of a declaration
// manifest, along with the Loader interface implemented by each concrete
// manifest format.
//
// A Model is an ordered list of declarations. Order matters only for
// programs, because the first definition of a name wins and later ones are
// reported as duplicates. The capability graph reaches the same fixed point
// whatever order interpreters and translators arrive in.
package config
