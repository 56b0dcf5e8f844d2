// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// An App owns exactly one session. Manifests named in the configuration are
// replayed into it before Run hands the session to the selected front end:
// the interactive REPL, the HTTP server, or a one-shot executability check.
package app
