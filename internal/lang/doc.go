// Package lang defines language identifiers, the nodes of the capability
// graph, together with the validation rules every entry point applies to
// user-supplied tokens before they reach the resolver.
//
// Identifiers are case-sensitive: "lua" and "Lua" name different languages,
// and the reference executor must be spelled exactly "LOCAL". A language
// token is any non-empty run of Unicode letters and numbers.
package lang
