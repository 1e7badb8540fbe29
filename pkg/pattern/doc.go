// Package pattern compiles user search patterns into matchers.
//
// Four match modes are supported: substring (the default), exact, regular
// expression, and shell wildcard. Wildcard patterns are translated to an
// anchored regular expression, so a pattern like "busybox*" matches
// "busybox-mdev" but not "my-busybox". Case-insensitive comparison and,
// for regex and wildcard modes, word-boundary anchoring can be layered on
// top of any mode via Options.
//
// Compiled matchers are stateless and reentrant; a single matcher is shared
// across the whole search.
package pattern
