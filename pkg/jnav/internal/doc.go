// Package internal contains the logging plumbing shared by jnav packages.
// Types and functions in this package are not part of the public API.
package internal
