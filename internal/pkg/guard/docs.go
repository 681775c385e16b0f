// Package guard holds ConstructorGuard, the marker that commands, queries and
// domain records embed to reject zero-value instances.
package guard
