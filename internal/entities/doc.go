// Package entities provides the world data model perception runs over:
// rooms joined by portals, the characters standing in them, groups of
// characters and the items fixed inside rooms.
//
// Values in this package are wired together by the world package when a
// snapshot is built and are treated as read-only afterwards.
package entities
