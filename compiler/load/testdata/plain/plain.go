// Package plain never imports the nativecom runtime; resolving it yields
// an empty declaration sequence.
package plain

type Widget struct{}
