//go:build !windows

package fs

// reservedPathChars are characters that cannot appear in a pathname.
// Only NUL is forbidden on Unix and it is already rejected as a control character.
const reservedPathChars = ""
