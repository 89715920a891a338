//go:build windows

package fs

// reservedPathChars are characters that cannot appear in a pathname outside the volume name.
const reservedPathChars = `<>:"|?*`
