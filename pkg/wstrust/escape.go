package wstrust

import "strings"

// appendEscaped appends src to dst with the five XML metacharacters replaced
// by entity references: & " ' < >. Each source byte is inspected exactly
// once, so an ampersand inserted by an earlier replacement can never be
// re-escaped.
//
// Callers passing credential bytes must size dst so that no reallocation can
// occur mid-copy (a discarded half-filled backing array would escape the
// wipe discipline); escapedWorstCase gives a sufficient capacity.
func appendEscaped(dst, src []byte) []byte {
	for _, c := range src {
		switch c {
		case '&':
			dst = append(dst, "&amp;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		case '\'':
			dst = append(dst, "&apos;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// escapedWorstCase is the maximum escaped length of n source bytes.
// The longest entity, &quot;, is six bytes.
func escapedWorstCase(n int) int {
	return n * 6
}

// appendSubstituted appends template to dst with each %s marker replaced by
// the corresponding arg, in order. It writes directly into dst: unlike the
// fmt machinery, no pooled or internal buffer ever holds a copy of the
// arguments, so credential-bearing fragments stay in slices this package
// owns and wipes.
//
// As with appendEscaped, callers passing credential bytes must size dst so
// that no reallocation can occur mid-copy. len(template) plus the lengths of
// all args is always sufficient.
func appendSubstituted(dst []byte, template string, args ...[]byte) []byte {
	for _, arg := range args {
		i := strings.Index(template, "%s")
		if i < 0 {
			break
		}
		dst = append(dst, template[:i]...)
		dst = append(dst, arg...)
		template = template[i+2:]
	}
	return append(dst, template...)
}
