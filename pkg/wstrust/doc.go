/*
Package wstrust builds WS-Trust RequestSecurityToken (RST) messages for the
two historical dialects of the protocol spoken by on-premises federation
services: the 2005/02 profile and the 1.3 (200512) profile.

# Message Construction

BuildTokenRequestMessage assembles a SOAP 1.2 envelope carrying WS-Addressing
headers, an optional WS-Security header with a username token and a bounded
validity window, and a trust:RequestSecurityToken body. Exactly one dialect's
constants (SOAP action, trust namespace, key type, request type) appear in a
given envelope; they are resolved atomically from the endpoint's version.

The envelope is produced by positional substitution into a fixed template
rather than by XML tree construction. This is deliberate: the consuming
federation services are lenient parsers but intolerant of certain canonical
forms (notably the trailing slash on the 200512 trust namespace), so the byte
output is pinned by construction. All substituted values are either resolved
constants, freshly generated identifiers, or an already-escaped credential.

# Credential Handling

Credentials are a closed variant: UsernamePassword or Integrated. For the
integrated case the security header is empty; proof material travels out of
band via OS-negotiated transport authentication. For the password case the
password is XML-escaped in a single pass and every buffer that transiently
held raw or escaped password bytes is overwritten before construction
returns, on the success path and on every error path. The builder consumes
the caller's password buffer; the returned envelope is the caller's to wipe
after transport.

# Concurrency

Construction is synchronous, performs no I/O, and shares no mutable state
between calls; it may be invoked from any number of goroutines without
additional synchronization.
*/
package wstrust
