// Package transport implements the HTTPS leg of the federated credential
// exchange: POSTing a built WS-Trust request envelope to a federation
// endpoint over TLS 1.2/1.3 with the dialect's SOAP action, and mapping
// transport-level failures onto the wstrust.ServiceFailure contract.
//
// The package deliberately does not interpret successful responses; the raw
// RequestSecurityTokenResponse bytes are handed back to the caller.
package transport
