/*
Package adal implements the federated-credential exchange leg of an OAuth/OIDC
token-acquisition pipeline: building and sending WS-Trust RequestSecurityToken
messages that trade a user's credential for a security token issued by an
on-premises federation service (e.g. AD FS).

# Package Structure

The library is organized into the following packages:

	pkg/wstrust   - WS-Trust RST message builder, dialect constants, error contract
	pkg/secret    - sensitive byte buffers with guaranteed overwrite-then-release
	pkg/transport - SOAP 1.2 POST over TLS 1.2/1.3 with failure mapping

Glue for the bundled CLI lives under internal/:

	internal/config    - YAML client configuration with environment expansion
	internal/credstore - OS-keyring-backed username/password storage

# Quick Start

To build a token request for a WS-Trust 1.3 endpoint:

	endpoint := wstrust.Endpoint{
	    URI:     "https://sts.contoso.com/adfs/services/trust/13/usernamemixed",
	    Version: wstrust.Trust13,
	}
	cred := wstrust.UsernamePassword{
	    Username: "alice@contoso.com",
	    Password: secret.FromString("hunter2"),
	}

	envelope, err := wstrust.BuildTokenRequestMessage("", endpoint, cred)
	if err != nil {
	    // configuration error: unsupported dialect or credential kind
	}
	defer envelope.Wipe()

The returned envelope may contain the (escaped) password and must be wiped by
the caller once it has been handed to the transport. All intermediate buffers
used during construction are overwritten before BuildTokenRequestMessage
returns, on the success path and on every error path.

Parsing of the RequestSecurityTokenResponse, authority discovery, and token
caching are out of scope for this library and are handled by its consumers.
*/
package adal
