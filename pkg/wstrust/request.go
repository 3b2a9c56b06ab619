package wstrust

import (
	"github.com/google/uuid"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/secret"
)

// wsuSchemaURI is the WS-Security utility namespace bound to the u: prefix
// on the envelope root.
const wsuSchemaURI = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"

// envelopeTemplate is the fixed RST skeleton. Substitution order: wsu schema
// URI, SOAP action, message id, endpoint URI, security header fragment,
// trust namespace, appliesTo audience, key type, request type.
//
// Substitution is purely positional and textual. The target services are
// byte-sensitive (see Dialect.TrustNamespace), so the output is pinned here
// rather than produced by a structured document builder. Every substituted
// value is a resolved constant, a generated id, an already-escaped
// credential, or a caller-controlled URI/audience string, which is
// intentionally embedded verbatim.
const envelopeTemplate = `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope" xmlns:a="http://www.w3.org/2005/08/addressing" xmlns:u="%s"><s:Header><a:Action s:mustUnderstand="1">%s</a:Action><a:MessageID>%s</a:MessageID><a:ReplyTo><a:Address>http://www.w3.org/2005/08/addressing/anonymous</a:Address></a:ReplyTo><a:To s:mustUnderstand="1">%s</a:To>%s</s:Header><s:Body><trust:RequestSecurityToken xmlns:trust="%s"><wsp:AppliesTo xmlns:wsp="http://schemas.xmlsoap.org/ws/2004/09/policy"><a:EndpointReference><a:Address>%s</a:Address></a:EndpointReference></wsp:AppliesTo><trust:KeyType>%s</trust:KeyType><trust:RequestType>%s</trust:RequestType></trust:RequestSecurityToken></s:Body></s:Envelope>`

// BuildTokenRequestMessage assembles a WS-Trust RequestSecurityToken
// envelope for the given endpoint and credential. When audience is empty,
// DefaultAudience is embedded.
//
// The builder consumes a UsernamePassword credential's password buffer: it
// is wiped before this function returns, whether construction succeeds or
// fails. Ownership of the returned envelope transfers to the caller, who
// must wipe it after transport since it may contain the escaped password.
func BuildTokenRequestMessage(audience string, endpoint Endpoint, cred Credential) (*secret.Buffer, error) {
	dialect, err := ResolveDialect(endpoint.Version)
	if err != nil {
		wipeCredential(cred)
		return nil, err
	}

	header, err := buildSecurityHeader(cred)
	if err != nil {
		return nil, err
	}
	defer wipeScratch(header)

	appliesTo := audience
	if appliesTo == "" {
		appliesTo = DefaultAudience
	}

	// A fresh top-level correlation id per call, distinct from the id
	// inside the security header.
	messageID := "urn:uuid:" + uuid.New().String()

	// Assembled with the owned substitutor so the escaped password in the
	// header fragment never transits a buffer outside this package's wipe
	// discipline.
	size := len(envelopeTemplate) + len(wsuSchemaURI) + len(dialect.SOAPAction) +
		len(messageID) + len(endpoint.URI) + len(header) + len(dialect.TrustNamespace) +
		len(appliesTo) + len(dialect.KeyType) + len(dialect.RequestType)
	envelope := appendSubstituted(make([]byte, 0, size),
		envelopeTemplate,
		[]byte(wsuSchemaURI),
		[]byte(dialect.SOAPAction),
		[]byte(messageID),
		[]byte(endpoint.URI),
		header,
		[]byte(dialect.TrustNamespace),
		[]byte(appliesTo),
		[]byte(dialect.KeyType),
		[]byte(dialect.RequestType))

	return secret.FromBytes(envelope), nil
}

// wipeCredential enforces the consumption contract on paths that fail before
// the credential reaches the header builder.
func wipeCredential(cred Credential) {
	if c, ok := cred.(UsernamePassword); ok {
		c.Password.Wipe()
	}
}
