package wstrust

import "fmt"

// Dialect carries the four protocol constants resolved from a TrustVersion.
// The four values always belong to the same namespace family; they are
// resolved together and never mixed across dialects.
type Dialect struct {
	SOAPAction     string
	TrustNamespace string
	KeyType        string
	RequestType    string
}

var (
	dialect13 = Dialect{
		SOAPAction: "http://docs.oasis-open.org/ws-sx/ws-trust/200512/RST/Issue",
		// AD FS rejects the canonical trailing-slash form of the 200512
		// namespace, so the non-slash variant is normative here.
		TrustNamespace: "http://docs.oasis-open.org/ws-sx/ws-trust/200512",
		KeyType:        "http://docs.oasis-open.org/ws-sx/ws-trust/200512/Bearer",
		RequestType:    "http://docs.oasis-open.org/ws-sx/ws-trust/200512/Issue",
	}

	dialect2005 = Dialect{
		SOAPAction:     "http://schemas.xmlsoap.org/ws/2005/02/trust/RST/Issue",
		TrustNamespace: "http://schemas.xmlsoap.org/ws/2005/02/trust",
		KeyType:        "http://schemas.xmlsoap.org/ws/2005/05/identity/NoProofKey",
		RequestType:    "http://schemas.xmlsoap.org/ws/2005/02/trust/Issue",
	}
)

// ResolveDialect maps a TrustVersion to its four protocol constants.
// An unrecognized version is a configuration error.
func ResolveDialect(v TrustVersion) (Dialect, error) {
	switch v {
	case Trust13:
		return dialect13, nil
	case Trust2005:
		return dialect2005, nil
	default:
		return Dialect{}, fmt.Errorf("%w: %v", ErrUnsupportedTrustVersion, v)
	}
}
