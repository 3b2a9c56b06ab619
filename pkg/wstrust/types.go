package wstrust

import (
	"fmt"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/secret"
)

// DefaultAudience is embedded as the wsp:AppliesTo address when the caller
// supplies no cloud audience.
const DefaultAudience = "urn:federation:MicrosoftOnline"

// TrustVersion selects which WS-Trust dialect governs message construction.
type TrustVersion int

const (
	// Trust2005 is the legacy profile under schemas.xmlsoap.org/ws/2005/02/trust.
	Trust2005 TrustVersion = iota + 1
	// Trust13 is the current profile under docs.oasis-open.org/ws-sx/ws-trust/200512.
	Trust13
)

// String returns the conventional short name of the dialect.
func (v TrustVersion) String() string {
	switch v {
	case Trust2005:
		return "2005"
	case Trust13:
		return "1.3"
	default:
		return fmt.Sprintf("TrustVersion(%d)", int(v))
	}
}

// ParseVersion maps a configuration string to a TrustVersion.
// Recognized values are "2005" and "1.3".
func ParseVersion(s string) (TrustVersion, error) {
	switch s {
	case "2005":
		return Trust2005, nil
	case "1.3":
		return Trust13, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTrustVersion, s)
	}
}

// Endpoint identifies a token-issuing service and the dialect it speaks.
// It is supplied by the authority-discovery step, which is outside this
// package.
type Endpoint struct {
	URI     string
	Version TrustVersion
}

// Credential is the closed variant of credential inputs accepted by the
// message builder. Exactly two kinds exist: UsernamePassword and Integrated.
// The unexported method keeps the variant closed so that adding a third kind
// is a compile-time-checked change inside this package.
type Credential interface {
	isCredential()
}

// UsernamePassword carries a username and a caller-owned password buffer.
// The builder reads the password exactly once and wipes the buffer before
// returning, whether construction succeeds or fails.
type UsernamePassword struct {
	Username string
	Password *secret.Buffer
}

func (UsernamePassword) isCredential() {}

// Integrated marks an OS-brokered integrated credential. No proof material
// is embedded in the message; the transport layer supplies it via negotiated
// authentication.
type Integrated struct{}

func (Integrated) isCredential() {}
