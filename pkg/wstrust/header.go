package wstrust

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/secret"
)

// tokenValidityWindow bounds the username token: Expires is always exactly
// this far after Created.
const tokenValidityWindow = 10 * time.Minute

// timestampLayout is the fixed wsu timestamp pattern: UTC, millisecond
// precision, Z suffix. The output is machine-generated digits and letters
// only, so it needs no escaping before embedding.
const timestampLayout = "2006-01-02T15:04:05.000Z"

const securityHeaderTemplate = `<o:Security s:mustUnderstand="1" xmlns:o="http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"><u:Timestamp u:Id="_0"><u:Created>%s</u:Created><u:Expires>%s</u:Expires></u:Timestamp>%s</o:Security>`

const usernameTokenTemplate = `<o:UsernameToken u:Id="uuid-%s"><o:Username>%s</o:Username><o:Password>%s</o:Password></o:UsernameToken>`

// buildSecurityHeader produces the o:Security header fragment for the given
// credential. The integrated case carries its proof out of band, so its
// fragment is empty. The returned fragment transiently contains the escaped
// password and must be wiped by the caller once embedded.
func buildSecurityHeader(cred Credential) ([]byte, error) {
	switch c := cred.(type) {
	case UsernamePassword:
		return buildUsernameTokenHeader(c)
	case Integrated:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCredential, cred)
	}
}

func buildUsernameTokenHeader(c UsernamePassword) ([]byte, error) {
	// The builder consumes the password: the caller's buffer is wiped on
	// every exit path from here on.
	defer c.Password.Wipe()

	if c.Password == nil {
		return nil, ErrMissingPassword
	}

	escaped := appendEscaped(make([]byte, 0, escapedWorstCase(c.Password.Len())), c.Password.Bytes())
	defer wipeScratch(escaped)
	c.Password.Wipe()

	created := time.Now().UTC()
	expires := created.Add(tokenValidityWindow)
	tokenID := uuid.New().String()

	// The assembled token block still holds the escaped password; wipe it
	// once it has been copied into the outer header buffer. Assembly goes
	// through appendSubstituted rather than fmt so no copy of the escaped
	// password lands in a buffer this package does not own.
	token := appendSubstituted(make([]byte, 0, len(usernameTokenTemplate)+len(tokenID)+len(c.Username)+len(escaped)),
		usernameTokenTemplate, []byte(tokenID), []byte(c.Username), escaped)
	defer wipeScratch(token)

	header := appendSubstituted(make([]byte, 0, len(securityHeaderTemplate)+2*len(timestampLayout)+len(token)),
		securityHeaderTemplate,
		[]byte(created.Format(timestampLayout)),
		[]byte(expires.Format(timestampLayout)),
		token)

	return header, nil
}

// scratchObserver, when non-nil, receives each credential-bearing scratch
// buffer right after it has been wiped. Test seam for verifying the wipe
// discipline; always nil in production.
var scratchObserver func([]byte)

func wipeScratch(b []byte) {
	secret.Wipe(b)
	if scratchObserver != nil {
		scratchObserver(b)
	}
}
