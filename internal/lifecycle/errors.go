package lifecycle

import (
	"errors"
	"strings"

	"github.com/csheth/jobmail/internal/emailgen"
)

// GenericFailureMessage is shown when the service gave no usable explanation.
const GenericFailureMessage = "Error generating email. Please check the URL and try again."

var errNoGenerator = errors.New("no generation client configured")

// FailureMessage converts a generation error into the text shown to the user.
// Service errors contribute their detail; everything else is generic.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var serviceErr *emailgen.ServiceError
	if errors.As(err, &serviceErr) {
		if detail := strings.TrimSpace(serviceErr.Detail); detail != "" {
			return detail
		}
	}
	return GenericFailureMessage
}
