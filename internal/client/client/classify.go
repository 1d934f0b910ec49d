package client

import (
	"strings"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

// RegistrationDisabledMarker is the text the server puts in the body of a
// rejected user-creation request when registration is turned off.
const RegistrationDisabledMarker = "Registration disabled"

// ClassifyRegistration maps a POST /api/users response onto a
// RegistrationResult. The marker is matched as a case-sensitive substring
// and only on non-2xx responses.
func ClassifyRegistration(status int, body string) models.RegistrationResult {
	switch {
	case isSuccess(status):
		return models.RegistrationResult{Kind: models.RegistrationOK, Status: status}
	case strings.Contains(body, RegistrationDisabledMarker):
		return models.RegistrationResult{Kind: models.RegistrationClosed, Status: status}
	default:
		return models.RegistrationResult{Kind: models.RegistrationRejected, Status: status, Message: body}
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
