package models

// RegistrationRequest is the JSON body of POST /api/users.
type RegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationKind tags the outcome of a user-creation call.
type RegistrationKind int

const (
	RegistrationOK RegistrationKind = iota
	RegistrationClosed
	RegistrationRejected
)

func (k RegistrationKind) String() string {
	switch k {
	case RegistrationOK:
		return "ok"
	case RegistrationClosed:
		return "closed"
	case RegistrationRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RegistrationResult is the classified server response. Message is only
// meaningful for RegistrationRejected and holds the raw response body,
// which may be empty.
type RegistrationResult struct {
	Kind    RegistrationKind
	Status  int
	Message string
}
