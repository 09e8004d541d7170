package domain

// ActingUser is the identity a message is processed on behalf of.
// Username must be non-empty for system-authored messages; the service
// layer rejects those before the pipeline runs.
type ActingUser struct {
	ID          string
	Username    string
	DisplayName string
	Locale      string
}
