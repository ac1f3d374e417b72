package middleware

import "context"

// subjectKey is the key used to store the authenticated dashboard subject
// (the service account name from the JWT) in the request context.
const subjectKey = contextKey("subject")

// GetSubjectFromCtx retrieves the authenticated subject from the context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
