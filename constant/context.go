package constant

type contextKey string

// ClaimsKey holds the verified access token claims of the caller.
const ClaimsKey contextKey = "claims"
