package response

// Messages shared between middleware and handlers. Entity-specific messages
// live next to their handlers.
const (
	MsgTokenRequired   = "Token required"
	MsgTokenInvalid    = "Invalid token"
	MsgTokenExpired    = "Token expired"
	MsgTeacherOnly     = "Access denied. Only teachers can perform this operation."
	MsgAccessDenied    = "Access denied."
	MsgTooManyRequests = "Too many requests"
)
