package api

// Business error codes embedded in response envelopes, orthogonal to the
// HTTP status. CodeOK marks success; everything else is a domain-level
// failure. The registry lives in the backend; these constants mirror it
// for flow special-casing on the client.
const (
	CodeOK = "0"

	// Common errors (category A)
	CodeUnauthorized        = "A0001"
	CodePermissionDenied    = "A0002"
	CodeNotFound            = "A0003"
	CodeInvalidArgument     = "A0004"
	CodeInternalServerError = "A0005"

	// Account errors (category B)
	CodeEmailAlreadyRegistered = "B0001"
	CodeNameAlreadyRegistered  = "B0002"
	CodeInvalidEmailPassword   = "B0003"
	CodeAccountNotActive       = "B0004"
	CodeEmailNotRegistered     = "B0005"
	CodeAccountAlreadyActive   = "B0006"
	CodeAccountNotFound        = "B0007"
	CodeCannotRemoveLastOwner  = "B0008"
	CodeUserNotInTenant        = "B0009"
	CodeTenantNotFound         = "B0010"
	CodeUserAlreadyInTenant    = "B0011"
)
