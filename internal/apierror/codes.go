package apierror

// Error type URIs following the urn:momentum:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:momentum:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:momentum:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:momentum:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:momentum:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:momentum:error:bad_request"

	// TypePersistence indicates a durable-storage read/write failure (500)
	TypePersistence = "urn:momentum:error:persistence"

	// TypeExportUnsupported indicates export was requested in an
	// environment without a usable sink (501)
	TypeExportUnsupported = "urn:momentum:error:export_unsupported"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation        = "Validation Error"
	TitleNotFound          = "Resource Not Found"
	TitleRateLimit         = "Rate Limit Exceeded"
	TitleInternal          = "Internal Server Error"
	TitleBadRequest        = "Bad Request"
	TitlePersistence       = "Storage Failure"
	TitleExportUnsupported = "Export Not Supported"
)
