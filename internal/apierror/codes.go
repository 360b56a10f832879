package apierror

// Problem type URIs, used as the "type" member of every problem response
const (
	// TypeValidation: request parameters or body failed validation (400)
	TypeValidation = "urn:moodtrack:error:validation"

	// TypeBadRequest: the request could not be parsed (400)
	TypeBadRequest = "urn:moodtrack:error:bad_request"

	// TypeInvalidDate: a date or month path segment is malformed (400)
	TypeInvalidDate = "urn:moodtrack:error:invalid_date"

	TypeUnauthorized = "urn:moodtrack:error:unauthorized"
	TypeForbidden    = "urn:moodtrack:error:forbidden"
	TypeNotFound     = "urn:moodtrack:error:not_found"

	// TypeLimitExceeded: the day already holds the maximum number of moods (409)
	TypeLimitExceeded = "urn:moodtrack:error:limit_exceeded"

	TypeRateLimit = "urn:moodtrack:error:rate_limit"

	// TypeUnavailable: the document store or cache could not be reached (503)
	TypeUnavailable = "urn:moodtrack:error:unavailable"

	TypeInternal = "urn:moodtrack:error:internal"
)

// Titles for each problem type
const (
	TitleValidation    = "Validation Error"
	TitleBadRequest    = "Bad Request"
	TitleInvalidDate   = "Invalid Date"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleNotFound      = "Resource Not Found"
	TitleLimitExceeded = "Daily Mood Limit Reached"
	TitleRateLimit     = "Rate Limit Exceeded"
	TitleUnavailable   = "Service Unavailable"
	TitleInternal      = "Internal Server Error"
)
