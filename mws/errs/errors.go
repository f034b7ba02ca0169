package errs

import "fmt"

// ErrorCode is the Code element of an MWS error response.
type ErrorCode string

// --- Throttling (3)
const (
	ErrRequestThrottled = ErrorCode("RequestThrottled")
	ErrQuotaExceeded    = ErrorCode("QuotaExceeded")
	ErrThrottling       = ErrorCode("Throttling")
)

// --- Auth & signature (7)
const (
	ErrAccessDenied              = ErrorCode("AccessDenied")
	ErrInvalidAccessKeyID        = ErrorCode("InvalidAccessKeyId")
	ErrSignatureDoesNotMatch     = ErrorCode("SignatureDoesNotMatch")
	ErrRequestExpired            = ErrorCode("RequestExpired")
	ErrInvalidAddress            = ErrorCode("InvalidAddress")
	ErrAccessToFeedProcessingDen = ErrorCode("AccessToFeedProcessingResultDenied")
	ErrAccessToReportDenied      = ErrorCode("AccessToReportDenied")
)

// --- Parameters & request shape (9)
const (
	ErrInvalidParameterValue   = ErrorCode("InvalidParameterValue")
	ErrMissingParameter        = ErrorCode("MissingParameter")
	ErrMissingRequiredParam    = ErrorCode("MissingRequiredParameter")
	ErrInvalidRequest          = ErrorCode("InvalidRequest")
	ErrInvalidQueryParameter   = ErrorCode("InvalidQueryParameter")
	ErrInvalidFeedType         = ErrorCode("InvalidFeedType")
	ErrInvalidReportType       = ErrorCode("InvalidReportType")
	ErrContentMD5Missing       = ErrorCode("ContentMD5Missing")
	ErrContentMD5DoesNotMatch  = ErrorCode("ContentMD5DoesNotMatch")
)

// --- Lookup (4)
const (
	ErrFeedProcessingResultNotReady = ErrorCode("FeedProcessingResultNotReady")
	ErrFeedCanceled                 = ErrorCode("FeedCanceled")
	ErrReportNoLongerAvailable      = ErrorCode("ReportNoLongerAvailable")
	ErrInvalidFeedSubmissionID      = ErrorCode("InvalidFeedSubmissionId")
)

// --- Server side (3)
const (
	ErrInternalError      = ErrorCode("InternalError")
	ErrServiceUnavailable = ErrorCode("ServiceUnavailable")
	ErrInputStreamDisconn = ErrorCode("InputStreamDisconnected")
)

var errorCodes = map[ErrorCode]string{
	ErrRequestThrottled:             "Request is throttled",
	ErrQuotaExceeded:                "The total number of requests in an hour was exceeded",
	ErrThrottling:                   "Request rate exceeded",
	ErrAccessDenied:                 "Access was denied",
	ErrInvalidAccessKeyID:           "An invalid AWSAccessKeyId value was used",
	ErrSignatureDoesNotMatch:        "The signature used does not match the server's calculated signature value",
	ErrRequestExpired:               "The request timestamp is too far from the server time",
	ErrInvalidAddress:               "An invalid API section or operation value was used, or an invalid path was used",
	ErrAccessToFeedProcessingDen:    "Insufficient privileges to access the feed processing result",
	ErrAccessToReportDenied:         "Insufficient privileges to access the requested report",
	ErrInvalidParameterValue:        "An invalid parameter value was used, or the request size exceeded the maximum accepted size",
	ErrMissingParameter:             "A required parameter was missing",
	ErrMissingRequiredParam:         "A required parameter was missing",
	ErrInvalidRequest:               "The request was invalid",
	ErrInvalidQueryParameter:        "Superfluous parameter submitted",
	ErrInvalidFeedType:              "The submitted feed type is invalid",
	ErrInvalidReportType:            "The submitted report type is invalid",
	ErrContentMD5Missing:            "The Content-MD5 header value was missing",
	ErrContentMD5DoesNotMatch:       "The calculated MD5 hash value doesn't match the provided Content-MD5 value",
	ErrFeedProcessingResultNotReady: "Processing report not yet generated",
	ErrFeedCanceled:                 "Returned for a request for a processing report of a canceled feed",
	ErrReportNoLongerAvailable:      "The specified report is no longer available",
	ErrInvalidFeedSubmissionID:      "Provided feed submission id was invalid",
	ErrInternalError:                "Unspecified server error occurred",
	ErrServiceUnavailable:           "The service is temporarily unavailable",
	ErrInputStreamDisconn:           "There was an error reading the input stream",
}

var throttleErrors = map[ErrorCode]struct{}{
	ErrRequestThrottled: {},
	ErrQuotaExceeded:    {},
	ErrThrottling:       {},
}

var authErrors = map[ErrorCode]struct{}{
	ErrAccessDenied:              {},
	ErrInvalidAccessKeyID:        {},
	ErrSignatureDoesNotMatch:     {},
	ErrRequestExpired:            {},
	ErrInvalidAddress:            {},
	ErrAccessToFeedProcessingDen: {},
	ErrAccessToReportDenied:      {},
}

var parameterErrors = map[ErrorCode]struct{}{
	ErrInvalidParameterValue:  {},
	ErrMissingParameter:       {},
	ErrMissingRequiredParam:   {},
	ErrInvalidRequest:         {},
	ErrInvalidQueryParameter:  {},
	ErrInvalidFeedType:        {},
	ErrInvalidReportType:      {},
	ErrContentMD5Missing:      {},
	ErrContentMD5DoesNotMatch: {},
}

var serverErrors = map[ErrorCode]struct{}{
	ErrInternalError:      {},
	ErrServiceUnavailable: {},
	ErrInputStreamDisconn: {},
}

// IsThrottleError returns true if the request was rejected by MWS throttling.
func (e ErrorCode) IsThrottleError() bool {
	_, ok := throttleErrors[e]
	return ok
}

// IsAuthError returns true if the error is an authentication or authorization error.
func (e ErrorCode) IsAuthError() bool {
	_, ok := authErrors[e]
	return ok
}

// IsParameterError returns true if the request parameters were rejected.
func (e ErrorCode) IsParameterError() bool {
	_, ok := parameterErrors[e]
	return ok
}

// IsServerError returns true if the failure happened on the MWS side.
func (e ErrorCode) IsServerError() bool {
	_, ok := serverErrors[e]
	return ok
}

// IsKnown returns true if the code is in the catalog.
func (e ErrorCode) IsKnown() bool {
	_, ok := errorCodes[e]
	return ok
}

func (e ErrorCode) Error() string {
	if msg, ok := errorCodes[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code: %s", string(e))
}
