package constants

// Directory Error Codes
// These constants define specific error scenarios for configuration
// resolution, the spreadsheet upstream, and the admin write path.

// Configuration errors
const (
	ErrCodeFacultyNotFound     = "FACULTY_NOT_FOUND"
	ErrCodeConfigIncomplete    = "CONFIG_INCOMPLETE"
	ErrCodeNoColumnsConfigured = "NO_COLUMNS_CONFIGURED"
	ErrCodeStoreUnavailable    = "STORE_UNAVAILABLE"
)

// Upstream (spreadsheet API) errors
const (
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeEmptyResult       = "EMPTY_RESULT"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeFetchFailed       = "FETCH_FAILED"
)

// Write-path errors
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeInvalidMapping   = "INVALID_MAPPING"
	ErrCodeDuplicateFaculty = "DUPLICATE_FACULTY"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DirectoryErrorMessages = map[string]string{
	ErrCodeFacultyNotFound:     "No configuration found for the requested faculty",
	ErrCodeConfigIncomplete:    "Faculty configuration is incomplete. Please configure the spreadsheet ID, API key and select a sheet",
	ErrCodeNoColumnsConfigured: "No columns have been configured. Please configure the column mapping in the admin panel",
	ErrCodeStoreUnavailable:    "The configuration store is unreachable",

	ErrCodeUpstreamError:     "The spreadsheet service returned an error. Please verify the Google Sheets API configuration",
	ErrCodeNetworkError:      "Connection error. Please check your internet connection and try again",
	ErrCodeEmptyResult:       "The spreadsheet contains no data",
	ErrCodeInvalidDataFormat: "Unexpected data format. Please verify the structure of the spreadsheet",
	ErrCodeFetchFailed:       "Could not load data after several attempts. Please verify the faculty configuration",

	ErrCodeInvalidRequest:   "The request payload is invalid",
	ErrCodeInvalidMapping:   "The column mappings are invalid",
	ErrCodeDuplicateFaculty: "A faculty with that name already exists",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DirectoryErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
