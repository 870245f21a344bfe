package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixFacultyConfig CachePrefix = "FACULTY_CFG_"
)

// Bootstrap faculty names seeded on first startup when absent.
const (
	BootstrapFacultyFIE = "FIE"
	BootstrapFacultyFRN = "FRN"
)
