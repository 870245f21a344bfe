package dtos

// FacultyConfigResponse is the GET /faculties/{name} body: the application
// format configuration plus the record id the admin panel needs for
// follow-up writes.
type FacultyConfigResponse struct {
	ID string `json:"id"`
	FacultyConfig
}
