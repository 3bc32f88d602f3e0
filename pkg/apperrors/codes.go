package apperrors

// Error codes grouped by domain.
const (
	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Movies
	CodeMovieNotFound ErrorCode = "MOVIE_NOT_FOUND"

	// People
	CodePersonNotFound ErrorCode = "PERSON_NOT_FOUND"

	// Cast entries
	CodeCastEntryNotFound ErrorCode = "CAST_ENTRY_NOT_FOUND"

	// Uploads
	CodeFileMissing ErrorCode = "FILE_MISSING"

	// Generic
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
