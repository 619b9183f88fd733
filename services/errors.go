package services

// ValidationError reports missing, out-of-range or invalid-enum input.
// Mapped to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an absent referenced entity. Mapped to HTTP 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// CapacityExceededError reports an enrollment attempt against a full
// course. Mapped to HTTP 400.
type CapacityExceededError struct {
	CourseID string
}

func (e *CapacityExceededError) Error() string { return "Course is at full capacity" }
