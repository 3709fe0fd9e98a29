package model

// ValidationError reports input that fails a stated constraint, such as an
// empty name or a duplicate location name. The caller can correct the input
// and retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an operation addressed to an entity that does not
// exist (never created, or already deleted).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// StorageError reports a failure in the underlying store. The message is
// deliberately generic so the driver's error surface never leaks to callers;
// the cause remains reachable through Unwrap for logging.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage unavailable" }

func (e *StorageError) Unwrap() error { return e.Err }
