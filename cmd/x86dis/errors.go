package main

// ioError marks a failure reading or writing a file, as distinct from a
// decode failure or a plain configuration/usage error. main uses
// errors.As to tell them apart when choosing an exit code.
type ioError struct {
	err error
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{err: err}
}

func (e *ioError) Error() string {
	return e.err.Error()
}

func (e *ioError) Unwrap() error {
	return e.err
}
