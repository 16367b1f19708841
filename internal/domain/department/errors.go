package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentNotEmpty = errors.New("department still has members")
	ErrNameExists         = errors.New("a department with this name already exists")
)
