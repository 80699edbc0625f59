package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrInvalidDate      = errors.New("invalid attendance date")
	ErrEmptyImport      = errors.New("import file contains no rows")
	ErrUnknownEmployee  = errors.New("employee identifier not found")
	ErrDuplicateRecord  = errors.New("attendance record already exists for this day")
)
