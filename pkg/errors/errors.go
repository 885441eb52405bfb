package errors

// Error message constants for the py-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToBackupFile = "failed to back up file"
	ErrMsgFailedToWriteFile  = "failed to rewrite file"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindPyFiles  = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig      = "failed to load config"
	ErrMsgFailedToCreateBackupDir = "failed to create backup directory"

	// Info/warning messages
	InfoMsgNotAPythonFile = "Not a Python file: %s"
	InfoMsgNoPyFilesFound = "No Python files found in directory: %s"
	InfoMsgFoundPyFiles   = "Found %d Python files in directory: %s"
	InfoMsgFileUnchanged  = "unchanged: %s"
	InfoMsgFileRewritten  = "rewritten: %s"
	InfoMsgFileFailed     = "failed:    %s: %v"
	InfoMsgBackupLocation = "Backups written to: %s"
)
