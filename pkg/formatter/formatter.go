package formatter

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/utils"
)

type FormatterConfig struct {
	ExtraStdlib []string // extra first segments classified as standard library
	BackupDir   string   // optional backup directory; empty means a unique temp dir
}

// formatter handles the import reorganization logic
type formatter struct {
	config     FormatterConfig
	classifier *Classifier

	backupOnce sync.Once
	backupDir  string
	backupErr  error
}

// New creates a new formatter for the given configuration
func New(config FormatterConfig) *formatter {
	return &formatter{
		config:     config,
		classifier: NewClassifier(config.ExtraStdlib),
	}
}

// Reorganize produces the canonical form of src. It is a pure function of
// the input bytes and never touches the filesystem; the caller decides
// whether the result warrants a rewrite. Content that is not UTF-8 text
// is rejected with ErrNotText.
func (f *formatter) Reorganize(src []byte) ([]byte, error) {
	if !utf8.Valid(src) || bytes.IndexByte(src, 0) >= 0 {
		return nil, ErrNotText
	}

	lines := strings.Split(string(src), "\n")
	doc := ExtractDocument(lines)
	if len(doc.Statements) == 0 {
		return src, nil
	}

	for i := range doc.Statements {
		doc.Statements[i].Group = f.classifier.Classify(doc.Statements[i].Module)
	}

	block := RenderBlock(doc.Statements)
	return []byte(Reassemble(doc.Prefix, block, doc.Suffix)), nil
}

// backupTarget lazily resolves the backup directory so an invocation that
// changes nothing creates nothing. Safe under concurrent workers.
func (f *formatter) backupTarget() (string, error) {
	f.backupOnce.Do(func() {
		if f.config.BackupDir != "" {
			f.backupErr = os.MkdirAll(f.config.BackupDir, 0o755)
			f.backupDir = f.config.BackupDir
			return
		}
		f.backupDir, f.backupErr = utils.BackupDir()
	})
	if f.backupErr != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateBackupDir, f.backupErr)
	}
	return f.backupDir, nil
}

// BackupLocation returns the backup directory used by this invocation,
// or empty if no backup was ever needed. Call it after processing has
// finished.
func (f *formatter) BackupLocation() string {
	if f.backupErr != nil {
		return ""
	}
	return f.backupDir
}

// ProcessFile runs the full rewrite pipeline for one file: read,
// reorganize, compare, and only when the canonical form differs, back up
// the original and atomically replace it. A file the pipeline would not
// change is never touched.
func (f *formatter) ProcessFile(path string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Status: StatusFailed,
			Err: fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)}
	}

	out, err := f.Reorganize(src)
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}

	if bytes.Equal(out, src) {
		return Result{Path: path, Status: StatusUnchanged}
	}

	dir, err := f.backupTarget()
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	backupPath, err := utils.WriteBackup(dir, path, src)
	if err != nil {
		// Backup failed: the original has not been touched
		return Result{Path: path, Status: StatusFailed,
			Err: fmt.Errorf("%s: %w", errors.ErrMsgFailedToBackupFile, err)}
	}

	if err := utils.ReplaceFile(path, out); err != nil {
		// The backup exists; report the failure rather than swallow it
		return Result{Path: path, Status: StatusFailed, BackupPath: backupPath,
			Err: fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)}
	}

	return Result{Path: path, Status: StatusRewritten, BackupPath: backupPath}
}
