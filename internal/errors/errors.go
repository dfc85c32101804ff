package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for programmatic handling
const (
	// Repository errors
	ErrCodeNotARepository     = "NOT_A_REPOSITORY"
	ErrCodeAlreadyInitialized = "ALREADY_INITIALIZED"
	ErrCodeGitVersionTooOld   = "GIT_VERSION_TOO_OLD"

	// Worktree and branch errors
	ErrCodeWorktreeExists     = "WORKTREE_EXISTS"
	ErrCodeWorktreeNotFound   = "WORKTREE_NOT_FOUND"
	ErrCodeWorktreeLocked     = "WORKTREE_LOCKED"
	ErrCodeBranchNotFound     = "BRANCH_NOT_FOUND"
	ErrCodeUncommittedChanges = "UNCOMMITTED_CHANGES"
	ErrCodeBareWorktree       = "BARE_WORKTREE"

	// Configuration errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"

	// External tool errors
	ErrCodeGitOperation = "GIT_OPERATION"
	ErrCodeMultiplexer  = "MULTIPLEXER"

	// System errors
	ErrCodeFileSystem = "FILE_SYSTEM"
	ErrCodeSymlink    = "SYMLINK"
)

// ArborError represents a standardized error with code and context.
//
// Commands return ArborError values for every condition a user can act on:
//   - Code: standardized error code for programmatic handling
//   - Message: human-readable error description
//   - Cause: underlying error that caused this error (optional)
//   - Context: additional contextual information as key-value pairs
//
// Example usage:
//
//	err := ErrWorktreeLocked("feat/login", "wip")
//	if IsArborError(err, ErrCodeWorktreeLocked) {
//	  // Suggest -ff
//	}
type ArborError struct {
	Code    string         // Standardized error code (see ErrCode* constants)
	Message string         // Human-readable error message
	Cause   error          // Underlying error that caused this error
	Context map[string]any // Additional contextual information
}

func (e *ArborError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ArborError) Unwrap() error {
	return e.Cause
}

// Is matches any ArborError carrying the same code.
func (e *ArborError) Is(target error) bool {
	if t, ok := target.(*ArborError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *ArborError) WithContext(key string, value any) *ArborError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func NewArborError(code, message string, cause error) *ArborError {
	return &ArborError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

func NewArborErrorf(code string, cause error, format string, args ...any) *ArborError {
	return &ArborError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Repository errors

func ErrNotARepository(path string, cause error) *ArborError {
	return NewArborErrorf(ErrCodeNotARepository, cause, "not a git repository: %s", path).
		WithContext("path", path)
}

func ErrAlreadyInitialized(path string) *ArborError {
	return NewArborErrorf(ErrCodeAlreadyInitialized, nil, "already initialized: %s exists", path).
		WithContext("path", path)
}

func ErrGitVersionTooOld(found, required string) *ArborError {
	return NewArborErrorf(ErrCodeGitVersionTooOld, nil, "git %s is too old, arbor requires git %s or newer", found, required).
		WithContext("found", found).
		WithContext("required", required)
}

// Worktree and branch errors

func ErrWorktreeExists(name, path string) *ArborError {
	return NewArborErrorf(ErrCodeWorktreeExists, nil, "worktree '%s' already exists at %s", name, path).
		WithContext("name", name).
		WithContext("path", path)
}

func ErrWorktreeNotFound(name string) *ArborError {
	return NewArborErrorf(ErrCodeWorktreeNotFound, nil, "worktree not found: %s", name).
		WithContext("name", name)
}

// ErrWorktreeLocked names the lock reason so the user can decide whether -ff is safe.
func ErrWorktreeLocked(name, reason string) *ArborError {
	shown := reason
	if shown == "" {
		shown = "no reason given"
	}
	return NewArborErrorf(ErrCodeWorktreeLocked, nil, "worktree '%s' is locked: %s (use -ff to force)", name, shown).
		WithContext("name", name).
		WithContext("reason", reason)
}

func ErrBareWorktree(path string) *ArborError {
	return NewArborErrorf(ErrCodeBareWorktree, nil, "cannot remove bare worktree at %s", path).
		WithContext("path", path)
}

func ErrBranchNotFound(name string) *ArborError {
	return NewArborErrorf(ErrCodeBranchNotFound, nil, "branch not found: %s", name).
		WithContext("name", name)
}

func ErrUncommittedChanges(name string) *ArborError {
	return NewArborErrorf(ErrCodeUncommittedChanges, nil, "worktree '%s' has uncommitted changes (use -f to force)", name).
		WithContext("name", name)
}

// Configuration errors

func ErrConfigInvalid(path, detail string) *ArborError {
	return NewArborErrorf(ErrCodeConfigInvalid, nil, "invalid config %s: %s", path, detail).
		WithContext("path", path).
		WithContext("detail", detail)
}

// External tool errors

// ErrGitOperation describes a git invocation that exited non-zero.
func ErrGitOperation(args []string, exitCode int, stderr string) *ArborError {
	msg := fmt.Sprintf("git %s failed (exit %d)", strings.Join(args, " "), exitCode)
	if detail := strings.TrimSpace(stderr); detail != "" {
		msg += ": " + detail
	}
	return NewArborError(ErrCodeGitOperation, msg, nil).
		WithContext("args", args).
		WithContext("exit_code", exitCode).
		WithContext("stderr", stderr)
}

// ErrGitExec describes a git invocation that could not be started at all.
func ErrGitExec(args []string, cause error) *ArborError {
	return NewArborErrorf(ErrCodeGitOperation, cause, "failed to run git %s", strings.Join(args, " ")).
		WithContext("args", args)
}

func ErrMultiplexer(operation string, cause error) *ArborError {
	return NewArborErrorf(ErrCodeMultiplexer, cause, "multiplexer %s failed", operation).
		WithContext("operation", operation)
}

// System errors

func ErrFileSystem(operation string, cause error) *ArborError {
	return NewArborErrorf(ErrCodeFileSystem, cause, "file system operation failed: %s", operation).
		WithContext("operation", operation)
}

func ErrSymlink(path string, cause error) *ArborError {
	return NewArborErrorf(ErrCodeSymlink, cause, "failed to symlink %s", path).
		WithContext("path", path)
}

// IsArborError reports whether err carries an ArborError with the given code.
func IsArborError(err error, code string) bool {
	var arborErr *ArborError
	if errors.As(err, &arborErr) {
		return arborErr.Code == code
	}
	return false
}

func GetErrorCode(err error) string {
	var arborErr *ArborError
	if errors.As(err, &arborErr) {
		return arborErr.Code
	}
	return ""
}

func GetErrorContext(err error) map[string]any {
	var arborErr *ArborError
	if errors.As(err, &arborErr) {
		return arborErr.Context
	}
	return nil
}

// GitStderr returns the stderr captured by a failed git invocation, if any.
func GitStderr(err error) string {
	ctx := GetErrorContext(err)
	if ctx == nil {
		return ""
	}
	s, _ := ctx["stderr"].(string)
	return s
}
