// Package errors provides typed error values for perch-config.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Path errors: Key path problems (ErrInvalidPath, ErrPathNotFound)
//   - List errors: List operation problems (ErrNotAList, ErrValueNotFound)
//   - Persistence errors: Locking and validation problems (ErrLockBusy,
//     ErrValidationFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(segments) == 0 {
//	    return nil, errors.ErrInvalidPath
//	}
//
// Handle errors in the CLI layer:
//
//	err := store.Set(keyPath, value, validate)
//	if errors.Is(err, perrors.ErrLockBusy) {
//	    // Another instance holds the lock; exit nonzero without writing.
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrPathNotFound, keyPath)
package errors
