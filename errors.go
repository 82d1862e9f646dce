package coinzdense

import "fmt"

// ErrorKind classifies the handful of ways an operation in this package
// can fail. See the Error interface.
type ErrorKind uint8

//go:generate enumer -type ErrorKind

const (
	// ErrKindInit: the KDF/hash provider failed to initialize. Fatal for
	// the process.
	ErrKindInit ErrorKind = iota

	// ErrKindDerive: the KDF reported invalid parameters deriving a subkey.
	// Should not occur for a size within [20, KDFMaxSize]; a programming
	// error if it does.
	ErrKindDerive

	// ErrKindHash: the salted hash reported failure. Same treatment as
	// ErrKindDerive.
	ErrKindHash

	// ErrKindOutOfRange: a Ranged call or a WOTS chain index exceeded its
	// declared bounds. The only kind callers are expected to handle.
	ErrKindOutOfRange

	// ErrKindDangling: a Ranged view outlived its entropy source.
	ErrKindDangling

	// ErrKindConfig: a shape or parameter combination violates one of the
	// construction-time invariants.
	ErrKindConfig
)

// Error is the error type returned by this package. It never wraps a
// panic and is always synchronous with the call that produced it.
type Error interface {
	error
	Kind() ErrorKind
	Inner() error // the wrapped error, if any
}

type errorImpl struct {
	kind  ErrorKind
	msg   string
	inner error
}

func (err *errorImpl) Kind() ErrorKind { return err.kind }
func (err *errorImpl) Inner() error    { return err.inner }

func (err *errorImpl) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.inner.Error())
	}
	return err.msg
}

// errorf formats a new Error of the given kind.
func errorf(kind ErrorKind, format string, a ...interface{}) *errorImpl {
	return &errorImpl{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// wrapErrorf formats a new Error of the given kind that wraps another.
func wrapErrorf(kind ErrorKind, err error, format string, a ...interface{}) *errorImpl {
	return &errorImpl{kind: kind, msg: fmt.Sprintf(format, a...), inner: err}
}
