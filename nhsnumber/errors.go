package nhsnumber

// Kind is the reason that an NHS number failed validation
type Kind int

// List of validation failures
const (
	InvalidFormat    Kind = iota + 1 // not exactly ten digits
	ChecksumMismatch                 // check digit does not match
)

var kindNames = [...]string{
	"",
	"invalid format",
	"checksum mismatch",
}

var kindMessages = [...]string{
	"",
	"An NHS number must be numeric and 10 characters long.",
	"The NHS number's check digit does not match.",
}

func (k Kind) String() string {
	if k < InvalidFormat || k > ChecksumMismatch {
		return "unknown"
	}
	return kindNames[k]
}

// Message returns the user-facing message for this kind of failure
func (k Kind) Message() string {
	if k < InvalidFormat || k > ChecksumMismatch {
		return ""
	}
	return kindMessages[k]
}

// ValidationError is returned when a value is not a valid NHS number
type ValidationError struct {
	Kind  Kind
	Value string
}

func (e *ValidationError) Error() string {
	return e.Kind.Message()
}

// Is matches any ValidationError of the same kind, so that
// errors.Is(err, ErrChecksumMismatch) works regardless of value.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with errors.Is
var (
	ErrInvalidFormat    error = &ValidationError{Kind: InvalidFormat}
	ErrChecksumMismatch error = &ValidationError{Kind: ChecksumMismatch}
)
