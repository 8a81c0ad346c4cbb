package annobind

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is reported when the element source has no element for an
	// identifier.
	ErrNotFound = errors.New("annobind: element not found")

	// ErrAccessDenied is reported when a bound element cannot be stored in the
	// owner or a method cannot be called on it.
	ErrAccessDenied = errors.New("annobind: access denied")

	// ErrTypeMismatch is reported when the element found for a field cannot be
	// assigned to the field.
	ErrTypeMismatch = errors.New("annobind: element type mismatch")

	// ErrMalformed is reported for annotations that cannot be read or that
	// refer to members that do not exist.
	ErrMalformed = errors.New("annobind: malformed annotation")
)

// Outcome classifies what happened to one annotated member during a pass.
type Outcome int

const (
	// Bound means the member was bound: content was set, a field was written
	// or a click listener was added.
	Bound Outcome = iota
	// ZeroID means the annotation's identifier is zero, which means "not
	// bound". No lookup happened.
	ZeroID
	// TypeMismatch means the field's type does not implement Element or the
	// element found cannot be assigned to it.
	TypeMismatch
	// Arity means the method takes arguments and cannot be a click listener.
	Arity
	// NotFound means the element source returned nothing for the identifier.
	NotFound
	// AccessDenied means the element could not be stored in the field or the
	// method cannot be called on the owner.
	AccessDenied
	// Malformed means the annotation could not be read.
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Bound:
		return "bound"
	case ZeroID:
		return "zero-id"
	case TypeMismatch:
		return "type-mismatch"
	case Arity:
		return "arity"
	case NotFound:
		return "not-found"
	case AccessDenied:
		return "access-denied"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("?%d?", int(o))
	}
}

// Result is the outcome of binding one annotated member.
type Result struct {
	Kind    ElementType
	Member  string
	ID      int
	Outcome Outcome
	// Err is nil for bound members and for members skipped because of how
	// they are declared (zero identifier, non-element field type, method with
	// parameters). It is non-nil for members that should have been bound but
	// could not be.
	Err error
}

// Report describes one binding pass.
type Report struct {
	PassID uuid.UUID
	// Owner is the name of the owner's dynamic type.
	Owner string
	// Root is true for passes started with Bind and false for BindTo.
	Root    bool
	Results []Result
}

// Bound returns the results of members that were bound.
func (r *Report) Bound() []Result {
	var res []Result
	for _, x := range r.Results {
		if x.Outcome == Bound {
			res = append(res, x)
		}
	}
	return res
}

// Failures returns the results of members that should have been bound but
// could not be.
func (r *Report) Failures() []Result {
	var res []Result
	for _, x := range r.Results {
		if x.Err != nil {
			res = append(res, x)
		}
	}
	return res
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, x := range r.Results {
		if x.Outcome == o {
			n++
		}
	}
	return n
}

// Lookup returns the result for the given member.
func (r *Report) Lookup(kind ElementType, member string) (Result, bool) {
	for _, x := range r.Results {
		if x.Kind == kind && x.Member == member {
			return x, true
		}
	}
	return Result{}, false
}

// String renders the report as text, one result per line, ordered by kind
// and then member name. The pass id is left out so that renderings of
// equivalent passes are equal.
func (r *Report) String() string {
	var sb strings.Builder
	path := "container"
	if r.Root {
		path = "root"
	}
	fmt.Fprintf(&sb, "%s (%s)\n", r.Owner, path)

	results := make([]Result, len(r.Results))
	copy(results, r.Results)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Kind != results[j].Kind {
			return results[i].Kind < results[j].Kind
		}
		return results[i].Member < results[j].Member
	})
	for _, x := range results {
		fmt.Fprintf(&sb, "  %-6s %-12s %5d  %s", x.Kind, x.Member, x.ID, x.Outcome)
		if x.Err != nil {
			fmt.Fprintf(&sb, ": %v", x.Err)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// InvocationError is reported when a method bound as a click listener panics
// or returns a non-nil error.
type InvocationError struct {
	Owner  string
	Method string
	ID     int
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("annobind: click on %d: %s.%s: %v", e.ID, e.Owner, e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panic in a click listener or in
// owner or element code called during a binding pass.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
