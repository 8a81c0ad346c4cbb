package annobind

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"
	"unsafe"

	"github.com/google/uuid"

	"github.com/jhump/annobind/trace"
)

// Binder runs binding passes. The zero value is ready to use: it reads
// annotations from DefaultRegistry and logs through slog.Default().
//
// A binding pass is synchronous and does not block. It is meant to run on the
// goroutine that owns the UI tree, typically while the owner is being
// initialized. Binding the same owner from two goroutines at once is not
// safe.
type Binder struct {
	// Registry supplies annotations. If nil, DefaultRegistry is used.
	Registry *Registry

	// Logger receives one record per annotated member and per failed click.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Recorder, if not nil, receives the same events as trace records.
	Recorder trace.Recorder

	// ExportedOnly prevents the binder from writing unexported fields through
	// reflection. Such fields are reported as AccessDenied unless the owner
	// implements FieldSetter.
	ExportedOnly bool

	// OnInvocationError, if not nil, is called when a bound method panics or
	// returns a non-nil error. It runs on the goroutine that dispatched the
	// click.
	OnInvocationError func(*InvocationError)
}

// DefaultBinder is used by the package-level BindRoot and BindTo functions.
var DefaultBinder = &Binder{}

// BindRoot binds a root owner using DefaultBinder.
func BindRoot(owner RootOwner) *Report {
	return DefaultBinder.Bind(owner)
}

// BindTo binds an owner against a container using DefaultBinder.
func BindTo(owner interface{}, container ElementSource) *Report {
	return DefaultBinder.BindTo(owner, container)
}

// Bind binds an owner that manages its own content. If the owner's type
// carries a non-zero type annotation, the owner's content is set to that
// layout first. Elements are then looked up through the owner itself.
//
// Bind does not panic. Problems with annotations or elements are recorded in
// the returned report, and so are panics raised by owner or element code
// during the pass.
func (b *Binder) Bind(owner RootOwner) *Report {
	if owner == nil || isNilValue(reflect.ValueOf(owner)) {
		return b.nilPass(owner, true)
	}
	p := b.newPass(owner, owner, true)
	p.setContent(owner)
	p.bindMembers()
	return p.report
}

// BindTo binds an owner that lives inside an existing subtree, such as a
// list item holder or a component embedded in a screen. Elements are looked
// up through the container; the owner's type annotation is ignored.
func (b *Binder) BindTo(owner interface{}, container ElementSource) *Report {
	if owner == nil || container == nil || isNilValue(reflect.ValueOf(owner)) {
		return b.nilPass(owner, false)
	}
	p := b.newPass(owner, container, false)
	p.bindMembers()
	return p.report
}

func (b *Binder) registry() *Registry {
	if b.Registry != nil {
		return b.Registry
	}
	return DefaultRegistry
}

func (b *Binder) recorder() trace.Recorder {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return trace.NewMultiRecorder(trace.NewSlogAdapter(logger), b.Recorder)
}

func (b *Binder) nilPass(owner interface{}, root bool) *Report {
	id := uuid.New()
	r := &Report{PassID: id, Owner: fmt.Sprintf("%T", owner), Root: root}
	err := fmt.Errorf("%w: nil owner or element source", ErrAccessDenied)
	r.Results = append(r.Results, Result{Kind: Types, Member: r.Owner, Outcome: AccessDenied, Err: err})
	b.recorder().Record(trace.Event{
		Timestamp: time.Now(),
		PassID:    id.String(),
		Phase:     trace.PhaseBind,
		Owner:     r.Owner,
		Kind:      Types.String(),
		Member:    r.Owner,
		Outcome:   AccessDenied.String(),
		Error:     err.Error(),
	})
	return r
}

type pass struct {
	binder   *Binder
	recorder trace.Recorder
	owner    interface{}
	ov       reflect.Value
	src      ElementSource
	desc     *Descriptor
	report   *Report
}

func (b *Binder) newPass(owner interface{}, src ElementSource, root bool) *pass {
	ov := reflect.ValueOf(owner)
	return &pass{
		binder:   b,
		recorder: b.recorder(),
		owner:    owner,
		ov:       ov,
		src:      src,
		desc:     b.registry().Descriptor(ov.Type()),
		report: &Report{
			PassID: uuid.New(),
			Owner:  ov.Type().String(),
			Root:   root,
		},
	}
}

func (p *pass) record(res Result) {
	p.report.Results = append(p.report.Results, res)
	ev := trace.Event{
		Timestamp: time.Now(),
		PassID:    p.report.PassID.String(),
		Phase:     trace.PhaseBind,
		Owner:     p.report.Owner,
		Kind:      res.Kind.String(),
		Member:    res.Member,
		ElementID: res.ID,
		Outcome:   res.Outcome.String(),
	}
	if res.Err != nil {
		ev.Error = res.Err.Error()
	}
	p.recorder.Record(ev)
}

func (p *pass) setContent(owner RootOwner) {
	d := p.desc
	name := d.Type.Name()
	switch {
	case d.LayoutErr != nil:
		p.record(Result{Kind: Types, Member: name, Outcome: Malformed, Err: fmt.Errorf("%w: %v", ErrMalformed, d.LayoutErr)})
	case !d.HasLayout:
		// not annotated
	case d.Layout.ID == 0:
		p.record(Result{Kind: Types, Member: name, Outcome: ZeroID})
	default:
		if err := guard(func() { owner.SetContent(d.Layout.ID) }); err != nil {
			p.record(Result{Kind: Types, Member: name, ID: d.Layout.ID, Outcome: AccessDenied,
				Err: fmt.Errorf("%w: set content: %w", ErrAccessDenied, err)})
			return
		}
		p.record(Result{Kind: Types, Member: name, ID: d.Layout.ID, Outcome: Bound})
	}
}

// find looks up id in the pass's element source. A nil element or a panic in
// the source is reported as ErrNotFound.
func (p *pass) find(id int) (Element, error) {
	var e Element
	if err := guard(func() { e = p.src.FindElement(id) }); err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrNotFound, id, err)
	}
	if isNil(e) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, nil
}

// guard calls fn, returning a *PanicError if it panics.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	fn()
	return nil
}

func (p *pass) bindMembers() {
	for i := range p.desc.Members {
		m := &p.desc.Members[i]
		var res Result
		if m.Kind == Fields {
			res = p.bindField(m)
		} else {
			res = p.bindMethod(m)
		}
		p.record(res)
	}
}

func (p *pass) bindField(m *Member) Result {
	res := Result{Kind: Fields, Member: m.Name, ID: m.Bind.ID}
	switch {
	case m.Err != nil:
		res.Outcome, res.Err = Malformed, fmt.Errorf("%w: %v", ErrMalformed, m.Err)
		return res
	case m.Bind.ID == 0:
		res.Outcome = ZeroID
		return res
	case !m.Type.Implements(typeOfElement):
		res.Outcome = TypeMismatch
		return res
	}

	setter, hasSetter := p.owner.(FieldSetter)
	var field reflect.Value
	if !hasSetter {
		var err error
		if field, err = p.fieldValue(m); err != nil {
			res.Outcome, res.Err = AccessDenied, err
			return res
		}
	}

	e, err := p.find(m.Bind.ID)
	if err != nil {
		res.Outcome, res.Err = NotFound, err
		return res
	}

	if hasSetter {
		if perr := guard(func() { err = setter.SetBoundField(m.Name, e) }); perr != nil {
			err = perr
		}
		if err != nil {
			res.Outcome, res.Err = AccessDenied, fmt.Errorf("%w: %w", ErrAccessDenied, err)
			return res
		}
		res.Outcome = Bound
		return res
	}

	ev := reflect.ValueOf(e)
	if !ev.Type().AssignableTo(m.Type) {
		res.Outcome, res.Err = TypeMismatch, fmt.Errorf("%w: %v is not assignable to %v", ErrTypeMismatch, ev.Type(), m.Type)
		return res
	}
	field.Set(ev)
	res.Outcome = Bound
	return res
}

// fieldValue returns a settable value for the field described by m.
func (p *pass) fieldValue(m *Member) (reflect.Value, error) {
	if p.ov.Kind() != reflect.Ptr || p.ov.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: owner %v is not a pointer to a struct", ErrAccessDenied, p.ov.Type())
	}
	field := p.ov.Elem().Field(m.index)
	if field.CanSet() {
		return field, nil
	}
	if p.binder.ExportedOnly {
		return reflect.Value{}, fmt.Errorf("%w: field %s is not exported", ErrAccessDenied, m.Name)
	}
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem(), nil
}

func (p *pass) bindMethod(m *Member) Result {
	res := Result{Kind: Methods, Member: m.Name, ID: m.Bind.ID}
	switch {
	case m.Err != nil:
		res.Outcome, res.Err = Malformed, fmt.Errorf("%w: %v", ErrMalformed, m.Err)
		return res
	case m.Bind.ID == 0:
		res.Outcome = ZeroID
		return res
	case m.Type.NumIn() != 1:
		res.Outcome = Arity
		return res
	}

	recv, err := p.receiver(m.Type.In(0))
	if err != nil {
		res.Outcome, res.Err = AccessDenied, fmt.Errorf("%w: method %s: %v", ErrAccessDenied, m.Name, err)
		return res
	}

	e, err := p.find(m.Bind.ID)
	if err != nil {
		res.Outcome, res.Err = NotFound, err
		return res
	}

	listener := p.binder.listener(p.report.PassID, p.report.Owner, m.Name, m.Bind.ID, m.fn, recv)
	if err := guard(func() { e.OnClick(listener) }); err != nil {
		res.Outcome, res.Err = AccessDenied, fmt.Errorf("%w: register listener: %w", ErrAccessDenied, err)
		return res
	}
	res.Outcome = Bound
	return res
}

// receiver returns a function producing the receiver to pass to a method
// expression whose receiver type is t. Value receivers are read at click time
// so that they observe the owner's current state.
func (p *pass) receiver(t reflect.Type) (func() reflect.Value, error) {
	ov := p.ov
	if ov.Type().AssignableTo(t) {
		return func() reflect.Value { return ov }, nil
	}
	if ov.Kind() == reflect.Ptr && ov.Type().Elem().AssignableTo(t) {
		return func() reflect.Value { return ov.Elem() }, nil
	}
	return nil, fmt.Errorf("owner of type %v cannot be used as receiver %v", ov.Type(), t)
}

var typeOfError = reflect.TypeOf((*error)(nil)).Elem()

func (b *Binder) listener(passID uuid.UUID, owner, method string, id int, fn reflect.Value, recv func() reflect.Value) func() {
	ft := fn.Type()
	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == typeOfError
	return func() {
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Value: r}
				}
			}()
			out := fn.Call([]reflect.Value{recv()})
			if returnsErr {
				if v := out[len(out)-1]; !v.IsNil() {
					err = v.Interface().(error)
				}
			}
		}()
		if err != nil {
			b.invocationFailed(passID, &InvocationError{Owner: owner, Method: method, ID: id, Err: err})
		}
	}
}

func (b *Binder) invocationFailed(passID uuid.UUID, ie *InvocationError) {
	b.recorder().Record(trace.Event{
		Timestamp: time.Now(),
		PassID:    passID.String(),
		Phase:     trace.PhaseClick,
		Owner:     ie.Owner,
		Kind:      Methods.String(),
		Member:    ie.Method,
		ElementID: ie.ID,
		Outcome:   trace.OutcomeInvocationFailed,
		Error:     ie.Error(),
	})
	if b.OnInvocationError != nil {
		b.OnInvocationError(ie)
	}
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
