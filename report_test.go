package annobind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhump/annobind"
	"github.com/jhump/annobind/internal/screens"
)

func assertGolden(t *testing.T, name string, rep *annobind.Report) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(rep.String()))
}

func TestReport_Golden(t *testing.T) {
	b, _ := quietBinder(nil)
	assertGolden(t, "login_report", b.Bind(screens.NewLogin()))
	assertGolden(t, "row_report", b.BindTo(&screens.Row{}, screens.RowLayout("Inbox")))
}

func TestReport_Queries(t *testing.T) {
	errMissing := fmt.Errorf("%w: 3", annobind.ErrNotFound)
	rep := &annobind.Report{
		Owner: "*pkg.Owner",
		Results: []annobind.Result{
			{Kind: annobind.Fields, Member: "a", ID: 1, Outcome: annobind.Bound},
			{Kind: annobind.Fields, Member: "b", ID: 0, Outcome: annobind.ZeroID},
			{Kind: annobind.Methods, Member: "a", ID: 3, Outcome: annobind.NotFound, Err: errMissing},
		},
	}
	assert.Len(t, rep.Bound(), 1)
	assert.Equal(t, 1, rep.Count(annobind.ZeroID))
	assert.Zero(t, rep.Count(annobind.Arity))

	failures := rep.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, annobind.Methods, failures[0].Kind)

	res, ok := rep.Lookup(annobind.Methods, "a")
	require.True(t, ok)
	assert.Equal(t, 3, res.ID)
	_, ok = rep.Lookup(annobind.Types, "a")
	assert.False(t, ok)

	assert.Equal(t, "*pkg.Owner (container)\n"+
		"  field  a                1  bound\n"+
		"  field  b                0  zero-id\n"+
		"  method a                3  not-found: annobind: element not found: 3\n", rep.String())
}

func TestOutcome_String(t *testing.T) {
	testCases := map[annobind.Outcome]string{
		annobind.Bound:        "bound",
		annobind.ZeroID:       "zero-id",
		annobind.TypeMismatch: "type-mismatch",
		annobind.Arity:        "arity",
		annobind.NotFound:     "not-found",
		annobind.AccessDenied: "access-denied",
		annobind.Malformed:    "malformed",
		annobind.Outcome(42):  "?42?",
	}
	for o, s := range testCases {
		assert.Equal(t, s, o.String())
	}
}

func TestElementType_String(t *testing.T) {
	assert.Equal(t, "type", annobind.Types.String())
	assert.Equal(t, "field", annobind.Fields.String())
	assert.Equal(t, "method", annobind.Methods.String())
	assert.Equal(t, "?7?", annobind.ElementType(7).String())
}

func TestInvocationError(t *testing.T) {
	cause := errors.New("boom")
	err := &annobind.InvocationError{Owner: "*pkg.Owner", Method: "save", ID: 12, Err: cause}
	assert.EqualError(t, err, "annobind: click on 12: *pkg.Owner.save: boom")
	assert.ErrorIs(t, err, cause)
}
