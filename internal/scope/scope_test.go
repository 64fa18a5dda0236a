package scope

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boothtrack/model"
)

type fakeDirectory struct {
	rows []model.HierarchyRow
	err  error

	calls   int
	gotMail string
}

func (f *fakeDirectory) FindRowsByAnyEmail(_ context.Context, email string) ([]model.HierarchyRow, error) {
	f.calls++
	f.gotMail = email

	if f.err != nil {
		return nil, f.err
	}
	var out []model.HierarchyRow
	for _, r := range f.rows {
		if r.SLEmail == email || r.ZonalEmail == email || r.ACMEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func row(pc, ac, ward string) model.HierarchyRow {
	return model.HierarchyRow{PC: pc, Constituency: ac, Ward: ward}
}

func TestResolveNoRows(t *testing.T) {
	dir := &fakeDirectory{}

	res, err := Resolve(context.Background(), dir, "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, Level(""), res.Level)
	assert.Empty(t, res.Allowed)
	assert.True(t, res.Empty())
}

func TestResolveNormalizesEmail(t *testing.T) {
	r1 := row("p1", "c1", "1")
	r1.ACMEmail = "a@x.com"
	r2 := row("p1", "c1", "2")
	r2.ACMEmail = "a@x.com"
	dir := &fakeDirectory{rows: []model.HierarchyRow{r1, r2}}

	res, err := Resolve(context.Background(), dir, "A@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", dir.gotMail)
	assert.Equal(t, 1, dir.calls)
	assert.Equal(t, LevelACM, res.Level)
	assert.Equal(t, []Triple{
		{PC: "p1", Constituency: "c1", Ward: "1"},
		{PC: "p1", Constituency: "c1", Ward: "2"},
	}, res.Allowed)
}

func TestResolveLevelPriority(t *testing.T) {
	zonal := row("p1", "c1", "1")
	zonal.ZonalEmail = "both@x.com"
	acm := row("p2", "c9", "4")
	acm.ACMEmail = "both@x.com"
	dir := &fakeDirectory{rows: []model.HierarchyRow{acm, zonal}}

	res, err := Resolve(context.Background(), dir, "both@x.com")
	require.NoError(t, err)

	// ZONAL outranks ACM, but the ACM row's triple is still granted.
	assert.Equal(t, LevelZonal, res.Level)
	assert.ElementsMatch(t, []Triple{
		{PC: "p1", Constituency: "c1", Ward: "1"},
		{PC: "p2", Constituency: "c9", Ward: "4"},
	}, res.Allowed)
}

func TestResolveSLWinsOverAll(t *testing.T) {
	sl := row("p1", "c1", "1")
	sl.SLEmail = "top@x.com"
	zonal := row("p1", "c2", "3")
	zonal.ZonalEmail = "top@x.com"
	dir := &fakeDirectory{rows: []model.HierarchyRow{zonal, sl}}

	res, err := Resolve(context.Background(), dir, "top@x.com")
	require.NoError(t, err)
	assert.Equal(t, LevelSL, res.Level)
	assert.Len(t, res.Allowed, 2)
}

func TestResolveDeduplicatesTriples(t *testing.T) {
	r1 := row("p1", "c1", "1")
	r1.ACMEmail = "a@x.com"
	r2 := row("p1", "c1", "1")
	r2.ZonalEmail = "a@x.com"
	dir := &fakeDirectory{rows: []model.HierarchyRow{r1, r2}}

	res, err := Resolve(context.Background(), dir, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []Triple{{PC: "p1", Constituency: "c1", Ward: "1"}}, res.Allowed)
}

func TestResolveMissingFieldsCompareEqual(t *testing.T) {
	r1 := row("p1", "c1", "")
	r1.ACMEmail = "a@x.com"
	r2 := row("p1", "c1", "")
	r2.ACMEmail = "a@x.com"
	dir := &fakeDirectory{rows: []model.HierarchyRow{r1, r2}}

	res, err := Resolve(context.Background(), dir, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, res.Allowed, 1)
}

func TestResolveDirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("connection reset")}

	_, err := Resolve(context.Background(), dir, "a@x.com")
	assert.Error(t, err)
}
