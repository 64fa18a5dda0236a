package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"boothtrack/dto"
	"boothtrack/internal/authctx"
	"boothtrack/model"
)

type fakeInterventionStore struct {
	records []model.Intervention
}

func (f *fakeInterventionStore) doc(iv model.Intervention) map[string]string {
	return map[string]string{
		"pc":                  iv.PC,
		"constituency":        iv.Constituency,
		"ward":                iv.Ward,
		"booth":               iv.Booth,
		"intervention_type":   iv.InterventionType,
		"intervention_action": iv.InterventionAction,
	}
}

func (f *fakeInterventionStore) Insert(_ context.Context, iv model.Intervention) (model.Intervention, error) {
	f.records = append(f.records, iv)
	return iv, nil
}

func (f *fakeInterventionStore) UpdateAction(_ context.Context, id bson.ObjectID, action string) (*model.Intervention, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].InterventionAction = action
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInterventionStore) Find(_ context.Context, filter bson.M) ([]model.Intervention, error) {
	var out []model.Intervention
	for _, iv := range f.records {
		if evalFilter(f.doc(iv), filter) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeInterventionStore) RawCounts(ctx context.Context, filter bson.M) (int, map[string]int, map[string]int, error) {
	matched, _ := f.Find(ctx, filter)
	byType := map[string]int{}
	byAction := map[string]int{}
	for _, iv := range matched {
		byType[iv.InterventionType]++
		byAction[iv.InterventionAction]++
	}
	return len(matched), byType, byAction, nil
}

func (f *fakeInterventionStore) FindByConstituency(ctx context.Context, constituency string) ([]model.Intervention, error) {
	return f.Find(ctx, bson.M{"constituency": constituency})
}

func intervention(pc, ac, ward, typ, action string) model.Intervention {
	return model.Intervention{
		PC:                 pc,
		Constituency:       ac,
		Ward:               ward,
		InterventionType:   typ,
		InterventionAction: action,
	}
}

func testInterventions() *fakeInterventionStore {
	return &fakeInterventionStore{records: []model.Intervention{
		intervention("p1", "c1", "1", "Police", "Solved"),
		intervention("p1", "c1", "2", "Political", "Not Solved"),
		intervention("p1", "c1", "10", "Police", "Action Taken"), // b@x.com only
		intervention("p2", "c9", "4", "Administrative", "Solved"),
	}}
}

func TestGetInterventionDataScoped(t *testing.T) {
	app := identityApp(authctx.New("u1", "a@x.com", nil))
	app.Get("/get-intervention-data", GetInterventionData(testInterventions(), testDir()))

	var got []dto.InterventionResponse
	status := getJSON(t, app, "/get-intervention-data", &got)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 2)
	for _, iv := range got {
		assert.Equal(t, "c1", iv.Constituency)
		assert.Contains(t, []string{"1", "2"}, iv.Ward)
	}
}

func TestGetInterventionDataCallerFilterCannotWidenScope(t *testing.T) {
	app := identityApp(authctx.New("u1", "a@x.com", nil))
	app.Get("/get-intervention-data", GetInterventionData(testInterventions(), testDir()))

	// a@x.com has no rows under p2; asking for p2 must intersect to
	// nothing, not override the scope terms.
	var got []dto.InterventionResponse
	status := getJSON(t, app, "/get-intervention-data?pc=p2", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, got)
}

func TestGetInterventionDataAdminUnscoped(t *testing.T) {
	app := identityApp(authctx.New("u1", "admin@x.com", []string{"admin"}))
	app.Get("/get-intervention-data", GetInterventionData(testInterventions(), testDir()))

	var got []dto.InterventionResponse
	status := getJSON(t, app, "/get-intervention-data?interventionType=Police", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, got, 2)
}

func TestGetInterventionCountsEmptyScopeShape(t *testing.T) {
	app := identityApp(authctx.New("u9", "stranger@x.com", nil))
	app.Get("/interventions/counts", GetInterventionCounts(testInterventions(), testDir()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/interventions/counts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{
		"totalInterventions": 0,
		"typeCounts": {"Administrative": 0, "Political": 0, "Police": 0},
		"actionCounts": {"Solved": 0, "Not Solved": 0, "Action Taken": 0}
	}`, string(body))
}

func TestGetInterventionCountsScoped(t *testing.T) {
	app := identityApp(authctx.New("u1", "a@x.com", nil))
	app.Get("/interventions/counts", GetInterventionCounts(testInterventions(), testDir()))

	var got dto.InterventionCounts
	status := getJSON(t, app, "/interventions/counts", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, got.TotalInterventions)
	assert.Equal(t, 1, got.TypeCounts["Police"])
	assert.Equal(t, 1, got.TypeCounts["Political"])
	assert.Equal(t, 0, got.TypeCounts["Administrative"])
}

func TestUpdateInterventionActionUnknownID(t *testing.T) {
	app := identityApp(authctx.New("u1", "admin@x.com", []string{"admin"}))
	app.Put("/update-intervention-action/:id", UpdateInterventionAction(testInterventions()))

	req := httptest.NewRequest(
		http.MethodPut,
		"/update-intervention-action/"+bson.NewObjectID().Hex(),
		strings.NewReader(`{"interventionAction":"Solved"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
