package hostedlika

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basispoort "github.com/basispoort/basispoort-sync-client"
	"github.com/basispoort/basispoort-sync-client/rest"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

// newFakeService starts a test server that records the last request and
// answers it with a fixed response.
func newFakeService(t *testing.T, status int, response string) (*rest.Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		rec.body = string(body)

		if response != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	client, err := rest.NewClient(srv.Client(), srv.URL+"/", zerolog.Nop())
	require.NoError(t, err)
	return client, rec
}

func TestMethods_UnwrapsEnvelope(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK,
		`{"methodes": [{"id": "rekenen-2026", "naam": "Rekenen", "tags": ["leerkrachtApplicatie"]}]}`)
	client := NewClient(restClient, "vendor")

	methods, err := client.Methods(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode", rec.path)
	require.Len(t, methods, 1)
	assert.Equal(t, "rekenen-2026", methods[0].ID)
	assert.Equal(t, "Rekenen", methods[0].Name)
	assert.Equal(t, []ApplicationTag{TeacherApplication}, methods[0].Tags)
}

func TestCreateMethod(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, "")
	client := NewClient(restClient, "vendor")

	methodID := uuid.NewString()
	err := client.CreateMethod(context.Background(), &MethodDetails{
		ID:   methodID,
		Name: "Taal actief",
		URL:  "https://methods.example/taal-actief",
		Tags: []ApplicationTag{TeacherApplication},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode", rec.path)
	assert.JSONEq(t,
		`{"id": "`+methodID+`", "naam": "Taal actief", "url": "https://methods.example/taal-actief", "tags": ["leerkrachtApplicatie"]}`,
		rec.body)
}

func TestUpdateMethod_UsesMethodIDPath(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, "")
	client := NewClient(restClient, "vendor")

	err := client.UpdateMethod(context.Background(), &MethodDetails{ID: "rekenen-2026", Name: "Rekenen"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode/rekenen-2026", rec.path)
}

func TestDeleteMethod_EscapesID(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusNoContent, "")
	client := NewClient(restClient, "vendor")

	err := client.DeleteMethod(context.Background(), "weird/id")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode/weird%2Fid", rec.path)
}

func TestSetMethodUserIDs(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, "")
	client := NewClient(restClient, "vendor")

	err := client.SetMethodUserIDs(context.Background(), "rekenen-2026", []basispoort.ID{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode/rekenen-2026/gebruiker", rec.path)
	assert.JSONEq(t, `{"gebruikers": [1, 2, 3]}`, rec.body)
}

func TestAddMethodUserChainIDs(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, "")
	client := NewClient(restClient, "vendor")

	err := client.AddMethodUserChainIDs(context.Background(), "rekenen-2026", []UserChainID{
		{InstitutionID: 5, ChainID: "eck-aaa"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode/rekenen-2026/gebruiker_eckid/addlist", rec.path)
	assert.JSONEq(t, `{"gebruikers": [{"instellingId": 5, "eckId": "eck-aaa"}]}`, rec.body)
}

func TestProductUserIDs(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, `{"gebruikers": [7, 8]}`)
	client := NewClient(restClient, "vendor")

	users, err := client.ProductUserIDs(context.Background(), "rekenen-2026", "werkboek")
	require.NoError(t, err)

	assert.Equal(t, "/hosted-lika/management/lika/vendor/methode/rekenen-2026/product/werkboek/gebruiker", rec.path)
	assert.Equal(t, []basispoort.ID{7, 8}, users)
}

func TestBulkGrantPermissions(t *testing.T) {
	restClient, rec := newFakeService(t, http.StatusOK, "")
	client := NewClient(restClient, "vendor")

	err := client.BulkGrantPermissions(context.Background(), &BulkRequest{
		MethodIDs:    []string{"rekenen-2026"},
		ProductIDs:   []string{"werkboek"},
		UserIDs:      []basispoort.ID{1},
		UserChainIDs: []UserChainID{{InstitutionID: 5, ChainID: "eck-aaa"}},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/hosted-lika/management/lika/vendor/permissions/grant", rec.path)
	assert.JSONEq(t, `{
		"methodes": ["rekenen-2026"],
		"producten": ["werkboek"],
		"gebruikers": [1],
		"gebruikerEckIds": [{"instellingId": 5, "eckId": "eck-aaa"}]
	}`, rec.body)
}

func TestMethod_NotFound(t *testing.T) {
	restClient, _ := newFakeService(t, http.StatusNotFound, `{"error": "unknown method"}`)
	client := NewClient(restClient, "vendor")

	_, err := client.Method(context.Background(), "gone")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var statusErr *rest.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
