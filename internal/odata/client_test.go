package odata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eatu-cf/odata-query-services/internal/destinations"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverMock struct {
	dest *destinations.Destination
	err  error
}

func (m resolverMock) Resolve(ctx context.Context, name string) (*destinations.Destination, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dest, nil
}

var regionsQuery = WithEntity("/V2/Northwind/Northwind.svc", "Regions").
	Select("RegionID", "RegionDescription")

func TestExecute_Success(t *testing.T) {
	mockResponse := `{"d": {"results": [
		{"__metadata": {"uri": "Regions(1)"}, "RegionID": 1, "RegionDescription": "Eastern"},
		{"__metadata": {"uri": "Regions(2)"}, "RegionID": 2, "RegionDescription": "Western"}
	]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/V2/Northwind/Northwind.svc/Regions", r.URL.Path)
		assert.Equal(t, "RegionID,RegionDescription", r.URL.Query().Get("$select"))
		assert.Equal(t, "json", r.URL.Query().Get("$format"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, hasAuth := r.Header["Authorization"]
		assert.False(t, hasAuth)
		_, _ = w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{Name: "Northwind", URL: server.URL}})

	before := testutil.ToFloat64(queriesTotal.WithLabelValues("Northwind", "Regions", "success"))

	entities, err := client.Execute(context.Background(), regionsQuery, "Northwind")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.JSONEq(t, `1`, string(entities[0]["RegionID"]))
	assert.JSONEq(t, `"Western"`, string(entities[1]["RegionDescription"]))
	assert.NotContains(t, entities[0], "__metadata")

	after := testutil.ToFloat64(queriesTotal.WithLabelValues("Northwind", "Regions", "success"))
	assert.Equal(t, before+1, after)
}

func TestExecute_BareArrayEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"d": [{"RegionID": 3, "RegionDescription": "Northern"}]}`))
	}))
	defer server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{URL: server.URL}})

	entities, err := client.Execute(context.Background(), regionsQuery, "Northwind")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.JSONEq(t, `"Northern"`, string(entities[0]["RegionDescription"]))
}

func TestExecute_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"d": {"results": []}}`))
	}))
	defer server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{URL: server.URL}})

	entities, err := client.Execute(context.Background(), regionsQuery, "Northwind")
	require.NoError(t, err)
	assert.NotNil(t, entities)
	assert.Empty(t, entities)
}

func TestExecute_SAPDestination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/erp/sap/opu/odata/sap/ERP_UTILITIES_UMC/Contracts", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("sap-client"))
		assert.Equal(t, "EN", r.URL.Query().Get("sap-language"))

		user, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "erp-user", user)
		assert.Equal(t, "erp-password", password)
		_, _ = w.Write([]byte(`{"d": {"results": [{"ContractID": "C1"}]}}`))
	}))
	defer server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{
		URL:         server.URL + "/erp/",
		User:        "erp-user",
		Password:    "erp-password",
		SAPClient:   "100",
		SAPLanguage: "EN",
	}})

	q := WithEntity("/sap/opu/odata/sap/ERP_UTILITIES_UMC", "Contracts").Select("ContractID")
	entities, err := client.Execute(context.Background(), q, "ErpQueryEndpoint")
	require.NoError(t, err)
	assert.Len(t, entities, 1)
}

func TestExecute_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "005056A509B11EE1B9A8FEC11C21578E", "message": {"lang": "en", "value": "Resource not found for segment 'Contracts'"}}}`))
	}))
	defer server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{URL: server.URL}})

	_, err := client.Execute(context.Background(), regionsQuery, "Northwind")
	require.Error(t, err)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, http.StatusNotFound, qe.Status)
	assert.Contains(t, qe.Error(), "Resource not found for segment 'Contracts'")
}

func TestExecute_MalformedPayload(t *testing.T) {
	bodies := []string{`not json`, `{"value": []}`, `{"d": {"RegionID": 1}}`, `{"d": null}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			client := NewClient(resolverMock{dest: &destinations.Destination{URL: server.URL}})

			_, err := client.Execute(context.Background(), regionsQuery, "Northwind")
			var qe *QueryError
			require.True(t, errors.As(err, &qe))
			assert.Equal(t, http.StatusOK, qe.Status)
		})
	}
}

func TestExecute_UnresolvedDestination(t *testing.T) {
	client := NewClient(resolverMock{err: destinations.ErrUnknownDestination})

	before := testutil.ToFloat64(queriesTotal.WithLabelValues("Nowhere", "Regions", "failure"))

	_, err := client.Execute(context.Background(), regionsQuery, "Nowhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, destinations.ErrUnknownDestination)

	var qe *QueryError
	assert.True(t, errors.As(err, &qe))

	after := testutil.ToFloat64(queriesTotal.WithLabelValues("Nowhere", "Regions", "failure"))
	assert.Equal(t, before+1, after)
}

func TestExecute_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(resolverMock{dest: &destinations.Destination{URL: url}})

	_, err := client.Execute(context.Background(), regionsQuery, "Northwind")
	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, 0, qe.Status)
}
