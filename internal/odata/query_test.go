package odata

import (
	"net/url"
	"testing"

	"github.com/eatu-cf/odata-query-services/internal/destinations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCopiesElements(t *testing.T) {
	elements := []string{"RegionID", "RegionDescription"}
	q := WithEntity("/V2/Northwind/Northwind.svc", "Regions").Select(elements...)
	elements[0] = "changed"

	assert.Equal(t, []string{"RegionID", "RegionDescription"}, q.Elements)
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/V2/Northwind/Northwind.svc/Regions",
		WithEntity("V2/Northwind/Northwind.svc/", "Regions").ResourcePath())
}

func TestURL(t *testing.T) {
	q := WithEntity("/sap/opu/odata/sap/ERP_UTILITIES_UMC", "Contracts").
		Select("ContractID", "Description")

	raw, err := q.URL(&destinations.Destination{URL: "https://erp.example.com:44300?extra=1", SAPClient: "200"})
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "erp.example.com:44300", u.Host)
	assert.Equal(t, "/sap/opu/odata/sap/ERP_UTILITIES_UMC/Contracts", u.Path)
	assert.Equal(t, "ContractID,Description", u.Query().Get("$select"))
	assert.Equal(t, "200", u.Query().Get("sap-client"))
	assert.Equal(t, "1", u.Query().Get("extra"))
	assert.False(t, u.Query().Has("sap-language"))
}

func TestURL_Invalid(t *testing.T) {
	_, err := WithEntity("/svc", "Set").URL(&destinations.Destination{URL: "://bad"})
	assert.Error(t, err)
}
