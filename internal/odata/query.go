package odata

import (
	"net/url"
	"strings"

	"github.com/eatu-cf/odata-query-services/internal/destinations"
)

// Query is a read of a single entity set of an OData V2 service.
type Query struct {
	ServicePath string
	EntitySet   string
	Elements    []string
}

// WithEntity starts a query against entitySet of the service mounted at
// servicePath on a destination.
func WithEntity(servicePath, entitySet string) Query {
	return Query{ServicePath: servicePath, EntitySet: entitySet}
}

// Select returns a copy of q restricted to the given elements.
func (q Query) Select(elements ...string) Query {
	q.Elements = append([]string(nil), elements...)
	return q
}

// ResourcePath is the path of the entity set relative to the destination URL.
func (q Query) ResourcePath() string {
	return "/" + strings.Trim(q.ServicePath, "/") + "/" + q.EntitySet
}

// URL builds the request URL of q against dest.
func (q Query) URL(dest *destinations.Destination) (string, error) {
	u, err := url.Parse(dest.URL)
	if err != nil {
		return "", err
	}

	u.Path = strings.TrimRight(u.Path, "/") + q.ResourcePath()

	values := u.Query()
	if len(q.Elements) > 0 {
		values.Set("$select", strings.Join(q.Elements, ","))
	}
	values.Set("$format", "json")
	if dest.SAPClient != "" {
		values.Set("sap-client", dest.SAPClient)
	}
	if dest.SAPLanguage != "" {
		values.Set("sap-language", dest.SAPLanguage)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}
