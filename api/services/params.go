package services

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultContractID        = "001"
	DefaultContractAccountID = "001a"
	DefaultRegionID          = 1
	DefaultRegionDescription = "Desc"
)

// ContractParams are the query parameters of GET /contracts. They are
// accepted but not used to filter the remote query.
type ContractParams struct {
	ContractID        string
	ContractAccountID string
}

// RegionParams are the query parameters of GET /regions. They are accepted
// but not used to filter the remote query.
type RegionParams struct {
	RegionID          int
	RegionDescription string
}

// ParseContractParams reads ContractParams from r, applying defaults for
// missing or empty values.
func ParseContractParams(r *http.Request) ContractParams {
	q := r.URL.Query()
	return ContractParams{
		ContractID:        valueOrDefault(q, "ContractID", DefaultContractID),
		ContractAccountID: valueOrDefault(q, "ContractAccountID", DefaultContractAccountID),
	}
}

// ParseRegionParams reads RegionParams from r, applying defaults for missing
// or empty values. A RegionID that is not a 32-bit integer is an error.
func ParseRegionParams(r *http.Request) (RegionParams, error) {
	q := r.URL.Query()
	params := RegionParams{
		RegionID:          DefaultRegionID,
		RegionDescription: valueOrDefault(q, "RegionDescription", DefaultRegionDescription),
	}

	if raw := q.Get("RegionID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return params, fmt.Errorf("invalid RegionID %q: %w", raw, err)
		}
		params.RegionID = int(id)
	}

	return params, nil
}

func valueOrDefault(q url.Values, key, def string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return def
}
