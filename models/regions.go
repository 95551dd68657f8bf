package models

import "github.com/eatu-cf/odata-query-services/internal/odata"

// RegionDetail is a row of the Northwind Regions entity set.
type RegionDetail struct {
	RegionID          int    `json:"RegionID"`
	RegionDescription string `json:"RegionDescription"`
}

var RegionDetailElements = odata.Mapping[RegionDetail]{
	odata.IntElement("RegionID", func(r *RegionDetail) *int { return &r.RegionID }),
	odata.StringElement("RegionDescription", func(r *RegionDetail) *string { return &r.RegionDescription }),
}
