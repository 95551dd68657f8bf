package models

import "github.com/eatu-cf/odata-query-services/internal/odata"

// ContractDetail is a row of the Contracts entity set of the ERP utilities
// service.
type ContractDetail struct {
	ContractID        string `json:"ContractID"`
	ContractAccountID string `json:"ContractAccountID"`
	DivisionID        string `json:"DivisionID"`
	PremiseID         string `json:"PremiseID"`
	Description       string `json:"Description"`
}

// ContractDetailElements maps ContractDetail fields to Contracts properties.
var ContractDetailElements = odata.Mapping[ContractDetail]{
	odata.StringElement("ContractID", func(c *ContractDetail) *string { return &c.ContractID }),
	odata.StringElement("ContractAccountID", func(c *ContractDetail) *string { return &c.ContractAccountID }),
	odata.StringElement("DivisionID", func(c *ContractDetail) *string { return &c.DivisionID }),
	odata.StringElement("PremiseID", func(c *ContractDetail) *string { return &c.PremiseID }),
	odata.StringElement("Description", func(c *ContractDetail) *string { return &c.Description }),
}
