package services

import (
	"net/http"

	"github.com/eatu-cf/odata-query-services/internal/odata"
	"github.com/eatu-cf/odata-query-services/models"
)

const ContractsDestination = "ErpQueryEndpoint"

var ContractsQuery = odata.WithEntity("/sap/opu/odata/sap/ERP_UTILITIES_UMC", "Contracts").
	Select(models.ContractDetailElements.Names()...)

// GetContractsService queries the ERP Contracts entity set. The response body
// is always an empty ContractDetail; the fetched rows are decoded and dropped.
func GetContractsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := svc.Logger(r.Context()).With().
		Str("entity_set", ContractsQuery.EntitySet).
		Str("destination", ContractsDestination).Logger()

	params := ParseContractParams(r)
	logger.Info().Str("ContractID", params.ContractID).
		Str("ContractAccountID", params.ContractAccountID).Msg("Querying contracts")

	contract := models.ContractDetail{}

	entities, err := svc.OData.Execute(r.Context(), ContractsQuery, ContractsDestination)
	if err == nil {
		var contracts []models.ContractDetail
		if contracts, err = models.ContractDetailElements.Decode(entities); err == nil {
			logger.Debug().Int("count", len(contracts)).Msg("Contracts fetched")
		}
	}
	if err != nil {
		logger.Error().Stack().Err(err).Msg("Query error")
		WriteResponse(w, http.StatusBadRequest, contract)
		return
	}

	WriteResponse(w, http.StatusOK, contract)
}
