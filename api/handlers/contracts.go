package handlers

import (
	"net/http"

	"github.com/eatu-cf/odata-query-services/api/services"
)

// GetContracts godoc
// @Summary Query ERP contracts
// @Description Runs a Contracts query against the ErpQueryEndpoint destination.
// @Tags contracts
// @Produce json
// @Param ContractID query string false "Contract ID" default(001)
// @Param ContractAccountID query string false "Contract account ID" default(001a)
// @Success 200 {object} models.ContractDetail
// @Failure 400 {object} models.ContractDetail
// @Router /contracts [get]
func GetContracts(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetContractsService(svc, w, r)
	}
}
