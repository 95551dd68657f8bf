package handlers

import (
	"net/http"

	"github.com/eatu-cf/odata-query-services/api/services"
)

// GetRegions godoc
// @Summary Query Northwind regions
// @Description Runs a Regions query against the Northwind destination.
// @Tags regions
// @Produce json
// @Param RegionID query int false "Region ID" default(1)
// @Param RegionDescription query string false "Region description" default(Desc)
// @Success 200 {array} models.RegionDetail
// @Failure 400
// @Router /regions [get]
func GetRegions(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetRegionsService(svc, w, r)
	}
}
