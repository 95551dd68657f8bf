package services

import (
	"net/http"

	"github.com/eatu-cf/odata-query-services/internal/odata"
	"github.com/eatu-cf/odata-query-services/models"
)

const RegionsDestination = "Northwind"

var RegionsQuery = odata.WithEntity("/V2/Northwind/Northwind.svc", "Regions").
	Select(models.RegionDetailElements.Names()...)

// GetRegionsService queries the Northwind Regions entity set and returns the
// rows in service order. Failures produce a 400 with no body.
func GetRegionsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := svc.Logger(r.Context()).With().
		Str("entity_set", RegionsQuery.EntitySet).
		Str("destination", RegionsDestination).Logger()

	params, err := ParseRegionParams(r)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid request parameters")
		WriteResponse(w, http.StatusBadRequest, nil)
		return
	}
	logger.Info().Int("RegionID", params.RegionID).
		Str("RegionDescription", params.RegionDescription).Msg("Querying regions")

	entities, err := svc.OData.Execute(r.Context(), RegionsQuery, RegionsDestination)
	if err != nil {
		logger.Error().Stack().Err(err).Msg("Query error")
		WriteResponse(w, http.StatusBadRequest, nil)
		return
	}

	regions, err := models.RegionDetailElements.Decode(entities)
	if err != nil {
		logger.Error().Stack().Err(err).Msg("Query error")
		WriteResponse(w, http.StatusBadRequest, nil)
		return
	}

	WriteResponse(w, http.StatusOK, regions)
}
