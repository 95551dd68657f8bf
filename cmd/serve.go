package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/eatu-cf/odata-query-services/api/handlers"
	"github.com/eatu-cf/odata-query-services/api/middleware"
	"github.com/eatu-cf/odata-query-services/api/services"
	docs "github.com/eatu-cf/odata-query-services/docs"
	"github.com/eatu-cf/odata-query-services/internal/appconfig"
	awsclient "github.com/eatu-cf/odata-query-services/internal/aws"
	"github.com/eatu-cf/odata-query-services/internal/destinations"
	"github.com/eatu-cf/odata-query-services/internal/odata"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title OData Query Services API
// @version v1
// @description REST endpoints forwarding queries to remote OData services.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		resolver, err := newResolver(cmd.Context(), appCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize destination resolver")
		}
		log.Info().Strs("destinations", resolver.Names()).Msg("Destinations configured")

		logger := log.Logger
		service := &services.Service{
			Config: appCfg,
			OData:  odata.NewClient(resolver),
			Log:    &logger,
		}

		r := newRouter(appCfg, service)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// newResolver builds the destination resolver, creating a Secrets Manager
// client only when a destination needs one.
func newResolver(ctx context.Context, cfg *appconfig.Config) (*destinations.Resolver, error) {
	if !cfg.UsesSecretsManager() {
		return destinations.NewResolver(cfg.Destinations, nil), nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	secrets, err := awsclient.NewSecretsManagerClient(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}
	log.Info().Str("region", cfg.AWS.Region).Msg("Reading destination credentials from AWS Secrets Manager")

	return destinations.NewResolver(cfg.Destinations, secrets), nil
}

func newRouter(cfg *appconfig.Config, service *services.Service) *mux.Router {
	r := mux.NewRouter()

	// Register the routes
	api := r.PathPrefix(cfg.BasePath).Subrouter()

	// Apply the middleware to the API routes
	api.Use(middleware.WithLogger(*service.Log))
	api.Use(middleware.Metrics)

	api.HandleFunc("/contracts", handlers.GetContracts(service)).Methods(http.MethodGet)
	api.HandleFunc("/regions", handlers.GetRegions(service)).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Docs
	if cfg.DocsPath != "" {
		docs.SwaggerInfo.Host = cfg.Host
		docs.SwaggerInfo.BasePath = cfg.BasePath
		r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)
	}

	return r
}
