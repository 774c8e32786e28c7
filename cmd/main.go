package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"health-assessment-service/cmd/bootstrap"
	"health-assessment-service/config"
	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	domainRepo "health-assessment-service/internal/domain/repository"
	"health-assessment-service/internal/repository"
	"health-assessment-service/internal/service"
	"health-assessment-service/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "health-assessment",
		Short: "Health assessment application service",
		// Running without a subcommand serves the API.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(doctorsCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(ctx)
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}

	// Run the application
	return app.Run()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the doctors table and seed the built-in catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.NewLogger(cfg.App)

			db, err := bootstrap.OpenDatabase(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
			return nil
		},
	}
}

func doctorsCmd() *cobra.Command {
	var (
		query  dto.DoctorListQuery
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Print the doctor directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.NewValidator().Check(&query); err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.NewLogger(cfg.App)
			log.SetOutput(cmd.ErrOrStderr())

			repo, closeRepo, err := doctorSource(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeRepo()

			doctors, err := service.NewDoctorDirectory(log, repo, service.Latency{}).ListDoctors(cmd.Context())
			if err != nil {
				return err
			}

			filtered := entity.FilterDoctors(doctors, converter.DoctorListQueryToFilter(&query))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(converter.DoctorsToResponses(filtered))
			}
			return printDoctors(cmd.OutOrStdout(), filtered)
		},
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "match name or specialty")
	cmd.Flags().StringVar(&query.Specialty, "specialty", "", "exact specialty")
	cmd.Flags().StringVar(&query.Availability, "availability", "", "virtual or inPerson")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func doctorSource(ctx context.Context, cfg *config.Config, log *logrus.Logger) (domainRepo.DoctorRepository, func(), error) {
	if cfg.Mock.DoctorSource != config.DoctorSourcePostgres {
		return repository.NewDoctorCatalogRepository(), func() {}, nil
	}

	db, err := bootstrap.OpenDatabase(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewDoctorRepository(db), func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}, nil
}

func printDoctors(out io.Writer, doctors []entity.Doctor) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSPECIALTY\tRATING\tEXPERIENCE\tFEE\tVIRTUAL\tIN PERSON")
	for _, d := range doctors {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d yrs\t$%s\t%t\t%t\n",
			d.Name, d.Specialty, d.Rating, d.Experience,
			d.ConsultationFee.StringFixed(2), d.Availability.Virtual, d.Availability.InPerson)
	}
	return tw.Flush()
}
