package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func newCatalogCmd(configPath *string) *cobra.Command {
	var salon string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Показать часы работы, мастеров и услуги салона",
		RunE: func(cmd *cobra.Command, args []string) error {
			salonID, err := uuid.Parse(salon)
			if err != nil {
				return fmt.Errorf("invalid --salon: %w", err)
			}
			return runCatalog(cmd.Context(), cmd.OutOrStdout(), *configPath, salonID)
		},
	}

	cmd.Flags().StringVar(&salon, "salon", "", "ID салона")
	_ = cmd.MarkFlagRequired("salon")

	return cmd
}

func runCatalog(ctx context.Context, out io.Writer, configPath string, salonID uuid.UUID) error {
	a, err := newApp(configPath, false)
	if err != nil {
		return err
	}
	defer a.close()

	hours, err := a.businessHours.Get(ctx, salonID)
	if err != nil {
		return err
	}

	stylists, err := a.catalogRepo.ListStylists(ctx, salonID)
	if err != nil {
		return fmt.Errorf("failed to list stylists: %w", err)
	}

	services, err := a.catalogRepo.ListServices(ctx, salonID)
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	fmt.Fprintf(out, "Часы работы (%s):\n%s\n\n", hours.Timezone, hours.Summary)
	return writeCatalog(out, stylists, services)
}

// writeCatalog печатает мастеров и услуги таблицами
func writeCatalog(out io.Writer, stylists []*domain.Stylist, services []*domain.Service) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "МАСТЕР\tID\tСПЕЦИАЛИЗАЦИЯ")
	for _, s := range stylists {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.FullName, s.ID, strings.Join(s.Specialties, ", "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "УСЛУГА\tID\tКАТЕГОРИЯ\tДЛИТЕЛЬНОСТЬ\tЦЕНА")
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d мин\t%.2f\n", s.Name, s.ID, s.Category, s.DurationMinutes, s.Price)
	}

	return tw.Flush()
}
