package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
)

type slotsOptions struct {
	salonID   string
	stylistID string
	serviceID string
	date      string
	duration  int
	asJSON    bool
}

func newSlotsCmd(configPath *string) *cobra.Command {
	var opts slotsOptions

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Показать свободное время мастера (или всех мастеров салона) на дату",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(cmd.Context(), cmd.OutOrStdout(), *configPath, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.salonID, "salon", "", "ID салона")
	cmd.Flags().StringVar(&opts.stylistID, "stylist", "", "ID мастера (пусто - все активные мастера)")
	cmd.Flags().StringVar(&opts.serviceID, "service", "", "ID услуги, длительность берется из нее")
	cmd.Flags().StringVar(&opts.date, "date", "", "дата в формате YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.duration, "duration", 0, "длительность в минутах без услуги (по умолчанию 60)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "вывод в JSON")

	_ = cmd.MarkFlagRequired("salon")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// toRequest разбирает флаги в запрос use case без мастера
func (o *slotsOptions) toRequest() (*getAvailableSlotsUC.Request, error) {
	salonID, err := uuid.Parse(o.salonID)
	if err != nil {
		return nil, fmt.Errorf("invalid --salon: %w", err)
	}

	date, err := handlers.ParseDate(o.date)
	if err != nil {
		return nil, fmt.Errorf("invalid --date: %w", err)
	}

	req := &getAvailableSlotsUC.Request{
		SalonID:         salonID,
		DurationMinutes: o.duration,
		Date:            date,
	}

	if o.serviceID != "" {
		serviceID, err := uuid.Parse(o.serviceID)
		if err != nil {
			return nil, fmt.Errorf("invalid --service: %w", err)
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}

func runSlots(ctx context.Context, out io.Writer, configPath string, opts *slotsOptions) error {
	base, err := opts.toRequest()
	if err != nil {
		return err
	}

	a, err := newApp(configPath, false)
	if err != nil {
		return err
	}
	defer a.close()

	useCase := getAvailableSlotsUC.NewUseCase(a.catalogRepo, a.constraints, nil, a.cfg.Availability.DefaultServiceDuration, a.log)

	stylists, err := resolveStylists(ctx, a, base.SalonID, opts.stylistID)
	if err != nil {
		return err
	}

	results := make([]*getAvailableSlotsHandler.AvailableSlotsResponse, 0, len(stylists))
	for _, stylist := range stylists {
		req := *base
		req.StylistID = stylist.ID

		resp, err := useCase.Execute(ctx, &req)
		if err != nil {
			return fmt.Errorf("stylist %s: %w", stylist.ID, err)
		}

		if opts.asJSON {
			results = append(results, getAvailableSlotsHandler.FromUseCaseResponse(resp))
			continue
		}
		writeSlotsText(out, stylistLabel(stylist), resp)
	}

	if opts.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	return nil
}

// resolveStylists возвращает указанного мастера или всех активных мастеров салона
func resolveStylists(ctx context.Context, a *app, salonID uuid.UUID, rawStylistID string) ([]*domain.Stylist, error) {
	if rawStylistID == "" {
		stylists, err := a.catalogRepo.ListStylists(ctx, salonID)
		if err != nil {
			return nil, fmt.Errorf("failed to list stylists: %w", err)
		}
		return stylists, nil
	}

	stylistID, err := uuid.Parse(rawStylistID)
	if err != nil {
		return nil, fmt.Errorf("invalid --stylist: %w", err)
	}

	// активность мастера проверит use case
	stylist, err := a.catalogRepo.GetStylist(ctx, salonID, stylistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stylist %s: %w", stylistID, err)
	}
	return []*domain.Stylist{stylist}, nil
}

func stylistLabel(s *domain.Stylist) string {
	if s.FullName == "" {
		return s.ID.String()
	}
	return fmt.Sprintf("%s (%s)", s.FullName, s.ID)
}

// writeSlotsText печатает слоты мастера одной строкой
func writeSlotsText(w io.Writer, label string, resp *getAvailableSlotsUC.Response) {
	if len(resp.Slots) == 0 {
		fmt.Fprintf(w, "%s, %s: нет свободного времени\n", label, resp.Date.Format(domain.DateFormat))
		return
	}

	fmt.Fprintf(w, "%s, %s, %d мин: %s\n",
		label,
		resp.Date.Format(domain.DateFormat),
		resp.DurationMinutes,
		strings.Join(availability.FormatSlots(resp.Slots), " "),
	)
}
