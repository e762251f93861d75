package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/config"
	"github.com/m04kA/glowbook-gateway/internal/dashboard"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	createBookingUC "github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
	"github.com/m04kA/glowbook-gateway/pkg/metrics"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// EnvToken переменная окружения с bearer токеном клиента
const EnvToken = "GLOWBOOK_TOKEN"

func main() {
	var (
		configPath     = flag.String("config", "config.toml", "path to config.toml")
		dateStr        = flag.String("date", "", "appointment date, YYYY-MM-DD (default: tomorrow)")
		aestheticianID = flag.Int64("aesthetician", 0, "aesthetician ID")
		serviceID      = flag.Int64("service", 0, "service ID, required with -book")
		book           = flag.String("book", "", "book the slot starting at HH:MM")
		note           = flag.String("note", "", "note for the aesthetician")
		timeout        = flag.Duration("timeout", 15*time.Second, "overall timeout")
	)
	flag.Parse()

	token := os.Getenv(EnvToken)
	if token == "" {
		fmt.Fprintf(os.Stderr, "%s is not set\n", EnvToken)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	location, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load time zone: %v\n", err)
		os.Exit(1)
	}

	client := salonapi.NewClient(cfg.SalonAPI.URL, time.Duration(cfg.SalonAPI.Timeout)*time.Second, log)
	template := cfg.ScheduleTemplate()
	clock := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	page := dashboard.NewClientPage(
		token,
		getAvailableSlotsUC.NewUseCase(client, template, metrics.New(cfg.Metrics.ServiceName), clock, log),
		createBookingUC.NewUseCase(client, template, &createBookingUC.RealTimeProvider{Location: location}, log),
		template,
		clock,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, page, location, *dateStr, *aestheticianID, *serviceID, *book, *note); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	page *dashboard.ClientPage,
	location *time.Location,
	dateStr string,
	aestheticianID, serviceID int64,
	book, note string,
) error {
	date := page.MinBookableDate()
	if dateStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateStr, location)
		if err != nil {
			return fmt.Errorf("invalid -date %q, expected YYYY-MM-DD", dateStr)
		}
		date = parsed
	}

	if aestheticianID > 0 {
		if _, err := page.SelectAesthetician(ctx, &aestheticianID); err != nil {
			return err
		}
	}

	if _, err := page.SelectDate(ctx, date); err != nil {
		if errors.Is(err, dashboard.ErrDateTooEarly) {
			return fmt.Errorf("please select a date from %s onwards", page.MinBookableDate().Format(domain.DateFormat))
		}
		return err
	}

	slots, degraded := page.Slots()
	printSlots(date, slots, degraded)

	if book == "" {
		return nil
	}

	startTime, err := types.NewTimeStringFromString(book)
	if err != nil {
		return fmt.Errorf("invalid -book %q, expected HH:MM", book)
	}

	page.SelectService(serviceID)

	var notePtr *string
	if note != "" {
		notePtr = &note
	}

	created, err := page.Book(ctx, startTime, notePtr)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrIncompleteForm):
			return errors.New("-book requires -service and -aesthetician")
		case errors.Is(err, createBookingUC.ErrAlreadyBooked):
			return errors.New("you already have a booking for this date and time, please select a different time slot")
		case errors.Is(err, createBookingUC.ErrRejected):
			return errors.New(salonapi.UserMessage(err, "failed to create booking"))
		case errors.Is(err, createBookingUC.ErrUnauthorized):
			return errors.New("your session has expired or the token is invalid, please login again")
		default:
			return err
		}
	}

	fmt.Printf("Booked #%d on %s at %s (%s)\n",
		created.ID, domain.FormatDisplayDate(created.Date), domain.FormatDisplayTime(created.StartTime.String()), created.Status)
	return nil
}

func printSlots(date time.Time, slots []domain.TimeSlot, degraded bool) {
	fmt.Printf("Available slots for %s:\n", date.Format(domain.DateFormat))
	if len(slots) == 0 {
		fmt.Println("  no free slots")
	}
	for _, slot := range slots {
		fmt.Printf("  %s  %s\n", slot.Value, slot.Display)
	}
	if degraded {
		fmt.Println("  (bookings could not be loaded, some slots may already be taken)")
	}
}
