// Package mcp exposes the logbook over the Model Context Protocol so
// an AI assistant can record entries and read maintenance status. The
// bulk tool feeds the no-recurrence batch insert path used for
// assistant-extracted items.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

// Server wraps the MCP server with logbook-specific functionality.
type Server struct {
	server *mcp.Server
	dbCtx  *database.Context
}

// NewServer creates a new MCP server instance.
func NewServer() (*Server, error) {
	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "autolog",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		dbCtx:  dbCtx,
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autolog_list_vehicles",
		Description: "List the vehicles tracked in the logbook",
	}, s.handleListVehicles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autolog_list_entries",
		Description: "List maintenance and fuel entries for a vehicle",
	}, s.handleListEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autolog_log_entry",
		Description: "Record a single maintenance or fuel entry",
	}, s.handleLogEntry)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autolog_log_entries",
		Description: "Record multiple entries at once (e.g. items extracted from a receipt)",
	}, s.handleLogEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autolog_alerts",
		Description: "Derive the current maintenance alerts for a vehicle",
	}, s.handleAlerts)
}

// Input/Output types for each tool

type ListVehiclesInput struct{}

type VehicleOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Year     int    `json:"year,omitempty"`
	EngineCC int    `json:"engineCc,omitempty"`
}

type ListVehiclesOutput struct {
	Vehicles []VehicleOutput `json:"vehicles"`
}

type ListEntriesInput struct {
	Vehicle string `json:"vehicle" jsonschema:"required,description=Vehicle id or exact name"`
}

type ListEntriesOutput struct {
	Entries []logbook.Entry `json:"entries"`
}

type EntryInput struct {
	Date                   string   `json:"dateIso,omitempty" jsonschema:"description=Calendar date YYYY-MM-DD (today if omitted)"`
	OdometerKm             int      `json:"odometerKm" jsonschema:"required,description=Odometer reading in kilometers"`
	Categories             []string `json:"categories" jsonschema:"required,description=Category tags: Oil, Parts, Labour, Fuel, Other"`
	Description            string   `json:"description" jsonschema:"required,description=What was done"`
	Cost                   float64  `json:"cost,omitempty" jsonschema:"description=Cost in the base currency"`
	Liters                 *float64 `json:"liters,omitempty" jsonschema:"description=Fuel volume (fuel entries only)"`
	PricePerLiter          *float64 `json:"pricePerLiter,omitempty" jsonschema:"description=Fuel unit price (fuel entries only)"`
	RecurrenceIntervalDays *int     `json:"recurrenceIntervalDays,omitempty" jsonschema:"description=Repeat after this many days"`
	RecurrenceIntervalKm   *int     `json:"recurrenceIntervalKm,omitempty" jsonschema:"description=Repeat after this many kilometers"`
}

type LogEntryInput struct {
	Vehicle string     `json:"vehicle" jsonschema:"required,description=Vehicle id or exact name"`
	Entry   EntryInput `json:"entry" jsonschema:"required,description=The entry to record"`
}

type LogEntryOutput struct {
	Message string        `json:"message"`
	Entry   logbook.Entry `json:"entry"`
}

type LogEntriesInput struct {
	Vehicle string       `json:"vehicle" jsonschema:"required,description=Vehicle id or exact name"`
	Entries []EntryInput `json:"entries" jsonschema:"required,description=The entries to record"`
}

type LogEntriesOutput struct {
	Message string          `json:"message"`
	Entries []logbook.Entry `json:"entries"`
}

type AlertsInput struct {
	Vehicle    string `json:"vehicle" jsonschema:"required,description=Vehicle id or exact name"`
	OdometerKm *int   `json:"odometerKm,omitempty" jsonschema:"description=Reference odometer (latest logged reading if omitted)"`
}

type AlertsOutput struct {
	Alerts []logbook.Alert `json:"alerts"`
}

func toEntry(in EntryInput) logbook.Entry {
	e := logbook.Entry{
		Date:        in.Date,
		OdometerKm:  in.OdometerKm,
		Description: in.Description,
		Cost:        in.Cost,
		Status:      logbook.StatusLogged,
	}
	if e.Date == "" {
		e.Date = time.Now().Format(logbook.DateLayout)
	}
	for _, c := range in.Categories {
		e.Categories = append(e.Categories, logbook.Category(c))
	}
	if in.Liters != nil {
		e.Liters = *in.Liters
	}
	if in.PricePerLiter != nil {
		e.PricePerLiter = *in.PricePerLiter
	}
	if in.RecurrenceIntervalDays != nil || in.RecurrenceIntervalKm != nil {
		e.IsRecurring = true
		if in.RecurrenceIntervalDays != nil {
			e.RecurrenceIntervalDays = *in.RecurrenceIntervalDays
		}
		if in.RecurrenceIntervalKm != nil {
			e.RecurrenceIntervalKm = *in.RecurrenceIntervalKm
		}
	}
	return e
}

// Tool handlers

func (s *Server) handleListVehicles(ctx context.Context, req *mcp.CallToolRequest, input ListVehiclesInput) (*mcp.CallToolResult, ListVehiclesOutput, error) {
	uc := usecase.NewLogbook(s.dbCtx)
	store, err := uc.Open(ctx)
	if err != nil {
		return nil, ListVehiclesOutput{}, fmt.Errorf("failed to open logbook: %w", err)
	}

	vehicles := store.Vehicles()
	out := make([]VehicleOutput, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleOutput{ID: v.ID, Name: v.Name, Year: v.Year, EngineCC: v.EngineCC})
	}
	return nil, ListVehiclesOutput{Vehicles: out}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	uc := usecase.NewLogbook(s.dbCtx)
	store, err := uc.Open(ctx)
	if err != nil {
		return nil, ListEntriesOutput{}, fmt.Errorf("failed to open logbook: %w", err)
	}
	vehicle, err := usecase.ResolveVehicle(store, input.Vehicle)
	if err != nil {
		return nil, ListEntriesOutput{}, fmt.Errorf("failed to resolve vehicle: %w", err)
	}
	return nil, ListEntriesOutput{Entries: store.VehicleEntries(vehicle.ID)}, nil
}

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input LogEntryInput) (*mcp.CallToolResult, LogEntryOutput, error) {
	uc := usecase.NewLogbook(s.dbCtx)

	var added logbook.Entry
	err := uc.Mutate(ctx, func(store *logbook.Store) error {
		vehicle, err := usecase.ResolveVehicle(store, input.Vehicle)
		if err != nil {
			return err
		}
		e := toEntry(input.Entry)
		e.VehicleID = vehicle.ID
		added, err = store.AddEntry(e)
		return err
	})
	if err != nil {
		return nil, LogEntryOutput{}, fmt.Errorf("failed to log entry: %w", err)
	}

	return nil, LogEntryOutput{
		Message: fmt.Sprintf("Logged entry %d", added.ID),
		Entry:   added,
	}, nil
}

func (s *Server) handleLogEntries(ctx context.Context, req *mcp.CallToolRequest, input LogEntriesInput) (*mcp.CallToolResult, LogEntriesOutput, error) {
	uc := usecase.NewLogbook(s.dbCtx)

	var added []logbook.Entry
	err := uc.Mutate(ctx, func(store *logbook.Store) error {
		vehicle, err := usecase.ResolveVehicle(store, input.Vehicle)
		if err != nil {
			return err
		}
		entries := make([]logbook.Entry, 0, len(input.Entries))
		for _, in := range input.Entries {
			entries = append(entries, toEntry(in))
		}
		added, err = store.AddEntries(vehicle.ID, entries)
		return err
	})
	if err != nil {
		return nil, LogEntriesOutput{}, fmt.Errorf("failed to log entries: %w", err)
	}

	return nil, LogEntriesOutput{
		Message: fmt.Sprintf("Logged %d entries", len(added)),
		Entries: added,
	}, nil
}

func (s *Server) handleAlerts(ctx context.Context, req *mcp.CallToolRequest, input AlertsInput) (*mcp.CallToolResult, AlertsOutput, error) {
	uc := usecase.NewLogbook(s.dbCtx)
	result, err := uc.Alerts(ctx, input.Vehicle, input.OdometerKm, time.Now())
	if err != nil {
		return nil, AlertsOutput{}, fmt.Errorf("failed to derive alerts: %w", err)
	}
	logbook.SortAlertsBySeverity(result.Alerts)
	return nil, AlertsOutput{Alerts: result.Alerts}, nil
}
