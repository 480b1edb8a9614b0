// Package export renders a simulation run's raw event log for external
// consumers, one row per event.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/hotelops/simulator/internal/core/domain"
)

var csvHeader = []string{"day", "date", "event_type", "description", "amount", "guest_id", "room_id", "reservation_id"}

// WriteEventsCSV streams the event log as CSV, header first.
func WriteEventsCSV(w io.Writer, events []domain.SimulationEvent) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, event := range events {
		record := []string{
			strconv.Itoa(event.Day),
			event.Date.Format("2006-01-02"),
			string(event.Type),
			event.Description,
			strconv.FormatFloat(event.Amount, 'f', 2, 64),
			formatID(event.GuestID),
			formatID(event.RoomID),
			formatID(event.ReservationID),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
