package services

import (
	"github.com/hotelops/simulator/internal/core/domain"
)

// Aggregate post-processes a run's event log into the result summary.
// Pure and deterministic: the input slice is not mutated and calling it
// twice on the same log yields identical results.
//
// Revenue counts exactly the money the lifecycle collected: check-out
// payments plus special-request charges minus cancellation refunds.
// Booking event amounts are booked value, not collected revenue.
func Aggregate(events []domain.SimulationEvent, days int, totalRooms int) *domain.SimulationResult {
	result := &domain.SimulationResult{
		TotalDays:     days,
		TotalRooms:    totalRooms,
		EventCounts:   make(map[domain.EventType]int),
		RevenueByType: make(map[domain.EventType]float64),
		Events:        events,
	}

	stayNightsSum := 0
	stayCount := 0

	for _, event := range events {
		result.EventCounts[event.Type]++

		switch event.Type {
		case domain.EventCheckOut, domain.EventSpecialRequest:
			result.TotalRevenue += event.Amount
			result.RevenueByType[event.Type] += event.Amount
		case domain.EventCancellation:
			result.TotalRevenue -= event.Amount
			result.RevenueByType[event.Type] -= event.Amount
		}

		if event.Type.IsBooking() {
			result.TotalGuests += guestsForBooking(event)
			result.TotalReservations += event.Rooms
			stayNightsSum += event.Nights * event.Rooms
			stayCount += event.Rooms
		}
	}

	if stayCount > 0 {
		result.AverageStayNights = float64(stayNightsSum) / float64(stayCount)
	}

	cancellations := result.EventCounts[domain.EventCancellation]
	checkIns := result.EventCounts[domain.EventCheckIn]
	if cancellations+checkIns > 0 {
		result.CancellationRate = float64(cancellations) / float64(cancellations+checkIns)
	}

	if days > 0 {
		result.RevenuePerDay = result.TotalRevenue / float64(days)
		result.GuestsPerDay = float64(result.TotalGuests) / float64(days)
	}

	result.BusiestDay, result.SlowestDay = extremeDays(events, days)
	result.AverageOccupancy = averageOccupancy(events, days, totalRooms)

	if totalRooms > 0 && days > 0 {
		result.RevPAR = result.TotalRevenue / float64(totalRooms*days)
	}

	return result
}

// guestsForBooking weights group bookings by their room count; every
// other booking brings one guest.
func guestsForBooking(event domain.SimulationEvent) int {
	if event.Type == domain.EventGroupBooking {
		return event.Rooms
	}
	return 1
}

// extremeDays returns the day indices with the most and fewest events.
// Days without any events count as zero; ties resolve to the earliest day.
func extremeDays(events []domain.SimulationEvent, days int) (busiest, slowest int) {
	if days <= 0 {
		return 0, 0
	}

	perDay := make([]int, days+1)
	for _, event := range events {
		if event.Day >= 1 && event.Day <= days {
			perDay[event.Day]++
		}
	}

	busiest, slowest = 1, 1
	for day := 2; day <= days; day++ {
		if perDay[day] > perDay[busiest] {
			busiest = day
		}
		if perDay[day] < perDay[slowest] {
			slowest = day
		}
	}

	return busiest, slowest
}

// averageOccupancy replays check-ins and check-outs to track how many
// rooms were occupied at the end of each simulated day, averaged over the
// run as a fraction of total rooms.
func averageOccupancy(events []domain.SimulationEvent, days int, totalRooms int) float64 {
	if days <= 0 || totalRooms <= 0 {
		return 0
	}

	arrivals := make([]int, days+1)
	departures := make([]int, days+1)
	for _, event := range events {
		if event.Day < 1 || event.Day > days {
			continue
		}
		switch event.Type {
		case domain.EventCheckIn:
			arrivals[event.Day]++
		case domain.EventCheckOut:
			departures[event.Day]++
		}
	}

	occupied := 0
	occupiedRoomDays := 0
	for day := 1; day <= days; day++ {
		occupied += arrivals[day] - departures[day]
		occupiedRoomDays += occupied
	}

	return float64(occupiedRoomDays) / float64(days*totalRooms)
}
