package services

import (
	"math/rand"
	"time"
)

// Decisions is one day's vector of independent event draws. A true value
// means the engine should attempt the event; whether it actually occurs
// still depends on eligible guests, reservations and rooms existing.
type Decisions struct {
	NewReservation bool
	WalkIn         bool
	GroupBooking   bool
	ExtendedStay   bool
	LoyaltyBooking bool
	SpecialRequest bool
	Cancellation   bool
}

// DecideDay draws the decision vector for one simulated day. Every
// category is drawn exactly once in a fixed order, so a given seed always
// consumes the random stream identically. Weekend and seasonal multipliers
// scale the five booking categories; operational events (special requests,
// cancellations) use their base probabilities.
func DecideDay(cfg SimulationConfig, date time.Time, rng *rand.Rand) Decisions {
	demand := demandMultiplier(cfg, date)

	return Decisions{
		NewReservation: rng.Float64() < clamp01(cfg.NewReservationProbability*demand),
		WalkIn:         rng.Float64() < clamp01(cfg.WalkInProbability*demand),
		GroupBooking:   rng.Float64() < clamp01(cfg.GroupBookingProbability*demand),
		ExtendedStay:   rng.Float64() < clamp01(cfg.ExtendedStayProbability*demand),
		LoyaltyBooking: rng.Float64() < clamp01(cfg.LoyaltyBookingProbability*demand),
		SpecialRequest: rng.Float64() < clamp01(cfg.SpecialRequestProbability),
		Cancellation:   rng.Float64() < clamp01(cfg.CancellationProbability),
	}
}

func demandMultiplier(cfg SimulationConfig, date time.Time) float64 {
	m := 1.0

	if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		m *= multiplierOrOne(cfg.WeekendMultiplier)
	}

	switch date.Month() {
	case time.June, time.July, time.August:
		m *= multiplierOrOne(cfg.SummerMultiplier)
	case time.December, time.January, time.February:
		m *= multiplierOrOne(cfg.WinterMultiplier)
	}

	return m
}

// multiplierOrOne treats an unset multiplier as neutral so a zero-valued
// config does not silence every booking category.
func multiplierOrOne(m float64) float64 {
	if m <= 0 {
		return 1.0
	}
	return m
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
