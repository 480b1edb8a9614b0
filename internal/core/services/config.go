package services

// SimulationConfig parameterizes one simulation run. Values are plain
// probabilities in [0,1] unless noted; a run is fully determined by the
// config, the seed and the starting persisted state.
type SimulationConfig struct {
	NewReservationProbability float64 `yaml:"new_reservation_probability"`
	WalkInProbability         float64 `yaml:"walk_in_probability"`
	GroupBookingProbability   float64 `yaml:"group_booking_probability"`
	ExtendedStayProbability   float64 `yaml:"extended_stay_probability"`
	LoyaltyBookingProbability float64 `yaml:"loyalty_booking_probability"`
	SpecialRequestProbability float64 `yaml:"special_request_probability"`
	CancellationProbability   float64 `yaml:"cancellation_probability"`

	// Demand multipliers applied to the booking probabilities before the
	// draw, clamped to [0,1].
	WeekendMultiplier float64 `yaml:"weekend_multiplier"`
	SummerMultiplier  float64 `yaml:"summer_multiplier"`
	WinterMultiplier  float64 `yaml:"winter_multiplier"`

	LoyaltyDiscount float64 `yaml:"loyalty_discount"`

	// Verbose enables per-day progress logging during a run.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the documented default simulation parameters.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		NewReservationProbability: 0.5,
		WalkInProbability:         0.2,
		GroupBookingProbability:   0.15,
		ExtendedStayProbability:   0.2,
		LoyaltyBookingProbability: 0.3,
		SpecialRequestProbability: 0.25,
		CancellationProbability:   0.08,
		WeekendMultiplier:         1.5,
		SummerMultiplier:          1.2,
		WinterMultiplier:          0.9,
		LoyaltyDiscount:           0.10,
	}
}
