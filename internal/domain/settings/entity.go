package settings

// Weights holds one coefficient per additive ranking term.
type Weights struct {
	Compliance       float64 `json:"compliance"`
	RegionMatch      float64 `json:"region_match"`
	OvertimeHeadroom float64 `json:"overtime_headroom"`
	Fatigue          float64 `json:"fatigue"`
	NightAptitude    float64 `json:"night_aptitude"`
}

// DefaultWeights keeps compliance dominant over every other term.
var DefaultWeights = Weights{
	Compliance:       1000,
	RegionMatch:      500,
	OvertimeHeadroom: 10,
	Fatigue:          50,
	NightAptitude:    300,
}

// Config is the process-wide set of operational tunables.
type Config struct {
	MaxTravelMinutes       float64 `json:"max_travel_minutes"`
	MonthlyOvertimeCeiling float64 `json:"monthly_overtime_ceiling"`
	FatigueWeight          float64 `json:"fatigue_weight"`
	NightFatigueWeight     float64 `json:"night_fatigue_weight"`
	MinRestHours           float64 `json:"min_rest_hours"`
	ResponseSLAMinutes     float64 `json:"response_sla_minutes"`
	Weights                Weights `json:"weights"`
}

func DefaultConfig() Config {
	return Config{
		MaxTravelMinutes:       80,
		MonthlyOvertimeCeiling: 60,
		FatigueWeight:          0.5,
		NightFatigueWeight:     1.5,
		MinRestHours:           11,
		ResponseSLAMinutes:     15,
		Weights:                DefaultWeights,
	}
}

// Param names a single tunable in Config.
type Param string

const (
	ParamMaxTravelMinutes       Param = "max_travel_minutes"
	ParamMonthlyOvertimeCeiling Param = "monthly_overtime_ceiling"
	ParamFatigueWeight          Param = "fatigue_weight"
	ParamNightFatigueWeight     Param = "night_fatigue_weight"
	ParamMinRestHours           Param = "min_rest_hours"
	ParamResponseSLAMinutes     Param = "response_sla_minutes"
	ParamWeightCompliance       Param = "weight_compliance"
	ParamWeightRegionMatch      Param = "weight_region_match"
	ParamWeightOvertimeHeadroom Param = "weight_overtime_headroom"
	ParamWeightFatigue          Param = "weight_fatigue"
	ParamWeightNightAptitude    Param = "weight_night_aptitude"
)

// field returns a pointer to the value a Param addresses, or nil.
func (c *Config) field(p Param) *float64 {
	switch p {
	case ParamMaxTravelMinutes:
		return &c.MaxTravelMinutes
	case ParamMonthlyOvertimeCeiling:
		return &c.MonthlyOvertimeCeiling
	case ParamFatigueWeight:
		return &c.FatigueWeight
	case ParamNightFatigueWeight:
		return &c.NightFatigueWeight
	case ParamMinRestHours:
		return &c.MinRestHours
	case ParamResponseSLAMinutes:
		return &c.ResponseSLAMinutes
	case ParamWeightCompliance:
		return &c.Weights.Compliance
	case ParamWeightRegionMatch:
		return &c.Weights.RegionMatch
	case ParamWeightOvertimeHeadroom:
		return &c.Weights.OvertimeHeadroom
	case ParamWeightFatigue:
		return &c.Weights.Fatigue
	case ParamWeightNightAptitude:
		return &c.Weights.NightAptitude
	}
	return nil
}

func (p Param) Valid() bool {
	var c Config
	return c.field(p) != nil
}

// Value reads a tunable by name.
func (c Config) Value(p Param) (float64, error) {
	ptr := c.field(p)
	if ptr == nil {
		return 0, ErrUnknownParameter
	}
	return *ptr, nil
}

// Set writes a tunable by name. Ranges are not checked.
func (c *Config) Set(p Param, v float64) error {
	ptr := c.field(p)
	if ptr == nil {
		return ErrUnknownParameter
	}
	*ptr = v
	return nil
}

// TravelLimit is MaxTravelMinutes as whole minutes.
func (c Config) TravelLimit() int {
	return int(c.MaxTravelMinutes)
}
