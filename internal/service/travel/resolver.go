package travel

import (
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
)

const (
	// IntraRegionMinutes is the repositioning time inside a single region.
	IntraRegionMinutes = 10
	// MetroFallbackMinutes applies to unmapped pairs of metro regions.
	MetroFallbackMinutes = 60
	// OutlyingFallbackMinutes applies to unmapped pairs touching an outlying region.
	OutlyingFallbackMinutes = 95
)

// Corridor is a known, undirected route between two regions.
type Corridor struct {
	A       region.Region `json:"origin"`
	B       region.Region `json:"destination"`
	Minutes int           `json:"minutes"`
}

var corridors = []Corridor{
	// Plano Piloto base
	{region.PlanoPiloto, region.Taguatinga, 40},
	{region.PlanoPiloto, region.Ceilandia, 50},
	{region.PlanoPiloto, region.AguasClaras, 35},
	{region.PlanoPiloto, region.Guara, 20},
	{region.PlanoPiloto, region.Gama, 45},
	{region.PlanoPiloto, region.Samambaia, 45},
	{region.PlanoPiloto, region.Sobradinho, 30},
	{region.PlanoPiloto, region.PlanaltinaDF, 55},

	// Goiás surroundings
	{region.PlanoPiloto, region.Valparaiso, 50},
	{region.PlanoPiloto, region.CidadeOcidental, 65},
	{region.PlanoPiloto, region.Luziania, 85},
	{region.PlanoPiloto, region.AguasLindas, 75},
	{region.PlanoPiloto, region.NovoGama, 60},
	{region.PlanoPiloto, region.Formosa, 95},
	{region.PlanoPiloto, region.PlanaltinaGO, 80},
	{region.PlanoPiloto, region.Cristalina, 140},

	// Inter-regional
	{region.Taguatinga, region.Ceilandia, 15},
	{region.Taguatinga, region.Samambaia, 20},
	{region.Gama, region.SantaMaria, 15},
	{region.Valparaiso, region.Luziania, 35},
	{region.AguasClaras, region.Taguatinga, 15},
	{region.VicentePires, region.Taguatinga, 10},
}

type pairKey struct{ a, b region.Region }

func key(a, b region.Region) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

var corridorIndex = func() map[pairKey]int {
	m := make(map[pairKey]int, len(corridors))
	for _, c := range corridors {
		m[key(c.A, c.B)] = c.Minutes
	}
	return m
}()

// ResolveTravelMinutes returns the expected travel time between two regions.
// It is total: every pair yields a value.
func ResolveTravelMinutes(origin, destination region.Region) int {
	if origin == destination {
		return IntraRegionMinutes
	}

	if minutes, ok := corridorIndex[key(origin, destination)]; ok {
		return minutes
	}

	if origin.IsMetro() && destination.IsMetro() {
		return MetroFallbackMinutes
	}
	return OutlyingFallbackMinutes
}

// Corridors returns a copy of the explicit route table.
func Corridors() []Corridor {
	out := make([]Corridor, len(corridors))
	copy(out, corridors)
	return out
}

// RegionTravel is the travel time from a guard's home to one authorized region.
type RegionTravel struct {
	Region   region.Region `json:"region"`
	Minutes  int           `json:"minutes"`
	Exceeded bool          `json:"exceeded"`
}

// CoverageAssessment summarizes travel times from a home region to a set of
// authorized regions against a limit.
type CoverageAssessment struct {
	Home       region.Region  `json:"home"`
	Limit      int            `json:"limit_minutes"`
	Regions    []RegionTravel `json:"regions"`
	Violations []RegionTravel `json:"violations"`
}

func (c CoverageAssessment) HasViolation() bool {
	return len(c.Violations) > 0
}

// AssessCoverage computes travel times from home to each authorized region and
// flags those strictly above limit.
func AssessCoverage(home region.Region, authorized []region.Region, limit int) CoverageAssessment {
	assessment := CoverageAssessment{
		Home:       home,
		Limit:      limit,
		Regions:    make([]RegionTravel, 0, len(authorized)),
		Violations: []RegionTravel{},
	}
	for _, r := range authorized {
		minutes := ResolveTravelMinutes(home, r)
		rt := RegionTravel{Region: r, Minutes: minutes, Exceeded: minutes > limit}
		assessment.Regions = append(assessment.Regions, rt)
		if rt.Exceeded {
			assessment.Violations = append(assessment.Violations, rt)
		}
	}
	return assessment
}
