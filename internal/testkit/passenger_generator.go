package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// PassengerGeneratorConfig configures the synthetic passenger generator
type PassengerGeneratorConfig struct {
	Rows             int     `json:"rows"`
	Seed             int64   `json:"seed"`
	MissingAgeRate   float64 `json:"missing_age_rate"`
	MissingCabinRate float64 `json:"missing_cabin_rate"`
	MissingPortRate  float64 `json:"missing_port_rate"`
}

// DefaultPassengerConfig returns a small, Titanic-shaped dataset config
func DefaultPassengerConfig() PassengerGeneratorConfig {
	return PassengerGeneratorConfig{
		Rows:             120,
		Seed:             42,
		MissingAgeRate:   0.2,
		MissingCabinRate: 0.77,
		MissingPortRate:  0.02,
	}
}

// PassengerGenerator produces deterministic passenger CSV data with the
// survival patterns of the real manifest: women and upper classes survive
// more often, and fares rise with class.
type PassengerGenerator struct {
	config PassengerGeneratorConfig
	rng    *rand.Rand
}

// NewPassengerGenerator creates a new generator
func NewPassengerGenerator(config PassengerGeneratorConfig) *PassengerGenerator {
	return &PassengerGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateCSV renders the synthetic dataset as CSV text
func (g *PassengerGenerator) GenerateCSV() string {
	var b strings.Builder
	b.WriteString(PassengerHeader)
	b.WriteByte('\n')

	ports := []string{"S", "S", "S", "C", "Q"}
	for i := 1; i <= g.config.Rows; i++ {
		pclass := 1 + g.rng.Intn(3)
		sex := "male"
		if g.rng.Float64() < 0.36 {
			sex = "female"
		}

		pSurvive := 0.19
		if sex == "female" {
			pSurvive = 0.74
		}
		pSurvive += 0.1 * float64(2-pclass)
		survived := 0
		if g.rng.Float64() < pSurvive {
			survived = 1
		}
		// The first eight rows cover every sex/outcome combination twice.
		if i <= 8 {
			survived = i % 2
			if i <= 4 {
				sex = "female"
			} else {
				sex = "male"
			}
		}

		age := ""
		if i <= 8 || g.rng.Float64() >= g.config.MissingAgeRate {
			age = strconv.FormatFloat(math.Round(math.Max(1, 30+14*g.rng.NormFloat64())), 'f', -1, 64)
		}

		fare := math.Round((90/float64(pclass*pclass)+8*g.rng.ExpFloat64())*10000) / 10000

		cabin := ""
		if g.rng.Float64() >= g.config.MissingCabinRate {
			cabin = fmt.Sprintf("%c%d", 'A'+rune(g.rng.Intn(6)), 1+g.rng.Intn(120))
		}

		port := ports[g.rng.Intn(len(ports))]
		if g.rng.Float64() < g.config.MissingPortRate {
			port = ""
		}

		fmt.Fprintf(&b, "%d,%d,%d,\"Passenger, Mr. Number %d\",%s,%s,%d,%d,T%d,%s,%s,%s\n",
			i, survived, pclass, i, sex, age, g.rng.Intn(3), g.rng.Intn(3), 10000+i,
			strconv.FormatFloat(fare, 'f', -1, 64), cabin, port)
	}
	return b.String()
}
