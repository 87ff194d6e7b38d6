package cellular

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/rdetools/gorde/physics"
)

// ReferenceRecord is one curated cell-size measurement. The table is loaded
// once and treated as ground truth by ValidatePrediction and the EXPERT
// validation cases.
type ReferenceRecord struct {
	Source           string  `json:"source"`
	Fuel             string  `json:"fuelType"`
	Pressure         float64 `json:"pressure"`         // [Pa]
	EquivalenceRatio float64 `json:"equivalenceRatio"`
	Temperature      float64 `json:"temperature"`      // [K]
	MeasuredCellSize float64 `json:"measuredCellSize"` // [m]
	Uncertainty      float64 `json:"uncertainty"`      // [m]
}

// Built-in measurements from published RDE and detonation-tube programs.
var defaultReferenceData = []ReferenceRecord{
	{"NASA_Glenn", "hydrogen", 101325, 1.0, 298, 0.001, 0.0002},
	{"NASA_Glenn", "hydrogen", 200000, 1.0, 298, 0.0007, 0.0001},
	{"Purdue_DRONE", "methane", 101325, 1.0, 298, 0.01, 0.002},
	{"Purdue_DRONE", "methane", 150000, 1.0, 298, 0.008, 0.0015},
	{"NRL", "propane", 101325, 1.0, 298, 0.02, 0.004},
}

// LoadReferenceData reads an external measurement table, replacing the
// built-in one. The file is a YAML list of ReferenceRecord.
func LoadReferenceData(path string) ([]ReferenceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference dataset: %w", err)
	}
	var records []ReferenceRecord
	if err = yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing reference dataset %s: %w", path, err)
	}
	return records, nil
}

func filterByFuel(records []ReferenceRecord, fuel physics.Fuel) (out []ReferenceRecord) {
	for _, rec := range records {
		if physics.ParseFuel(rec.Fuel) == fuel {
			out = append(out, rec)
		}
	}
	return
}
