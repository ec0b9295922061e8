package holdings

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"PortfolioLens/internal/model"
)

// lotFile is the on-disk YAML shape for a holdings file.
type lotFile struct {
	Lots []struct {
		Portfolio     string  `yaml:"portfolio"`
		Security      string  `yaml:"security"`
		PurchaseDate  string  `yaml:"purchase_date"`
		Quantity      int     `yaml:"quantity"`
		PurchasePrice float64 `yaml:"purchase_price"`
		Sector        string  `yaml:"sector"`
	} `yaml:"lots"`
}

// LoadLots reads lots from a YAML file. Dates use the 2006-01-02 layout.
// The same validation applies as for the built-in dataset.
func LoadLots(path string) ([]model.Lot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holdings file: %w", err)
	}
	var file lotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse holdings file: %w", err)
	}
	lots := make([]model.Lot, len(file.Lots))
	for i, raw := range file.Lots {
		d, err := time.Parse("2006-01-02", raw.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("lot %d (%s/%s): bad purchase_date %q: %w", i, raw.Portfolio, raw.Security, raw.PurchaseDate, err)
		}
		lots[i] = model.Lot{
			Portfolio:     raw.Portfolio,
			Security:      raw.Security,
			PurchaseDate:  d,
			Quantity:      raw.Quantity,
			PurchasePrice: raw.PurchasePrice,
			Sector:        raw.Sector,
		}
	}
	if err := validateLots(lots); err != nil {
		return nil, err
	}
	return lots, nil
}
