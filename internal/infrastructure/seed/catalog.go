package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

//go:embed data/*.json
var files embed.FS

// Catalog is the baseline dataset shipped with the service. It is never
// written to.
type Catalog struct {
	Requisites []domain.Requisite
	Banks      []domain.Bank
	Users      []domain.User
	Orders     []domain.Order
}

func Load() (*Catalog, error) {
	var c Catalog
	if err := decode("data/requisites.json", &c.Requisites); err != nil {
		return nil, err
	}
	if err := decode("data/banks.json", &c.Banks); err != nil {
		return nil, err
	}
	if err := decode("data/users.json", &c.Users); err != nil {
		return nil, err
	}
	if err := decode("data/orders.json", &c.Orders); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(name string, dst any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode seed %s: %w", name, err)
	}
	return nil
}
