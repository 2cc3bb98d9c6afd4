package policy

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// InventoryPolicy holds the operator-facing sizing rules for the slot
// inventory. These are non-sensitive settings that customize application
// behavior without redeployment.
// Source: TOML configuration file, falling back to built-in defaults.
type InventoryPolicy struct {
	LotName  string `toml:"lot_name"`
	MinSlots int    `toml:"min_slots"`
	MaxSlots int    `toml:"max_slots"`
}

func Default() InventoryPolicy {
	return InventoryPolicy{
		LotName:  "Parking Lot",
		MinSlots: 4,
		MaxSlots: 36,
	}
}

// Load reads an inventory policy from a TOML file. Zero-valued fields keep
// their defaults. An empty path returns the defaults untouched.
func Load(path string) (InventoryPolicy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return InventoryPolicy{}, fmt.Errorf("failed to load inventory policy: %w", err)
	}
	if p.LotName == "" {
		p.LotName = Default().LotName
	}
	if err := p.Validate(); err != nil {
		return InventoryPolicy{}, err
	}
	return p, nil
}

func (p InventoryPolicy) Validate() error {
	if p.MinSlots < 1 {
		return fmt.Errorf("min_slots must be at least 1, got %d", p.MinSlots)
	}
	if p.MaxSlots < p.MinSlots {
		return fmt.Errorf("max_slots (%d) must not be below min_slots (%d)", p.MaxSlots, p.MinSlots)
	}
	return nil
}

// AllowsCount reports whether a requested inventory size is inside the
// policy bounds, inclusive on both ends.
func (p InventoryPolicy) AllowsCount(n int) bool {
	return n >= p.MinSlots && n <= p.MaxSlots
}
