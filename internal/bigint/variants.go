package bigint

import (
	"strings"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// variant describes one entry of the closed engine set.
type variant struct {
	name        EngineName
	description string
	probe       func() error
	build       func() (Engine, error)
}

// variants is ordered by selection priority.
var variants = []variant{
	{
		name:        EngineGMP,
		description: "GNU MP via cgo (github.com/ncw/gmp)",
		probe:       probeGMP,
		build:       newGMPEngine,
	},
	{
		name:        EngineBig,
		description: "Go standard library math/big",
		probe:       func() error { return nil },
		build:       newBigEngine,
	},
}

// EngineInfo reports the identity and availability of one variant.
type EngineInfo struct {
	Name        EngineName
	Description string
	Priority    int
	Available   bool
	// Reason explains why the variant is unavailable. Empty when Available.
	Reason string
}

// Engines lists every known variant in priority order with its availability
// in the running process.
func Engines() []EngineInfo {
	return enginesWith(probeVariant)
}

func enginesWith(probe func(variant) error) []EngineInfo {
	infos := make([]EngineInfo, 0, len(variants))
	for i, v := range variants {
		info := EngineInfo{Name: v.name, Description: v.description, Priority: i + 1}
		if err := probe(v); err != nil {
			info.Reason = err.Error()
		} else {
			info.Available = true
		}
		infos = append(infos, info)
	}
	return infos
}

// Names returns the names of every known variant in priority order.
func Names() []EngineName {
	names := make([]EngineName, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

// Available returns the names of the variants usable in this process, in
// priority order.
func Available() []EngineName {
	var names []EngineName
	for _, info := range Engines() {
		if info.Available {
			names = append(names, info.Name)
		}
	}
	return names
}

// ParseEngineName matches name against the known variants, ignoring case and
// surrounding space.
func ParseEngineName(name string) (EngineName, bool) {
	candidate := EngineName(strings.ToLower(strings.TrimSpace(name)))
	for _, v := range variants {
		if v.name == candidate {
			return v.name, true
		}
	}
	return "", false
}

func probeVariant(v variant) error { return v.probe() }

// resolve picks the variant to bind. An empty preferred name selects the
// first available variant in priority order.
func resolve(preferred string, probe func(variant) error) (variant, error) {
	if strings.TrimSpace(preferred) == "" {
		for _, v := range variants {
			if probe(v) == nil {
				return v, nil
			}
		}
		return variant{}, apperrors.NewConfigError("no arbitrary-precision engine is available (tried %s)", joinNames(Names()))
	}

	name, ok := ParseEngineName(preferred)
	if !ok {
		return variant{}, apperrors.NewConfigError("unknown engine %q (known: %s)", preferred, joinNames(Names()))
	}
	for _, v := range variants {
		if v.name != name {
			continue
		}
		if err := probe(v); err != nil {
			return variant{}, apperrors.NewConfigError("engine %q is not available: %v", name, err)
		}
		return v, nil
	}
	return variant{}, apperrors.NewConfigError("unknown engine %q", preferred)
}

func joinNames(names []EngineName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
