package iso8583

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaConfig is the declarative, YAML-shaped form of a Family: a host
// that wants to describe a message family in a file rather than Go code
// loads one of these and turns it into a live Family with BuildFamily.
// The core engine never reads a SchemaConfig itself — config.go is an
// external collaborator, not a codec dependency.
type SchemaConfig struct {
	Name    string               `yaml:"name"`
	Layout  LayoutConfig         `yaml:"layout"`
	MTI     []MTIConfig          `yaml:"mti"`
	Fields  []FieldConfigEntry   `yaml:"fields"`
	Headers []HeaderConfigEntry  `yaml:"headers"`
	Aliases map[string]int       `yaml:"aliases"`
}

// LayoutConfig is the YAML form of Layout.
type LayoutConfig struct {
	HasHeader  bool   `yaml:"has_header"`
	BitmapMode string `yaml:"bitmap_mode"` // "hex" or "binary"
}

// MTIConfig declares one MTI code/name pair.
type MTIConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// FieldConfigEntry is the YAML form of a FieldDef.
type FieldConfigEntry struct {
	Number    int    `yaml:"number"`
	Name      string `yaml:"name"`
	Class     string `yaml:"class"`  // N, AN, ANS, B, BCD, HEX, or DATETIME:<layout>
	Length    string `yaml:"length"` // FIXED:<n>, LLVAR, LLLVAR, or VAR<digits>
	Mandatory bool   `yaml:"mandatory"`
}

// HeaderConfigEntry is the YAML form of a HeaderDef.
type HeaderConfigEntry struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Length string `yaml:"length"`
}

// LoadSchemaConfigFile reads and parses a YAML schema file.
func LoadSchemaConfigFile(path string) (*SchemaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iso8583: reading schema config %s: %w", path, err)
	}
	return LoadSchemaConfigBytes(data)
}

// LoadSchemaConfigBytes parses a YAML schema document.
func LoadSchemaConfigBytes(data []byte) (*SchemaConfig, error) {
	var cfg SchemaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("iso8583: parsing schema config: %w", err)
	}
	return &cfg, nil
}

// BuildFamily turns a SchemaConfig into a live Family.
func (cfg *SchemaConfig) BuildFamily() (*Family, error) {
	f := NewFamily(cfg.Name)

	layout := DefaultLayout()
	layout.HasHeader = cfg.Layout.HasHeader
	switch strings.ToLower(cfg.Layout.BitmapMode) {
	case "", "hex":
		layout.BitmapMode = BitmapHex
	case "binary":
		layout.BitmapMode = BitmapBinary
	default:
		return nil, fmt.Errorf("iso8583: unknown bitmap_mode %q", cfg.Layout.BitmapMode)
	}
	f.SetLayout(layout)

	for _, m := range cfg.MTI {
		if err := f.DeclareMTI(m.Code, m.Name); err != nil {
			return nil, err
		}
	}

	for _, fc := range cfg.Fields {
		class, err := parseClassSpec(fc.Class)
		if err != nil {
			return nil, fmt.Errorf("iso8583: field %d: %w", fc.Number, err)
		}
		length, err := parseLengthSpec(fc.Length)
		if err != nil {
			return nil, fmt.Errorf("iso8583: field %d: %w", fc.Number, err)
		}
		if err := f.DeclareField(&FieldDef{
			Number:    fc.Number,
			Name:      fc.Name,
			Codec:     NewCodec(class, length),
			Mandatory: fc.Mandatory,
		}); err != nil {
			return nil, err
		}
	}

	for _, hc := range cfg.Headers {
		class, err := parseClassSpec(hc.Class)
		if err != nil {
			return nil, fmt.Errorf("iso8583: header %q: %w", hc.Name, err)
		}
		length, err := parseLengthSpec(hc.Length)
		if err != nil {
			return nil, fmt.Errorf("iso8583: header %q: %w", hc.Name, err)
		}
		if err := f.DeclareHeader(&HeaderDef{Name: hc.Name, Codec: NewCodec(class, length)}); err != nil {
			return nil, err
		}
	}

	for alias, number := range cfg.Aliases {
		if err := f.DeclareAlias(alias, number); err != nil {
			return nil, err
		}
	}

	f.SetValidator(NewValidatorFromFamily(f))
	return f, nil
}

func parseClassSpec(spec string) (Class, error) {
	upper := strings.ToUpper(spec)
	switch {
	case upper == "N":
		return N(), nil
	case upper == "AN":
		return AN(), nil
	case upper == "ANS":
		return ANS(), nil
	case upper == "B":
		return B(), nil
	case upper == "BCD":
		return BCDClass(), nil
	case upper == "HEX":
		return HexClass(), nil
	case strings.HasPrefix(upper, "DATETIME:"):
		return DateTime(spec[len("DATETIME:"):]), nil
	default:
		return nil, fmt.Errorf("unknown content class %q", spec)
	}
}

func parseLengthSpec(spec string) (Length, error) {
	upper := strings.ToUpper(spec)
	switch {
	case upper == "LLVAR":
		return LLVar(), nil
	case upper == "LLLVAR":
		return LLLVar(), nil
	case strings.HasPrefix(upper, "FIXED:"):
		n, err := strconv.Atoi(spec[len("FIXED:"):])
		if err != nil {
			return nil, fmt.Errorf("invalid fixed width in %q: %w", spec, err)
		}
		return FixedLen(n), nil
	case strings.HasPrefix(upper, "VAR"):
		digits, err := strconv.Atoi(spec[len("VAR"):])
		if err != nil {
			return nil, fmt.Errorf("invalid digit count in %q: %w", spec, err)
		}
		return VarLen(digits), nil
	default:
		return nil, fmt.Errorf("unknown length discipline %q", spec)
	}
}
