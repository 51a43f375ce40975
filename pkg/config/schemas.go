package config

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// SchemaRegistry manages CUE schemas for document-level validation. The
// struct decoder already enforces the closed schema field by field; the CUE
// layer validates a raw parsed document as a whole, which is what the CLI's
// strict mode and external callers use before construction.
type SchemaRegistry struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
	mu      sync.RWMutex
}

// NewSchemaRegistry creates a registry with the built-in schemas.
func NewSchemaRegistry() *SchemaRegistry {
	sr := &SchemaRegistry{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
	sr.registerBuiltInSchemas()
	return sr
}

func (sr *SchemaRegistry) registerBuiltInSchemas() {
	sr.RegisterSchema("run", builtinRunSchema)
	sr.RegisterSchema("roi", builtinROISchema)
	sr.RegisterSchema("irf", builtinIRFSchema)
	sr.RegisterSchema("sky_position", builtinSkyPositionSchema)
	sr.RegisterSchema("energy_range", builtinEnergyRangeSchema)
}

// RegisterSchema compiles and registers a CUE schema under the given name.
func (sr *SchemaRegistry) RegisterSchema(name, schema string) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	val := sr.ctx.CompileString(schema)
	if err := val.Err(); err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	sr.schemas[name] = val
	return nil
}

// GetSchema retrieves a schema by name.
func (sr *SchemaRegistry) GetSchema(name string) (cue.Value, bool) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	val, ok := sr.schemas[name]
	return val, ok
}

// ListSchemas returns all registered schema names.
func (sr *SchemaRegistry) ListSchemas() []string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	names := make([]string, 0, len(sr.schemas))
	for name := range sr.schemas {
		names = append(names, name)
	}
	return names
}

// ValidateAgainstSchema validates data against a named schema by
// unification.
func (sr *SchemaRegistry) ValidateAgainstSchema(schemaName string, data interface{}) error {
	schema, ok := sr.GetSchema(schemaName)
	if !ok {
		return fmt.Errorf("schema %s not found", schemaName)
	}

	dataVal := sr.ctx.Encode(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#" + schemaTopLevel(schemaName)))
	if !def.Exists() {
		def = schema
	}
	unified := def.Unify(dataVal)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}
	return nil
}

// ValidateDocument validates a raw parsed document against the run schema.
func (sr *SchemaRegistry) ValidateDocument(data interface{}) error {
	return sr.ValidateAgainstSchema("run", data)
}

func schemaTopLevel(name string) string {
	switch name {
	case "run":
		return "Run"
	case "roi":
		return "ROI"
	case "irf":
		return "IRF"
	case "sky_position":
		return "SkyPosition"
	case "energy_range":
		return "EnergyRange"
	default:
		return name
	}
}

// Built-in schema definitions. Structs stay open where the Go decoder owns
// the full field set; the CUE layer pins types and value domains.

const builtinSkyPositionSchema = `
#SkyPosition: {
	frame?: "icrs" | "fk5" | "galactic"
	lon?:   string | number
	lat?:   string | number
}
`

const builtinEnergyRangeSchema = `
#EnergyRange: {
	min?: string | number
	max?: string | number
}
`

const builtinROISchema = builtinSkyPositionSchema + builtinEnergyRangeSchema + `
#ROI: {
	center?:       #SkyPosition
	width?:        string | number
	bin_size?:     number & >0
	energy_range?: #EnergyRange
	...
}
`

const builtinIRFSchema = builtinSkyPositionSchema + builtinEnergyRangeSchema + `
#IRF: {
	spectrum?: {
		center?:                 #SkyPosition
		radius?:                 string | number
		energy_range?:           #EnergyRange
		energy_groups?:          int & >=1
		energy_step?:            number & >0
		background_region_file?: string
		...
	}
	psf?: {
		pileup?:         bool
		readout_streak?: bool
		extended?:       bool
		minsize?:        int
		numiter?:        int & >=1
		blur?:           number & >0
		...
	}
}
`

const builtinRunSchema = builtinROISchema + builtinIRFSchema + `
#Run: {
	name?:          string
	sub_name?:      string
	path_data?:     string
	obs_ids?:       [...int]
	obs_id_ref?:    int
	roi?:           #ROI
	psf_simulator?: "marx" | "saotrace" | "file"
	irfs?:          {[string]: #IRF}
	ciao?:          {...}
	saotrace?:      {...}
}
`
