package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankJSON []byte

//go:embed bank.schema.json
var bankSchemaJSON []byte

const bankSchemaURL = "schema://futureme/bank.schema.json"

// Bank holds the question bank and the category profiles.
type Bank struct {
	Questions []Question `json:"questions"`
	Profiles  []Profile  `json:"categories"`

	byID map[Category]*Profile
}

// b is the package-level bank singleton, loaded by init().
var b *Bank

func init() {
	bank, err := Parse(bankJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded bank is invalid: %v", err))
	}
	b = bank
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(bankSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(bankSchemaURL)
})

// Parse validates raw against the bank schema and the structural
// invariants, and returns the decoded bank.
func Parse(raw []byte) (*Bank, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := validateBank(&bank); err != nil {
		return nil, err
	}

	// Profiles are kept in declared category order regardless of file order.
	slices.SortFunc(bank.Profiles, func(x, y Profile) int {
		return x.ID.Index() - y.ID.Index()
	})
	bank.byID = make(map[Category]*Profile, len(bank.Profiles))
	for i := range bank.Profiles {
		bank.byID[bank.Profiles[i].ID] = &bank.Profiles[i]
	}

	return &bank, nil
}

// Lookup returns the profile for id from this bank.
func (bk *Bank) Lookup(id Category) (Profile, bool) {
	p, ok := bk.byID[id]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

// Questions returns the embedded question bank in order.
func Questions() []Question {
	return slices.Clone(b.Questions)
}

// Profiles returns every category profile in declared order.
func Profiles() []Profile {
	return slices.Clone(b.Profiles)
}

// Lookup returns the embedded profile for id.
func Lookup(id Category) (Profile, bool) {
	return b.Lookup(id)
}

// MustLookup returns the embedded profile for id and panics if id is not
// a declared category.
func MustLookup(id Category) Profile {
	p, ok := b.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown category %q", id))
	}
	return p
}
