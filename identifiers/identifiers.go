// Package identifiers provides a mechanism to support the validation and formatting
// of system/value tuples that act as identifiers (uniform resource identifiers).
//
// Packages that understand a particular identifier system register a validator and,
// optionally, a formatter for its URI; clients can then validate any identifier
// without knowing which package implements the rules.
package identifiers

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Identifier is a system/value tuple
type Identifier struct {
	System string
	Value  string
}

// System is a named identifier system
type System struct {
	Name string
	URI  string
}

// Validator checks whether a value is valid within an identifier system
type Validator func(value string) error

// Formatter returns a human-readable representation of a value
type Formatter func(value string) string

var (
	systemsMu    sync.RWMutex
	systems      = make(map[string]System)
	validatorsMu sync.RWMutex
	validators   = make(map[string]Validator)
	formattersMu sync.RWMutex
	formatters   = make(map[string]Formatter)
)

// ErrNoValidator is an error for when a validator is not registered for the specified URI
var ErrNoValidator = errors.New("no validator for uri")

// ErrNoFormatter is an error for when a formatter is not registered for the specified URI
var ErrNoFormatter = errors.New("no formatter for uri")

// Register registers an identifier system with the registry
func Register(name string, uri string) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[uri] = System{Name: name, URI: uri}
}

// RegisterValidator registers a handler to validate values for the system
func RegisterValidator(uri string, f Validator) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	if _, dup := validators[uri]; dup {
		panic("identifiers: register validator called twice for URI " + uri)
	}
	validators[uri] = f
}

// RegisterFormatter registers a handler to format values for the system
func RegisterFormatter(uri string, f Formatter) {
	formattersMu.Lock()
	defer formattersMu.Unlock()
	if _, dup := formatters[uri]; dup {
		panic("identifiers: register formatter called twice for URI " + uri)
	}
	formatters[uri] = f
}

// Validate checks the value of the identifier using the validator registered for its system
func Validate(id Identifier) error {
	validatorsMu.RLock()
	validator, ok := validators[id.System]
	validatorsMu.RUnlock()
	if !ok {
		return fmt.Errorf("unable to validate '%s|%s': %w", id.System, id.Value, ErrNoValidator)
	}
	return validator(id.Value)
}

// Format returns the value of the identifier formatted for display
func Format(id Identifier) (string, error) {
	formattersMu.RLock()
	formatter, ok := formatters[id.System]
	formattersMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unable to format '%s|%s': %w", id.System, id.Value, ErrNoFormatter)
	}
	return formatter(id.Value), nil
}

// Systems returns a list of the supported identifier systems
func Systems() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	list := make([]string, 0, len(systems))
	for uri := range systems {
		list = append(list, uri)
	}
	sort.Strings(list)
	return list
}

// Validators returns the list of systems with a registered validator
func Validators() []string {
	validatorsMu.RLock()
	defer validatorsMu.RUnlock()
	list := make([]string, 0, len(validators))
	for uri := range validators {
		list = append(list, uri)
	}
	sort.Strings(list)
	return list
}

// Lookup returns the system for the specified uri
func Lookup(uri string) (System, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	val, ok := systems[uri]
	return val, ok
}

func init() {
	// SNOMED CT concept identifiers and expressions (compositional grammar)
	Register("SNOMED CT", SNOMEDCT)
	// professional registration: General medical council (GMC)
	Register("GMC - General medical council", GMCNumber)
	// professional registration: Nursing and midwifery council (NMC)
	Register("NMC - Nursing and midwifery council", NMCPIN)
	// NHS England user directory
	Register("SDS", SDSUserID)
	// NHS England and Wales patient identifier
	Register("NHS number", NHSNumber)
	// Organisational data services code for an organisation
	Register("ODS code", ODSCode)
	// Organisational data services code for an organisational site
	Register("ODS site code", ODSSiteCode)
}
