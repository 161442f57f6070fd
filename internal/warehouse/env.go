// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package warehouse

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DriverPostgres selects the lib/pq driver.
	DriverPostgres = "postgres"
	// DriverSnowflake selects the gosnowflake driver.
	DriverSnowflake = "snowflake"
)

// identifierRegexp matches a bare or schema-qualified SQL identifier with up
// to three segments (database.schema.object).
var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*){0,2}$`)

// config holds all the configuration needed to connect to the warehouse.
type config struct {
	Driver       string        `env:"WAREHOUSE_DRIVER" envDefault:"postgres"`
	DSN          string        `env:"WAREHOUSE_DSN"`
	ContactsView string        `env:"WAREHOUSE_CONTACTS_VIEW" envDefault:"vendor_compliance_contacts"`
	QueryTimeout time.Duration `env:"WAREHOUSE_QUERY_TIMEOUT" envDefault:"1m"`
}

// validate checks that the configured values identify a reachable warehouse.
func (c config) validate() error {
	switch {
	case c.Driver != DriverPostgres && c.Driver != DriverSnowflake:
		return fmt.Errorf("%w: WAREHOUSE_DRIVER must be one of %s, %s", ErrInvalidEnvVariable, DriverPostgres, DriverSnowflake)
	case len(c.DSN) == 0:
		return fmt.Errorf("%w: WAREHOUSE_DSN", ErrMissingEnvVariable)
	case !validIdentifier(c.ContactsView):
		return fmt.Errorf("%w: WAREHOUSE_CONTACTS_VIEW is not a valid identifier", ErrInvalidEnvVariable)
	}

	return nil
}

// validIdentifier reports whether name can be spliced into a statement as a
// table or view identifier.
func validIdentifier(name string) bool {
	return identifierRegexp.MatchString(name)
}
