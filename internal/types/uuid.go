package types

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_PLAN        = "plan"
	UUID_PREFIX_CONTRACT    = "contract"
	UUID_PREFIX_INSTALLMENT = "inst"
	UUID_PREFIX_REQUEST     = "req"
)

// GenerateUUID returns a lowercase ULID. ULIDs sort lexicographically by
// creation time which keeps index pages warm on insert-heavy tables.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a ULID prefixed with the entity short name,
// e.g. contract_01hx....
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return prefix + "_" + GenerateUUID()
}
