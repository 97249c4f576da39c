// meta/meta.go
package meta

// CANDIDATES defines how many starting numbers are offered.
const CANDIDATES = 5

// MIN_START and MAX_START bound the starting numbers.
const MIN_START = 20000
const MAX_START = 30000

// GO_ROUTINES defines the number of goroutines for root-parallel search.
const GO_ROUTINES = 1

// LOG_LEVEL is the default zerolog level of the CLI.
const LOG_LEVEL = "warn"
