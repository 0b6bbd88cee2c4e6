// Package diag defines the structured diagnostic model the core reports
// through: severities ordered fatal < error < warning < info, stable
// codes grouped into categories, a Record type built through an immutable
// fluent Builder, and a Collector that normalizes and orders records the
// way the public API promises (ascending byte offset).
package diag
