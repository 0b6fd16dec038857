// SPDX-License-Identifier: MIT

// Package results stores optimisation runs in a SQLite database through gorm.
//
// A Run records what was solved (kind, model id, growth rate), the outcome
// (status, objective) and the per-species maps (fractions, activity,
// indicators) as JSON columns. Stored minimal-species indicator patterns can
// be fed back as exclusions to continue an enumeration in a later session.
package results
