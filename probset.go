// Package probset converts locally stored HTML pages of exam-preparation
// problem sets into deduplicated JSON datasets of question/answer records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package probset
