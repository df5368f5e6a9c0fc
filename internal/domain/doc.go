// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/route).
// This root package holds sentinel errors and the field-level ValidationError
// that every entity reports through.
package domain
