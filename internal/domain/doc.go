// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/account, domain/team,
// domain/task). This root package holds the error taxonomy, validation types
// and the Action interface that multi-step operations are built from.
package domain
