// Package domain contains shared domain types used across the campus-web
// sub-packages. Component-specific types live in sub-packages (domain/form,
// domain/catalog, domain/antispam, domain/submission, domain/ui). This root
// package holds sentinel errors and the field-level validation error type.
package domain
