// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (catalog/key state) and contracts (interfaces) only.
package domain
