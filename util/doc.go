// Package util provides small generic helpers shared across accountkit.
package util
