// Package export serializes a drawing to portable vector formats.
package export
