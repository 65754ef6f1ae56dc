// Package formats provides parsers for the geometry files the game loads.
package formats
