// SPDX-License-Identifier: MIT

// Package lbp: functional configuration.
//
// Option setters only record values; all validation happens once in
// Config.Validate, so New/With report every bad combination as an error
// (ErrConfig family) instead of panicking.

package lbp

// Option mutates a Config under construction. Safe to apply repeatedly.
type Option func(*Config)

// WithNeighbors sets the neighbor count P.
func WithNeighbors(p int) Option {
	return func(c *Config) { c.Neighbors = p }
}

// WithRadius sets both radii to r (circular or square navigation).
func WithRadius(r float64) Option {
	return func(c *Config) { c.RadiusY, c.RadiusX = r, r }
}

// WithRadii sets independent vertical and horizontal radii
// (elliptical or rectangular navigation).
func WithRadii(ry, rx float64) Option {
	return func(c *Config) { c.RadiusY, c.RadiusX = ry, rx }
}

// WithCircular toggles bilinear sampling on an ellipse.
func WithCircular(on bool) Option {
	return func(c *Config) { c.Circular = on }
}

// WithToAverage toggles the mean-of-neighborhood threshold.
func WithToAverage(on bool) Option {
	return func(c *Config) { c.ToAverage = on }
}

// WithAddAverageBit toggles the trailing center-vs-average bit (Regular only).
func WithAddAverageBit(on bool) Option {
	return func(c *Config) { c.AddAverageBit = on }
}

// WithUniform toggles uniform-pattern reduction.
func WithUniform(on bool) Option {
	return func(c *Config) { c.Uniform = on }
}

// WithRotationInvariant toggles rotation-invariant reduction.
func WithRotationInvariant(on bool) Option {
	return func(c *Config) { c.RotationInvariant = on }
}

// WithVariant selects the encoding variant.
func WithVariant(v Variant) Option {
	return func(c *Config) { c.Variant = v }
}

// gatherConfig applies opts on top of base and returns the result.
func gatherConfig(base Config, opts []Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}
