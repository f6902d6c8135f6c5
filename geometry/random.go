// Package geometry - random sampling of projective configurations.
//
// All samplers ride on the hvector sampling engine: small integer
// coefficients, functional options for source injection (WithRand),
// real-only sampling (WithReal) and exclusion sets (WithExclude).
// Without an injected source every call seeds independently.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/projective/hvector"
)

// RandomPoint2D samples a point of the projective plane.
//
// Errors: hvector.ErrSamplingExhausted.
func RandomPoint2D(opts ...hvector.IncidentOption) (*Point2D, error) {
	v, err := hvector.Random(coords2D, opts...)
	if err != nil {
		return nil, fmt.Errorf("RandomPoint2D: %w", err)
	}

	return &Point2D{vec: v}, nil
}

// RandomLine2D samples a line of the projective plane.
//
// Errors: hvector.ErrSamplingExhausted.
func RandomLine2D(opts ...hvector.IncidentOption) (*Line2D, error) {
	v, err := hvector.Random(coords2D, opts...)
	if err != nil {
		return nil, fmt.Errorf("RandomLine2D: %w", err)
	}

	return &Line2D{vec: v}, nil
}

// RandomPoint3D samples a point of projective space.
//
// Errors: hvector.ErrSamplingExhausted.
func RandomPoint3D(opts ...hvector.IncidentOption) (*Point3D, error) {
	v, err := hvector.Random(coords3D, opts...)
	if err != nil {
		return nil, fmt.Errorf("RandomPoint3D: %w", err)
	}

	return &Point3D{vec: v}, nil
}

// RandomPlane3D samples a plane of projective space.
//
// Errors: hvector.ErrSamplingExhausted.
func RandomPlane3D(opts ...hvector.IncidentOption) (*Plane3D, error) {
	v, err := hvector.Random(coords3D, opts...)
	if err != nil {
		return nil, fmt.Errorf("RandomPlane3D: %w", err)
	}

	return &Plane3D{vec: v}, nil
}

// RandomPoint samples a point lying on l.
//
// Errors: hvector.ErrSamplingExhausted.
func (l *Line2D) RandomPoint(opts ...hvector.IncidentOption) (*Point2D, error) {
	v, err := l.vec.RandomIncident(opts...)
	if err != nil {
		return nil, fmt.Errorf("Line2D.RandomPoint: %w", err)
	}

	return &Point2D{vec: v}, nil
}

// RandomLine samples a line passing through p.
//
// Errors: hvector.ErrSamplingExhausted.
func (p *Point2D) RandomLine(opts ...hvector.IncidentOption) (*Line2D, error) {
	v, err := p.vec.RandomIncident(opts...)
	if err != nil {
		return nil, fmt.Errorf("Point2D.RandomLine: %w", err)
	}

	return &Line2D{vec: v}, nil
}

// RandomPoint samples a point lying on u.
//
// Errors: hvector.ErrSamplingExhausted.
func (u *Plane3D) RandomPoint(opts ...hvector.IncidentOption) (*Point3D, error) {
	v, err := u.vec.RandomIncident(opts...)
	if err != nil {
		return nil, fmt.Errorf("Plane3D.RandomPoint: %w", err)
	}

	return &Point3D{vec: v}, nil
}

// RandomPlane samples a plane passing through p.
//
// Errors: hvector.ErrSamplingExhausted.
func (p *Point3D) RandomPlane(opts ...hvector.IncidentOption) (*Plane3D, error) {
	v, err := p.vec.RandomIncident(opts...)
	if err != nil {
		return nil, fmt.Errorf("Point3D.RandomPlane: %w", err)
	}

	return &Plane3D{vec: v}, nil
}
