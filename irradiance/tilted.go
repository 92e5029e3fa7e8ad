package irradiance

import "math"

// DefaultGroundReflectance is the albedo of the ground in front of a plane.
const DefaultGroundReflectance = 0.2

/*
SkyViewFactor calculates the view factor from a tilted plane to the sky.

	Args:
		tilt: tilt of the plane, rad (0 horizontal facing up, π/2 vertical, π facing down)

	Returns:
		view factor to the sky, -
*/
func SkyViewFactor(tilt float64) float64 {
	if tilt < 0 {
		panic("tilt is less than 0")
	}

	if tilt > math.Pi {
		panic("tilt is greater than π")
	}

	return (1.0 + math.Cos(tilt)) / 2.0
}

// GroundViewFactor returns the view factor from a tilted plane to the ground.
func GroundViewFactor(tilt float64) float64 {
	return 1.0 - SkyViewFactor(tilt)
}

// TiltedIrradiance is the irradiance received by a tilted plane, W/m2 (or Wh/m2 when summed).
type TiltedIrradiance struct {
	Beam    float64
	Diffuse float64
	Ground  float64
	Total   float64
}

// Add accumulates another reading.
func (t *TiltedIrradiance) Add(o TiltedIrradiance) {
	t.Beam += o.Beam
	t.Diffuse += o.Diffuse
	t.Ground += o.Ground
	t.Total += o.Total
}

/*
BeamNormal derives beam normal irradiance from horizontal readings.

	Args:
		altitude: solar altitude, rad
		igh: global horizontal irradiance, W/m2
		idh: diffuse horizontal irradiance, W/m2

	Returns:
		beam normal irradiance, W/m2 (0 when the sun is down)
*/
func BeamNormal(altitude, igh, idh float64) float64 {
	if altitude <= 0 {
		return 0
	}
	return (igh - idh) / math.Sin(altitude)
}

/*
TiltedPlane calculates the components of irradiance on a tilted plane.

	Args:
		day: day of the year
		cai: cosine of the angle of incidence on the plane, -
		igh: global horizontal irradiance, W/m2
		idh: diffuse horizontal irradiance, W/m2
		altitude: solar altitude, rad
		tilt: tilt of the plane, rad
		reflectance: ground reflectance, -
		isotropic: use the isotropic sky instead of the Perez sky

	Returns:
		beam, diffuse, ground-reflected and total irradiance on the plane
*/
func TiltedPlane(day int, cai, igh, idh, altitude, tilt, reflectance float64, isotropic bool) TiltedIrradiance {
	ibn := BeamNormal(altitude, igh, idh)

	var diffuse float64
	if isotropic {
		diffuse = idh * SkyViewFactor(tilt)
	} else if idh > 0 {
		diffuse = DiffuseOnTiltedPlanePerez(day, cai, altitude, idh, ibn, tilt)
	}

	beam := ibn * cai
	ground := igh * reflectance * GroundViewFactor(tilt)

	return TiltedIrradiance{
		Beam:    beam,
		Diffuse: diffuse,
		Ground:  ground,
		Total:   beam + diffuse + ground,
	}
}

/*
TotalOnTiltedPlane calculates the irradiance on a tilted plane with a ground reflectance of 0.2.

	Args:
		day: day of the year
		cai: cosine of the angle of incidence on the plane, -
		igh: global horizontal irradiance, W/m2
		idh: diffuse horizontal irradiance, W/m2
		altitude: solar altitude, rad
		tilt: tilt of the plane, rad
		isotropic: use the isotropic sky instead of the Perez sky
		diffuseOnly: return the sky-diffuse component alone

	Returns:
		irradiance on the plane, W/m2
*/
func TotalOnTiltedPlane(day int, cai, igh, idh, altitude, tilt float64, isotropic, diffuseOnly bool) float64 {
	t := TiltedPlane(day, cai, igh, idh, altitude, tilt, DefaultGroundReflectance, isotropic)
	if diffuseOnly {
		return t.Diffuse
	}
	return t.Total
}
