package irradiance

import "math"

// relative optical air mass assumed by the luminous efficacy model
const efficacyAirmass = 2.0

type efficacyCoefficients struct {
	a, b, c, d float64
}

// Perez (1990) luminous efficacy of global irradiance, lm/W, by clearness category
var globalEfficacy = [clearnessBins]efficacyCoefficients{
	{96.6251, -0.4703, 11.501, 9.1555},
	{107.5371, 0.7866, 1.7899, -1.1892},
	{98.7277, 0.6972, 4.4046, -6.9483},
	{92.721, 0.5591, 8.3579, -8.3063},
	{86.7266, 0.9763, 7.1033, -10.9361},
	{88.3516, 1.3891, 6.0641, -7.5967},
	{78.624, 1.4699, 4.9305, -11.3703},
	{99.6452, 1.8569, -4.4555, -3.1465},
}

// Perez (1990) luminous efficacy of diffuse irradiance, lm/W, by clearness category
var diffuseEfficacy = [clearnessBins]efficacyCoefficients{
	{97.2375, -0.4597, 11.962, -8.9149},
	{107.2129, 1.1508, 0.584, -3.949},
	{104.996, 2.9605, -5.5334, -8.7793},
	{102.3945, 5.589, -13.951, -13.9052},
	{100.71, 5.94, -22.75, -23.74},
	{106.42, 3.83, -36.15, -28.83},
	{141.88, 1.9, -53.24, -14.03},
	{152.23, 0.35, -45.27, -7.98},
}

/*
LuminousEfficacy calculates the luminous efficacy of daylight.

	Args:
		global: efficacy of global irradiance when true, of diffuse irradiance otherwise
		day: day of the year
		altitude: solar altitude, rad
		idh: diffuse horizontal irradiance, W/m2 (must be positive)
		ibn: beam normal irradiance, W/m2

	Returns:
		luminous efficacy, lm/W
*/
func LuminousEfficacy(global bool, day int, altitude, idh, ibn float64) float64 {
	table := &diffuseEfficacy
	if global {
		table = &globalEfficacy
	}

	brightness := PerezBrightness(day, altitude, idh)
	c := table[PerezClearness(altitude, idh, ibn)-1]

	return c.a + c.b*efficacyAirmass + c.c*math.Sin(altitude) + c.d*math.Log(brightness)
}

/*
Illuminance converts a horizontal irradiance reading to illuminance.

	Args:
		global: global illuminance when true, diffuse illuminance otherwise
		day: day of the year
		altitude: solar altitude, rad
		igh: global horizontal irradiance, W/m2
		idh: diffuse horizontal irradiance, W/m2

	Returns:
		horizontal illuminance, lx

	Notes:
		Zero unless the sun is up and both readings are positive.
*/
func Illuminance(global bool, day int, altitude, igh, idh float64) float64 {
	if altitude <= 0 || igh <= 0 || idh <= 0 {
		return 0
	}

	ibn := (igh - idh) / math.Sin(altitude)
	eff := LuminousEfficacy(global, day, altitude, idh, ibn)

	if global {
		return igh * eff
	}
	return idh * eff
}
