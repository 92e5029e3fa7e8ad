package psychrometric

// atmospheric pressure, kPa
const atmosphericPressure = 101.325

// ratio of the molecular weights of water vapour and dry air
const molecularWeightRatio = 0.62197

// relative humidity of saturated air, %
const saturated = 100.0

// latent heat of vaporisation at 0 degree C, kJ/kg
const latentHeat = 2501.0

// specific heat of water vapour, kJ/kg K
const cpVapour = 1.84
