package insights

// HeatIndex is the apparent temperature in °C from the Rothfusz regression
// with Celsius coefficients. Below 27 °C it is the air temperature itself.
func HeatIndex(tempC, rh float64) float64 {
	if tempC < 27 {
		return tempC
	}

	const (
		c1 = -8.78469475556
		c2 = 1.61139411
		c3 = 2.33854883889
		c4 = -0.14611605
		c5 = -0.012308094
		c6 = -0.0164248277778
		c7 = 0.002211732
		c8 = 0.00072546
		c9 = -0.000003582
	)
	t, r := tempC, rh
	return c1 + c2*t + c3*r + c4*t*r + c5*t*t + c6*r*r + c7*t*t*r + c8*t*r*r + c9*t*t*r*r
}

type HeatStatus string

const (
	HeatUnknown        HeatStatus = "unknown"
	HeatNone           HeatStatus = "none"
	HeatCaution        HeatStatus = "caution"
	HeatExtremeCaution HeatStatus = "extreme caution"
	HeatDanger         HeatStatus = "danger"
	HeatExtremeDanger  HeatStatus = "extreme danger"
)

// HeatStatusFor buckets a heat index using the NWS thresholds.
func HeatStatusFor(heatIndex float64) HeatStatus {
	switch {
	case heatIndex < 27:
		return HeatNone
	case heatIndex < 32:
		return HeatCaution
	case heatIndex < 41:
		return HeatExtremeCaution
	case heatIndex < 54:
		return HeatDanger
	default:
		return HeatExtremeDanger
	}
}

// ComfortIndex rates the climate from -2 (cool to cold) through 0
// (comfortable) up to 4 (extreme heat danger). From 27 °C the heat index
// replaces the air temperature.
func ComfortIndex(tempC, rh float64) int {
	t := tempC
	if t >= 27 {
		t = HeatIndex(tempC, rh)
	}

	switch {
	case t >= 54:
		return 4
	case t >= 41:
		return 3
	case t >= 32:
		return 2
	case t >= 27:
		return 1
	case t >= 20:
		return 0
	case t >= 16:
		return -1
	default:
		return -2
	}
}
