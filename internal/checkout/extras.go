package checkout

// Per-leg extras catalog. Costs are flat per leg in PEN, matching the fare
// sheet the summary screen shows.

type BaggageOption string

const (
	BaggageNone    BaggageOption = "ninguna"
	BaggageCabin   BaggageOption = "mano"
	BaggageChecked BaggageOption = "bodega"
)

type FareOption string

const (
	FareBasic   FareOption = "basica"
	FareClassic FareOption = "clasica"
	FareVIP     FareOption = "vip"
)

var baggageCosts = map[BaggageOption]float64{
	BaggageNone:    0,
	BaggageCabin:   50,
	BaggageChecked: 100,
}

var baggageLabels = map[BaggageOption]string{
	BaggageNone:    "Sin equipaje extra",
	BaggageCabin:   "Equipaje de mano (10 kg)",
	BaggageChecked: "Equipaje en bodega (23 kg)",
}

var fareCosts = map[FareOption]float64{
	FareBasic:   0,
	FareClassic: 80,
	FareVIP:     150,
}

var fareLabels = map[FareOption]string{
	FareBasic:   "Tarifa Básica",
	FareClassic: "Tarifa Clásica",
	FareVIP:     "Tarifa Flexible (VIP)",
}

// LegExtras is the per-leg choice of baggage and fare upgrade. The zero value
// (empty strings) costs nothing, mirroring the defaults of the summary form.
type LegExtras struct {
	Baggage BaggageOption `json:"baggage,omitempty"`
	Fare    FareOption    `json:"fare,omitempty"`
}

// Extras collects the choices for both legs. Return-leg extras only count for
// round trips.
type Extras struct {
	Outbound LegExtras `json:"outbound"`
	Return   LegExtras `json:"return"`
}

func (e LegExtras) cost() float64 {
	return baggageCosts[e.Baggage] + fareCosts[e.Fare]
}

func BaggageLabel(o BaggageOption) string {
	if label, ok := baggageLabels[o]; ok {
		return label
	}
	return baggageLabels[BaggageNone]
}

func FareLabel(o FareOption) string {
	if label, ok := fareLabels[o]; ok {
		return label
	}
	return fareLabels[FareBasic]
}
