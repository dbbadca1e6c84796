package engine

// AlertThresholdKg is the minimum edible surplus worth dispatching a
// pickup for; below this the logistics cost outweighs the benefit.
const AlertThresholdKg = 5.0

// ShouldAlert reports whether a meal log should trigger a redistribution
// alert. Inedible surplus never alerts, regardless of quantity.
func ShouldAlert(isEdible bool, surplusKg float64) bool {
	return isEdible && surplusKg >= AlertThresholdKg
}
