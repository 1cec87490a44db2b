package trrbench

// Default trap geometry: 780 nm emission against a 790 nm confinement
// length. With these values the lock threshold sits at z ≈ 0.0128 and
// is comfortably engaged by z = 0.014.
const (
	DefaultEmitWavelength = 780e-9 // m
	DefaultTrapSize       = 790e-9 // m

	// lockedPersistence is the geometric identity constant once the
	// fabric lock engages, independent of how far past threshold z lies.
	lockedPersistence = 0.95
)

// FabricGeometry holds the wavelength/confinement pair the fabric lock
// is evaluated against. The zero value is not useful; start from
// DefaultFabricGeometry and override as needed.
type FabricGeometry struct {
	EmitWavelength float64 // Emission wavelength (m)
	TrapSize       float64 // Trap confinement length (m)
}

// DefaultFabricGeometry returns the 780/790 nm reference geometry.
func DefaultFabricGeometry() FabricGeometry {
	return FabricGeometry{
		EmitWavelength: DefaultEmitWavelength,
		TrapSize:       DefaultTrapSize,
	}
}

// LambdaFabric is the ratio of the redshifted wavelength to the trap
// confinement length:
//
//	Lambda_fabric = emit_wavelength * (1 + z) / trap_size
func (g FabricGeometry) LambdaFabric(z float64) float64 {
	return g.EmitWavelength * (1.0 + z) / g.TrapSize
}

// LockActive reports whether the fabric lock is engaged: strictly
// Lambda_fabric > 1.0. A pure threshold predicate with no hysteresis,
// re-evaluated fresh on each call.
func (g FabricGeometry) LockActive(z float64) bool {
	return g.LambdaFabric(z) > 1.0
}

// IdentityPersistence is the piecewise identity metric I_MI. Locked, it
// returns the constant 0.95 exactly; unlocked, it decays linearly as
// 1 - 0.05*Lambda_fabric.
//
// The unlocked branch evaluates 1 - 0.05*Lambda rather than being pinned
// to 0.95 at Lambda = 1, which leaves the metric discontinuous at the
// lock boundary for non-default wavelength/size ratios. That is the
// model's literal behavior; do not smooth it.
func (g FabricGeometry) IdentityPersistence(z float64) float64 {
	if g.LockActive(z) {
		return lockedPersistence
	}
	return clip(1.0-0.05*g.LambdaFabric(z), 0.0, 1.0)
}

// LambdaFabric evaluates the fabric ratio under the default geometry.
func LambdaFabric(z float64) float64 {
	return DefaultFabricGeometry().LambdaFabric(z)
}

// FabricLockActive evaluates the lock predicate under the default geometry.
func FabricLockActive(z float64) bool {
	return DefaultFabricGeometry().LockActive(z)
}

// IdentityPersistence evaluates the identity metric under the default geometry.
func IdentityPersistence(z float64) float64 {
	return DefaultFabricGeometry().IdentityPersistence(z)
}
