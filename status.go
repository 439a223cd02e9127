package lhef

// Particle status codes (ISTUP values).
const (
	// Incoming particle.
	Incoming int32 = -1
	// Outgoing final state particle.
	Outgoing int32 = 1
	// Intermediate space-like propagator defining an x and Q^2 which
	// should be preserved.
	IntermediateSpacelike int32 = -2
	// Intermediate resonance whose mass should be preserved.
	IntermediateResonance int32 = 2
	// Intermediate resonance, for documentation only.
	IntermediateDoc int32 = 3
	// Incoming beam particle at time t = -infinity.
	IncomingBeam int32 = -9
)
