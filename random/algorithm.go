package random

// Algorithm identifies the active generator of an Engine.
type Algorithm int

const (
	// GeneralPurpose is entropy-seeded and not reproducible.
	GeneralPurpose Algorithm = iota
	// Deterministic is MT19937 seeded from an integer.
	Deterministic
)

func (a Algorithm) String() string {
	switch a {
	case GeneralPurpose:
		return "general"
	case Deterministic:
		return "mt19937"
	default:
		return "unknown"
	}
}

// generator is the active algorithm of an engine. Exactly one of general
// and mt is set, matching algorithm. A reseed replaces the whole value.
type generator struct {
	algorithm Algorithm
	general   *chachaSource
	mt        *mt19937
}

func generalGenerator(src *chachaSource) generator {
	return generator{algorithm: GeneralPurpose, general: src}
}

func deterministicGenerator(mt *mt19937) generator {
	return generator{algorithm: Deterministic, mt: mt}
}

// Uint32 draws one word from the active algorithm.
func (g *generator) Uint32() uint32 {
	switch g.algorithm {
	case GeneralPurpose:
		return g.general.Uint32()
	case Deterministic:
		return g.mt.Uint32()
	default:
		panic("random: engine has no algorithm")
	}
}
