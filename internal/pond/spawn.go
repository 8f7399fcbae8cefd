package pond

import (
	"math"
	"math/rand"
)

// Mode selects the spawn policy.
type Mode uint8

const (
	ModeAmusement Mode = iota
	ModeRecall
	ModeSpelling
	ModeMatching
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAmusement:
		return "amusement"
	case ModeRecall:
		return "recall"
	case ModeSpelling:
		return "spelling"
	case ModeMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// SpawnSource supplies study payloads for newly spawned fish.
// The manager pulls from it on every spawn; a nil source means amusement.
type SpawnSource interface {
	Mode() Mode
	// RecallDatum is the content every recall fish shows right now.
	RecallDatum() (WordDatum, bool)
	// SpellingDatum carries the next required letter.
	SpellingDatum() (WordDatum, bool)
	// Distractor carries a random letter; it may equal the required one.
	Distractor(rng *rand.Rand) WordDatum
	// MatchingTarget carries the meaning of the word being matched.
	MatchingTarget() (WordDatum, bool)
	// MatchingPick carries a random meaning from the group's pool.
	MatchingPick(rng *rand.Rand) (WordDatum, bool)
}

func (m *EntityManager) spawn(src SpawnSource) int {
	mode := ModeAmusement
	if src != nil {
		mode = src.Mode()
	}

	switch mode {
	case ModeRecall:
		d, ok := src.RecallDatum()
		if !ok {
			return 0
		}
		m.spawnFish(&d)
		return 1

	case ModeSpelling:
		d, ok := src.SpellingDatum()
		if !ok {
			return 0
		}
		m.spawnFish(&d)
		lo, hi := m.cfg.Study.MinDistractors, m.cfg.Study.MaxDistractors
		n := lo + m.rng.Intn(hi-lo+1)
		for i := 0; i < n; i++ {
			dd := src.Distractor(m.rng)
			m.spawnFish(&dd)
		}
		return 1 + n

	case ModeMatching:
		target, ok := src.MatchingTarget()
		if !ok {
			return 0
		}
		if m.countMeaning(target.Meaning) < m.cfg.Study.MatchingFloor {
			m.spawnFish(&target)
			return 1
		}
		d, ok := src.MatchingPick(m.rng)
		if !ok {
			return 0
		}
		m.spawnFish(&d)
		return 1

	default:
		m.spawnFish(nil)
		return 1
	}
}

// countMeaning counts live fish carrying the given meaning.
func (m *EntityManager) countMeaning(meaning string) int {
	n := 0
	for _, f := range m.fishes {
		if !f.active || f.datum == nil {
			continue
		}
		if f.datum.Meaning == meaning {
			n++
		}
	}
	return n
}

// spawnFish adds one randomly placed fish, optionally carrying a datum.
func (m *EntityManager) spawnFish(d *WordDatum) *Fish {
	f := m.AddFish(NewFish(m.randomSpec(), m.Band(), m.cfg.Playfield.Width, m.cfg.Fish.HitboxMargin))
	if d != nil {
		f.WithDatum(*d)
	}
	m.spawned++
	return f
}

func (m *EntityManager) randomSpec() FishSpec {
	fc := m.cfg.Fish
	pf := m.cfg.Playfield

	spec := FishSpec{W: fc.Width, H: fc.Height}
	if m.rng.Float64() < m.cfg.Spawn.RightChance {
		spec.Type = MinRightType + m.rng.Intn(MaxRightType-MinRightType+1)
		spec.Direction = DirRight
		spec.X = -m.cfg.Spawn.EntryOffset
	} else {
		spec.Type = MinLeftType + m.rng.Intn(MaxLeftType-MinLeftType+1)
		spec.Direction = DirLeft
		spec.X = pf.Width + m.cfg.Spawn.EntryOffset
	}

	spec.BaseY = pf.WaterTop + m.rng.Float64()*(pf.Height-pf.WaterTop-pf.BottomMargin)
	spec.Speed = (fc.MinSpeed + m.rng.Float64()*(fc.MaxSpeed-fc.MinSpeed)) * m.speedScale
	spec.Amplitude = fc.MinAmplitude + m.rng.Float64()*(fc.MaxAmplitude-fc.MinAmplitude)
	spec.Phase = m.rng.Float64() * 2 * math.Pi
	return spec
}
