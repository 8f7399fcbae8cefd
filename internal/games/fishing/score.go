package fishing

import "strconv"

// Popup is a floating "+N" shown where a fish was caught.
type Popup struct {
	Text string
	X, Y float64 // world position
	TTL  float64 // seconds left
}

// ScoreKeeper tallies an amusement round.
type ScoreKeeper struct {
	score    int
	caught   int
	best     int
	prevBest int
	popups   []Popup
	popupTTL float64
}

// NewScoreKeeper creates a keeper whose popups last popupTTL seconds.
func NewScoreKeeper(popupTTL float64) *ScoreKeeper {
	return &ScoreKeeper{popupTTL: popupTTL}
}

// Reset starts a new round against a stored best score.
func (k *ScoreKeeper) Reset(best int) {
	k.score = 0
	k.caught = 0
	k.best = best
	k.prevBest = best
	k.popups = k.popups[:0]
}

// Add credits one caught fish at a world position.
func (k *ScoreKeeper) Add(points int, x, y float64) {
	k.score += points
	k.caught++
	if k.score > k.best {
		k.best = k.score
	}
	k.popups = append(k.popups, Popup{Text: "+" + strconv.Itoa(points), X: x, Y: y, TTL: k.popupTTL})
}

// Advance ages popups by dt and drops expired ones.
func (k *ScoreKeeper) Advance(dt float64) {
	live := k.popups[:0]
	for _, p := range k.popups {
		p.TTL -= dt
		if p.TTL > 0 {
			live = append(live, p)
		}
	}
	k.popups = live
}

func (k *ScoreKeeper) Score() int  { return k.score }
func (k *ScoreKeeper) Caught() int { return k.caught }
func (k *ScoreKeeper) Best() int   { return k.best }

// NewBest reports whether this round beat the best score it started against.
func (k *ScoreKeeper) NewBest() bool {
	return k.score > k.prevBest
}

// Average returns points per fish.
func (k *ScoreKeeper) Average() float64 {
	if k.caught == 0 {
		return 0
	}
	return float64(k.score) / float64(k.caught)
}

// Popups returns the live popups.
func (k *ScoreKeeper) Popups() []Popup {
	return k.popups
}
