package combat

import "math/rand/v2"

// Roller returns a random number in [0, n).
type Roller func(n int) int

// DefaultRoller draws from math/rand/v2.
func DefaultRoller(n int) int {
	return rand.IntN(n)
}

// RollPercent reports whether a percent-chance roll succeeds.
func RollPercent(roll Roller, chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return roll(100) < chance
}

// Strike returns the damage of a single blow of the given power. A critical
// hit, rolled against critChance percent, doubles the damage.
func Strike(roll Roller, power, critChance int) (int, bool) {
	if power < 0 {
		power = 0
	}
	if RollPercent(roll, critChance) {
		return power * 2, true
	}
	return power, false
}

var damageMessages = []struct {
	maxDamage int
	verb3rd   string // "{attacker} {verb} {target}!"
}{
	{0, "misses"},
	{2, "barely scratches"},
	{4, "tickles"},
	{6, "barely hurts"},
	{10, "hits"},
	{14, "hits hard"},
	{19, "pummels"},
	{24, "thrashes"},
	{30, "mauls"},
	{40, "decimates"},
	{50, "devastates"},
	{65, "obliterates"},
	{80, "annihilates"},
}

// DamageVerb returns the 3rd person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, msg := range damageMessages {
		if damage <= msg.maxDamage {
			return msg.verb3rd
		}
	}
	return "does UNSPEAKABLE things to"
}
