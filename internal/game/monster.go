package game

const DefaultMonsterHealth = 100

// Monster blocks a room until it is defeated, and may attack the player meanwhile.
type Monster struct {
	Name        string
	Description string
	Damage      int
	CanAttack   bool
	AttackText  string
	EffectsText string
	Value       int
	Solution    string
	Target      string
	Picture     string
	MaxHealth   int

	active bool
	health int
}

var _ Obstacle = (*Monster)(nil)

// DamageResult describes the outcome of damage dealt to a monster.
type DamageResult struct {
	Damage          int
	Critical        bool
	Defeated        bool
	AlreadyDefeated bool
	HealthRemaining int
}

func (m *Monster) ObstacleKind() ObstacleKind { return ObstacleMonster }
func (m *Monster) ObstacleName() string       { return m.Name }
func (m *Monster) IsActive() bool             { return m.active }
func (m *Monster) Reward() int                { return m.Value }
func (m *Monster) Effects() string            { return m.EffectsText }

// SetActive sets the active flag. A monster brought back to life regains full health.
func (m *Monster) SetActive(active bool) {
	if active && !m.active {
		m.health = m.MaxHealth
	}
	if !active {
		m.health = 0
	}
	m.active = active
}

// Health returns the monster's current health.
func (m *Monster) Health() int {
	return m.health
}

// HealthPercentage returns current health as a percentage of MaxHealth.
func (m *Monster) HealthPercentage() int {
	if m.MaxHealth <= 0 {
		return 0
	}
	return m.health * 100 / m.MaxHealth
}

// Attack hits the player for the monster's damage. Nothing happens unless the
// monster is active and able to attack. Returns the damage dealt.
func (m *Monster) Attack(p *Player) int {
	if !m.active || !m.CanAttack || p == nil {
		return 0
	}
	dmg := max(m.Damage, -m.Damage)
	// dmg is never negative here so the error is impossible
	_ = p.TakeDamage(dmg)
	return dmg
}

// Defeat deactivates the monster. Calling it again has no further effect.
func (m *Monster) Defeat() {
	m.active = false
	m.health = 0
}

// TakeDamage reduces the monster's health, defeating it at zero.
func (m *Monster) TakeDamage(amount int, critical bool) DamageResult {
	if !m.active {
		return DamageResult{AlreadyDefeated: true}
	}
	amount = max(amount, 0)
	m.health -= amount
	if m.health <= 0 {
		m.Defeat()
		return DamageResult{Damage: amount, Critical: critical, Defeated: true}
	}
	return DamageResult{Damage: amount, Critical: critical, HealthRemaining: m.health}
}

// Resolve defeats the monster if input names its defeating item.
func (m *Monster) Resolve(input string) bool {
	if !m.active || m.Solution == "" || !sameName(m.Solution, input) {
		return false
	}
	m.Defeat()
	return true
}
