// Package stat models the six base stats as fixed slots.
package stat

// Key is the canonical short name of one base stat
type Key string

const (
	HP             Key = "hp"
	Attack         Key = "atk"
	Defense        Key = "def"
	SpecialAttack  Key = "spa"
	SpecialDefense Key = "spd"
	Speed          Key = "spe"
)

// identifiers maps the stats.csv identifier to its canonical key
var identifiers = map[string]Key{
	"hp":              HP,
	"attack":          Attack,
	"defense":         Defense,
	"special-attack":  SpecialAttack,
	"special-defense": SpecialDefense,
	"speed":           Speed,
}

// FromIdentifier returns the key for a stats.csv identifier.
// Battle-only stats such as accuracy and evasion report false.
func FromIdentifier(identifier string) (Key, bool) {
	k, ok := identifiers[identifier]
	return k, ok
}

// Block holds base stats. A nil slot means no source row supplied it.
type Block struct {
	HP             *int `json:"hp,omitempty"`
	Attack         *int `json:"atk,omitempty"`
	Defense        *int `json:"def,omitempty"`
	SpecialAttack  *int `json:"spa,omitempty"`
	SpecialDefense *int `json:"spd,omitempty"`
	Speed          *int `json:"spe,omitempty"`
}

// Set stores value in the slot for k
func (b *Block) Set(k Key, value int) {
	v := value
	switch k {
	case HP:
		b.HP = &v
	case Attack:
		b.Attack = &v
	case Defense:
		b.Defense = &v
	case SpecialAttack:
		b.SpecialAttack = &v
	case SpecialDefense:
		b.SpecialDefense = &v
	case Speed:
		b.Speed = &v
	}
}

// Get returns the slot for k and whether it was set
func (b Block) Get(k Key) (int, bool) {
	var p *int
	switch k {
	case HP:
		p = b.HP
	case Attack:
		p = b.Attack
	case Defense:
		p = b.Defense
	case SpecialAttack:
		p = b.SpecialAttack
	case SpecialDefense:
		p = b.SpecialDefense
	case Speed:
		p = b.Speed
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Keys lists the six keys in display order
func Keys() []Key {
	return []Key{HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed}
}
