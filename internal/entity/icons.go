package entity

import (
	"math/rand"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
)

// https://emojipedia.org/people/
var DefaultSeekerIcons = []string{
	"👮", "👷", "💂", "🕵", "👩", "👨", "🧑", "👧", "👦", "🧒",
	"👵", "👴", "🧓", "👱", "🧔", "👲", "👳", "🧕", "👸", "🤴",
	"🦸", "🦹", "🧙", "🧚", "🧛", "🧜", "🧝", "🧞", "🧟", "🤶",
	"🎅", "👼", "🤰", "🙋", "🙆", "🙅", "💁", "🙇", "🤦", "🤷",
}

// https://emojipedia.org/nature/
var DefaultEvaderIcons = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯",
	"🦁", "🐮", "🐷", "🐸", "🐵", "🐔", "🐧", "🐦", "🐤", "🦆",
	"🦅", "🦉", "🦇", "🐺", "🐗", "🐴", "🦄", "🐝", "🐛", "🦋",
	"🐌", "🐞", "🐜", "🦗", "🕷", "🦂", "🐢", "🐍", "🦎", "🦖",
	"🦕", "🐙", "🦑", "🦐", "🦀", "🐡", "🐠", "🐟", "🐬", "🐳",
}

// IconPool hands out icons without replacement. free holds the unused
// indices so every allocation is a single uniform pick.
type IconPool struct {
	icons []string
	free  []int
}

func NewIconPool(icons []string) *IconPool {
	seen := make(map[string]struct{}, len(icons))
	pool := &IconPool{}

	for _, icon := range icons {
		if icon == EmptyCell {
			continue
		}
		if _, ok := seen[icon]; ok {
			continue
		}
		seen[icon] = struct{}{}
		pool.free = append(pool.free, len(pool.icons))
		pool.icons = append(pool.icons, icon)
	}

	return pool
}

func (that *IconPool) Allocate(rng *rand.Rand) (string, error) {
	if len(that.free) == 0 {
		return "", apperror.ErrPoolExhausted
	}

	i := rng.Intn(len(that.free))
	idx := that.free[i]

	last := len(that.free) - 1
	that.free[i] = that.free[last]
	that.free = that.free[:last]

	return that.icons[idx], nil
}

func (that *IconPool) Size() int {
	return len(that.icons)
}

func (that *IconPool) Available() int {
	return len(that.free)
}
