package actions

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// MeleeAction attacks the actor one tile away in the given direction.
// Damage is attacker power minus defender defense, floored at zero; a
// zero-damage swing still succeeds, it just narrates differently.
type MeleeAction struct {
	Actor *entities.Actor
	Dir   Direction
}

// NewMelee creates a melee action for the given actor and direction
func NewMelee(actor *entities.Actor, dir Direction) *MeleeAction {
	return &MeleeAction{Actor: actor, Dir: dir}
}

// Resolve applies the attack to the target at the destination
func (a *MeleeAction) Resolve(gc *Context) error {
	target := TargetActorAt(gc.Map, a.Actor, a.Dir)
	if target == nil {
		return errors.Impossible("Nothing to attack")
	}
	if a.Actor.Fighter == nil || target.Fighter == nil {
		return errors.Internal("melee requires fighter capabilities on both sides")
	}

	damage := a.Actor.Power() - target.Defense()

	attackDesc := fmt.Sprintf("%s attacks %s", capitalize(a.Actor.Name()), target.Name())
	attackStyle := messagelog.StyleEnemyAttack
	if a.Actor == gc.Player {
		attackStyle = messagelog.StylePlayerAttack
	}

	if damage <= 0 {
		gc.Log.Emit(fmt.Sprintf("%s but does no damage.", attackDesc), attackStyle)
		return nil
	}

	gc.Log.Emit(fmt.Sprintf("%s for %d hit points.", attackDesc, damage), attackStyle)
	target.Fighter.Damage(damage)

	if target.Fighter.HP <= 0 {
		a.narrateDeath(gc, target)
		target.Die()
	}
	return nil
}

func (a *MeleeAction) narrateDeath(gc *Context, target *entities.Actor) {
	if target == gc.Player {
		gc.Log.Emit("You died!", messagelog.StylePlayerDie)
		return
	}
	gc.Log.Emit(fmt.Sprintf("%s is dead!", capitalize(target.Name())), messagelog.StyleEnemyDie)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
