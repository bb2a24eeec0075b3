package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData embeds the entity's resolv object, which is the source of truth
// for its position and size.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv spatial hash covering the play field.
var Space = donburi.NewComponentType[resolv.Space]()
