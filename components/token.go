package components

import (
	"github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

type TokenData struct {
	Kind      config.TokenKind
	Collected bool
	AnimFrame int
	AnimTimer int
}

var Token = donburi.NewComponentType[TokenData]()
