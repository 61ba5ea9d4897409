package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD     FontName = "hud"
	HUDBig  FontName = "hud-big"
	Title   FontName = "title"
	Overlay FontName = "overlay"
	Menu    FontName = "menu"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll registers every face the game draws with. Call once before RunGame.
func LoadAll() {
	LoadFontWithSize(HUD, goregular.TTF, 14)
	LoadFontWithSize(HUDBig, goregular.TTF, 20)
	LoadFontWithSize(Title, goregular.TTF, 42)
	LoadFontWithSize(Overlay, goregular.TTF, 28)
	LoadFontWithSize(Menu, goregular.TTF, 18)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
