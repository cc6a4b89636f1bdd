package config

import "sort"

// Preset is a named surface size.
type Preset struct {
	Width  int
	Height int
	Note   string
}

var Presets = map[string]Preset{
	"small":  {Width: 400, Height: 300, Note: "thumbnails and tests"},
	"medium": {Width: 800, Height: 600, Note: "default canvas"},
	"hd":     {Width: 1920, Height: 1080, Note: "full HD wallpaper"},
	"square": {Width: 600, Height: 600, Note: "spirals without letterboxing"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
