package domain

import "sort"

const ThemeNeutral = "neutral"

type ChildTheme struct {
	Background     string
	Title          string
	TileBackground string
	Label          string
	Button         string
}

var themes = map[string]ChildTheme{
	"blue":       {Background: "#E6F0FF", Title: "#1E3A8A", TileBackground: "#DBEAFE", Label: "#1E3A8A", Button: "#3B82F6"},
	"pink":       {Background: "#FFE6F2", Title: "#9D174D", TileBackground: "#FCE7F3", Label: "#9D174D", Button: "#EC4899"},
	"green":      {Background: "#E8F5E9", Title: "#1B5E20", TileBackground: "#C8E6C9", Label: "#1B5E20", Button: "#4CAF50"},
	"purple":     {Background: "#F3E8FF", Title: "#6A1B9A", TileBackground: "#E9D5FF", Label: "#6A1B9A", Button: "#A855F7"},
	"yellow":     {Background: "#FFFDE7", Title: "#A16207", TileBackground: "#FFF9C4", Label: "#A16207", Button: "#EAB308"},
	ThemeNeutral: {Background: "#F5F5F5", Title: "#1F2937", TileBackground: "#FFFFFF", Label: "#1F2937", Button: "#4F46E5"},
}

// ThemeFor falls back to neutral for empty or unknown colors.
func ThemeFor(color string) ChildTheme {
	if t, ok := themes[color]; ok {
		return t
	}
	return themes[ThemeNeutral]
}

func ThemeColors() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
