package theme

// Registration order matters: the first theme registered is the default.
func init() {
	RegisterTheme("tokyonight", palette{
		primary:       adaptive("#82aaff", "#2e7de9"),
		accent:        adaptive("#ff966c", "#b15c00"),
		warning:       adaptive("#ff966c", "#b15c00"),
		info:          adaptive("#7dcfff", "#0db9d7"),
		text:          adaptive("#c8d3f5", "#3760bf"),
		textMuted:     adaptive("#636da6", "#848cb5"),
		background:    adaptive("#222436", "#e1e2e7"),
		backgroundAlt: adaptive("#2f334d", "#c8c9ce"),
		border:        adaptive("#3b4261", "#a8aecb"),
		borderFocused: adaptive("#82aaff", "#2e7de9"),
	})
	RegisterTheme("catppuccin", palette{
		primary:       adaptive("#89b4fa", "#1e66f5"),
		accent:        adaptive("#fab387", "#fe640b"),
		warning:       adaptive("#fab387", "#fe640b"),
		info:          adaptive("#89b4fa", "#1e66f5"),
		text:          adaptive("#cdd6f4", "#4c4f69"),
		textMuted:     adaptive("#6c7086", "#9ca0b0"),
		background:    adaptive("#1e1e2e", "#eff1f5"),
		backgroundAlt: adaptive("#313244", "#e6e9ef"),
		border:        adaptive("#6c7086", "#9ca0b0"),
		borderFocused: adaptive("#89b4fa", "#1e66f5"),
	})
	RegisterTheme("dracula", palette{
		primary:       adaptive("#bd93f9", "#7e57c2"),
		accent:        adaptive("#f1fa8c", "#f9a825"),
		warning:       adaptive("#ffb86c", "#ef6c00"),
		info:          adaptive("#8be9fd", "#1976d2"),
		text:          adaptive("#f8f8f2", "#212121"),
		textMuted:     adaptive("#6272a4", "#757575"),
		background:    adaptive("#282a36", "#ffffff"),
		backgroundAlt: adaptive("#44475a", "#e0e0e0"),
		border:        adaptive("#6272a4", "#bdbdbd"),
		borderFocused: adaptive("#bd93f9", "#7e57c2"),
	})
	RegisterTheme("gruvbox", palette{
		primary:       adaptive("#83a598", "#076678"),
		accent:        adaptive("#fabd2f", "#b57614"),
		warning:       adaptive("#fe8019", "#af3a03"),
		info:          adaptive("#83a598", "#076678"),
		text:          adaptive("#ebdbb2", "#3c3836"),
		textMuted:     adaptive("#a89984", "#7c6f64"),
		background:    adaptive("#282828", "#fbf1c7"),
		backgroundAlt: adaptive("#504945", "#ebdbb2"),
		border:        adaptive("#504945", "#bdae93"),
		borderFocused: adaptive("#83a598", "#076678"),
	})
	// Nord: https://www.nordtheme.com/docs/colors-and-palettes
	RegisterTheme("nord", palette{
		primary:       adaptive("#88C0D0", "#5E81AC"),
		accent:        adaptive("#8FBCBB", "#8FBCBB"),
		warning:       adaptive("#D08770", "#D08770"),
		info:          adaptive("#88C0D0", "#5E81AC"),
		text:          adaptive("#ECEFF4", "#2E3440"),
		textMuted:     adaptive("#8B95A7", "#3B4252"),
		background:    adaptive("#2E3440", "#ECEFF4"),
		backgroundAlt: adaptive("#3B4252", "#E5E9F0"),
		border:        adaptive("#434C5E", "#4C566A"),
		borderFocused: adaptive("#4C566A", "#434C5E"),
	})
	// Solarized: https://ethanschoonover.com/solarized/
	RegisterTheme("solarized", palette{
		primary:       adaptive("#268bd2", "#268bd2"),
		accent:        adaptive("#2aa198", "#2aa198"),
		warning:       adaptive("#b58900", "#b58900"),
		info:          adaptive("#cb4b16", "#cb4b16"),
		text:          adaptive("#839496", "#657b83"),
		textMuted:     adaptive("#586e75", "#93a1a1"),
		background:    adaptive("#002b36", "#fdf6e3"),
		backgroundAlt: adaptive("#073642", "#eee8d5"),
		border:        adaptive("#073642", "#eee8d5"),
		borderFocused: adaptive("#586e75", "#93a1a1"),
	})
}
