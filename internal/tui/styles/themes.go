package styles

// NewCobaltTheme is the default: cool blues on slate
func NewCobaltTheme() *Theme {
	return &Theme{
		Name:   "cobalt",
		IsDark: true,

		Primary:   ParseHex("#3B82F6"),
		Secondary: ParseHex("#93C5FD"),
		Accent:    ParseHex("#38BDF8"),

		BgBase:    ParseHex("#1E293B"),
		BgSubtle:  ParseHex("#334155"),
		BgOverlay: ParseHex("#0F172A"),

		FgBase:     ParseHex("#F1F5F9"),
		FgMuted:    ParseHex("#CBD5E1"),
		FgSubtle:   ParseHex("#64748B"),
		FgInverted: ParseHex("#0F172A"),

		Border:      ParseHex("#475569"),
		BorderFocus: ParseHex("#38BDF8"),

		Success: ParseHex("#22C55E"),
		Error:   ParseHex("#EF4444"),
		Warning: ParseHex("#F59E0B"),
		Info:    ParseHex("#60A5FA"),
	}
}

// NewEmberTheme uses warm reds and oranges
func NewEmberTheme() *Theme {
	return &Theme{
		Name:   "ember",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Golden orange

		BgBase:    ParseHex("#2C3E50"),
		BgSubtle:  ParseHex("#3D566E"),
		BgOverlay: ParseHex("#1C2833"),

		FgBase:     ParseHex("#F5F6FA"),
		FgMuted:    ParseHex("#A0A0A0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1E1E1E"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewMonoTheme is grayscale, for terminals with poor color support
func NewMonoTheme() *Theme {
	return &Theme{
		Name:   "mono",
		IsDark: true,

		Primary:   ParseHex("#D4D4D4"),
		Secondary: ParseHex("#E5E5E5"),
		Accent:    ParseHex("#FFFFFF"),

		BgBase:    ParseHex("#171717"),
		BgSubtle:  ParseHex("#404040"),
		BgOverlay: ParseHex("#0A0A0A"),

		FgBase:     ParseHex("#FAFAFA"),
		FgMuted:    ParseHex("#A3A3A3"),
		FgSubtle:   ParseHex("#737373"),
		FgInverted: ParseHex("#0A0A0A"),

		Border:      ParseHex("#525252"),
		BorderFocus: ParseHex("#FAFAFA"),

		Success: ParseHex("#D4D4D4"),
		Error:   ParseHex("#FFFFFF"),
		Warning: ParseHex("#E5E5E5"),
		Info:    ParseHex("#A3A3A3"),
	}
}
