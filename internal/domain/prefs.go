package domain

// Theme values for the site-wide appearance preference.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

func ValidTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark || v == ThemeSystem
}
