// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// Notification icons.
const (
	IconNotifyInfo  = "●"
	IconNotifyError = "✖"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryStyle     lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style

	SelectFieldItemSelectedStyle lipgloss.Style

	// Menu list styles.
	MenuItemTitleStyle         lipgloss.Style
	MenuItemTitleSelectedStyle lipgloss.Style
	MenuItemDescStyle          lipgloss.Style
	MenuBadgeStyle             lipgloss.Style

	// Modal styles.
	ModalStyle               lipgloss.Style
	FormModalStyle           lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Form styles.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style

	// Dish detail styles.
	BreadcrumbStyle       lipgloss.Style
	BreadcrumbActiveStyle lipgloss.Style
	DishHeadingStyle      lipgloss.Style
	CardStyle             lipgloss.Style
	CardTitleStyle        lipgloss.Style
	CardImageStyle        lipgloss.Style
	CardTextStyle         lipgloss.Style
	SectionHeaderStyle    lipgloss.Style
	CommentTextStyle      lipgloss.Style
	CommentMetaStyle      lipgloss.Style
	RatingStyle           lipgloss.Style
	ButtonOutlineStyle    lipgloss.Style
	ErrorMessageStyle     lipgloss.Style
	HelpStyle             lipgloss.Style

	// Toast styles.
	ToastInfoStyle  lipgloss.Style
	ToastErrorStyle lipgloss.Style
)

// themeVersion counts SetTheme calls.
var themeVersion int

// ThemeVersion changes every time SetTheme installs a palette, so output
// rendered with an older palette can be told apart.
func ThemeVersion() int { return themeVersion }

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p
	themeVersion++

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	SelectFieldItemSelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	MenuItemTitleStyle = lipgloss.NewStyle().Foreground(ColorForeground).PaddingLeft(2)
	MenuItemTitleSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	MenuItemDescStyle = lipgloss.NewStyle().Foreground(ColorMuted).PaddingLeft(2)
	MenuBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorWarning).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	FormModalStyle = ModalStyle.Width(52)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	BreadcrumbStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	BreadcrumbActiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DishHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CardImageStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	CardTextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SectionHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)
	CommentTextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	CommentMetaStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	RatingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	ButtonOutlineStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Foreground(ColorForeground).
		Padding(0, 1)
	ErrorMessageStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Foreground(ColorForeground).
		Padding(0, 1)
	ToastErrorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Foreground(ColorError).
		Padding(0, 1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
