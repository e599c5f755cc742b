package ui

import (
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/pydash/ares/internal/window"
)

// Icon names understood by the layout description
const (
	IconLogout    = "logout"
	IconSettings  = "settings"
	IconAccount   = "account"
	IconCollapse  = "collapse"
	IconMaximize  = "maximize"
	IconMinimize  = "minimize"
	IconBarChart  = "bar_chart"
	IconLineChart = "line_chart"
	IconPieChart  = "pie_chart"
	IconBackend   = "backend"
	IconInternet  = "internet"
	IconVersion   = "version"
	IconAdd       = "add"
	IconRemove    = "remove"
	IconCancel    = "cancel"
	IconLogo      = "logo"
)

var themeIcons = map[string]fyne.ThemeIconName{
	IconLogout:    theme.IconNameLogout,
	IconSettings:  theme.IconNameSettings,
	IconAccount:   theme.IconNameAccount,
	IconCollapse:  theme.IconNameContentRemove,
	IconMaximize:  theme.IconNameViewFullScreen,
	IconMinimize:  theme.IconNameViewRestore,
	IconBarChart:  theme.IconNameList,
	IconLineChart: theme.IconNameHistory,
	IconPieChart:  theme.IconNameColorPalette,
	IconBackend:   theme.IconNameStorage,
	IconInternet:  theme.IconNameComputer,
	IconVersion:   theme.IconNameInfo,
	IconAdd:       theme.IconNameContentAdd,
	IconRemove:    theme.IconNameDelete,
	IconCancel:    theme.IconNameCancel,
	IconLogo:      theme.IconNameHome,
}

// imageExtensions are loaded from disk instead of the theme
var imageExtensions = []string{".png", ".svg", ".jpg", ".jpeg"}

// IconResource resolves an icon name from the layout. Names of image files are
// loaded from disk; anything else is looked up in the current theme. Unknown
// names and unreadable files return nil.
func IconResource(name string) fyne.Resource {
	if name == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, imageExt := range imageExtensions {
		if ext == imageExt {
			res, err := fyne.LoadResourceFromPath(name)
			if err != nil {
				log.Printf("Failed to load icon %s: %v", name, err)
				return nil
			}
			return res
		}
	}

	if iconName, ok := themeIcons[name]; ok {
		return theme.Current().Icon(iconName)
	}

	log.Printf("Unknown icon name: %s", name)
	return nil
}

// ToggleIconResource returns the icon for the window toggle button
func ToggleIconResource(icon window.ToggleIcon) fyne.Resource {
	if icon == window.IconMinimize {
		return IconResource(IconMinimize)
	}
	return IconResource(IconMaximize)
}

// LoadLogoResource loads the application logo. An empty path uses the theme logo.
func LoadLogoResource(path string) fyne.Resource {
	if path != "" {
		res, err := fyne.LoadResourceFromPath(path)
		if err == nil {
			return res
		}
		log.Printf("Failed to load logo %s: %v", path, err)
	}
	return IconResource(IconLogo)
}
