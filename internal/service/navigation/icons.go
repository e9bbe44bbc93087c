package navigation

// iconRegistry maps menu item icon keys to concrete renderable icon
// names. Unknown keys fall back to the configured default instead of
// failing.
var iconRegistry = map[string]string{
	"overview": "layout-dashboard",
	"calendar": "calendar",
	"chart":    "bar-chart",
	"table":    "table",
	"users":    "users",
	"settings": "settings",
	"docs":     "file-text",
	"link":     "external-link",
}

// resolveIcon maps an item's icon key through the registry.
func (s *Service) resolveIcon(key *string) string {
	if key == nil || *key == "" {
		return s.cfg.DefaultIcon
	}
	if icon, ok := iconRegistry[*key]; ok {
		return icon
	}
	return s.cfg.DefaultIcon
}
