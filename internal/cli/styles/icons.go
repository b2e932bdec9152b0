package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFont     = "" // font
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconTrash    = "" // trash
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCode     = "" // code
	IconLock     = "" // lock
	IconCursor   = "" // chevron-right
	IconResize   = "" // text-height
)
