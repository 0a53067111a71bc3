package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconConfig   = "" // config
	IconDatabase = "" // database

	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	IconCursor   = "" // chevron-right
	IconClock    = "" // clock
	IconPointer  = "" // mouse pointer
	IconKeyboard = "" // keyboard
	IconEye      = "" // eye
)
