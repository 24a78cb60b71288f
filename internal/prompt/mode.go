package prompt

// Mode selects the analysis style: quick per-error help or a project-wide
// deep scan.
type Mode string

const (
	ModeGeneral   Mode = "general"
	ModeDSA       Mode = "dsa"
	ModeDeveloper Mode = "developer"
)

// ParseMode validates user-supplied mode strings from the dashboard.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeGeneral, ModeDSA, ModeDeveloper:
		return Mode(s), true
	}
	return "", false
}
