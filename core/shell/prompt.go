package shell

import (
	"path"
	"strings"

	"github.com/fatih/color"
)

// DefaultPrompt renders as user@host:cwd$ followed by a space.
const DefaultPrompt = `\u@\h:\w$ `

// PromptInfo is the identity shown in the prompt.
type PromptInfo struct {
	User string
	Host string
	Dir  string
	UID  int
}

// PromptRenderer expands a PS1 style template.
//
// Supported escapes: \u user, \h host, \w working directory, \W its last
// element, \$ "#" for root and "$" otherwise, \\ a backslash.
type PromptRenderer struct {
	Template string
	// Color highlights the identity and directory with ANSI escapes.
	Color bool
}

var (
	promptIdentityColor = []color.Attribute{color.FgGreen, color.Bold}
	promptPathColor     = []color.Attribute{color.FgBlue, color.Bold}
)

// Render returns the prompt for info.
func (p PromptRenderer) Render(info PromptInfo) string {
	template := p.Template
	if template == "" {
		template = DefaultPrompt
	}

	dollar := "$"
	if info.UID == 0 {
		dollar = "#"
	}

	base := path.Base(info.Dir)
	if info.Dir == "" {
		base = ""
	}

	return strings.NewReplacer(
		`\u`, p.paint(promptIdentityColor, info.User),
		`\h`, p.paint(promptIdentityColor, info.Host),
		`\w`, p.paint(promptPathColor, info.Dir),
		`\W`, p.paint(promptPathColor, base),
		`\$`, dollar,
		`\\`, `\`,
	).Replace(template)
}

func (p PromptRenderer) paint(attrs []color.Attribute, s string) string {
	if !p.Color || s == "" {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
