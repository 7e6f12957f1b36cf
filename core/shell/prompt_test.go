package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptRender(t *testing.T) {
	user := PromptInfo{User: "alice", Host: "box", Dir: "/home/alice/src", UID: 1000}
	root := PromptInfo{User: "root", Host: "box", Dir: "/", UID: 0}

	cases := map[string]struct {
		template string
		info     PromptInfo
		want     string
	}{
		"default":              {"", user, "alice@box:/home/alice/src$ "},
		"default keeps dollar": {"", root, "root@box:/$ "},
		"dollar escape":        {`\u@\h:\w\$ `, user, "alice@box:/home/alice/src$ "},
		"dollar escape root":   {`\u@\h:\w\$ `, root, "root@box:/# "},
		"basename":             {`[\W]> `, user, "[src]> "},
		"basename root dir":    {`[\W]> `, root, "[/]> "},
		"literal backslash":    {`\\u `, user, `\u `},
		"unknown escape":       {`\t> `, user, `\t> `},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := PromptRenderer{Template: tc.template}.Render(tc.info)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPromptRenderDoesNotReexpand(t *testing.T) {
	info := PromptInfo{User: `\w`, Host: "box", Dir: "/tmp", UID: 1000}
	assert.Equal(t, `\w@box:/tmp$ `, PromptRenderer{}.Render(info))
}

func TestPromptRenderColor(t *testing.T) {
	info := PromptInfo{User: "alice", Host: "box", Dir: "/tmp", UID: 1000}
	got := PromptRenderer{Color: true}.Render(info)

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "alice")
	assert.Contains(t, got, "/tmp")
	assert.NotEqual(t, "alice@box:/tmp$ ", got)
}
