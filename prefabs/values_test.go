package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatsAgree(t *testing.T) {
	cases := []struct {
		name string
		file string
		src  string
	}{
		{
			name: "yaml",
			file: "game.yaml",
			src: `
enemy:
  health: 120
  pattern: [-1, 0, 1]
  bullet:
    speed: 4.5
story:
  - "hello"
`,
		},
		{
			name: "toml",
			file: "game.toml",
			src: `
story = ["hello"]

[enemy]
health = 120
pattern = [-1, 0, 1]

[enemy.bullet]
speed = 4.5
`,
		},
		{
			name: "tengo",
			file: "game.tengo",
			src: `
enemy := {
	health: 100 + 20,
	pattern: [-1, 0, 1],
	bullet: { speed: 4.5 },
}
story := ["hello"]
`,
		},
		{
			name: "lua",
			file: "game.lua",
			src: `
enemy = {
  health = 100 + 20,
  pattern = { -1, 0, 1 },
  bullet = { speed = 4.5 },
}
story = { "hello" }
`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := Parse(c.file, []byte(c.src))
			require.NoError(t, err)

			assert.True(t, v.Has("enemy"))
			assert.True(t, v.Has("enemy.bullet"))
			assert.False(t, v.Has("player"))
			assert.Equal(t, uint32(120), v.Uint("enemy.health", 0))
			assert.Equal(t, 4.5, v.Float("enemy.bullet.speed", 0))
			assert.Equal(t, []float64{-1, 0, 1}, v.Floats("enemy.pattern", nil))
			require.Len(t, v.List("story"), 1)
			assert.Equal(t, "hello", v.List("story")[0])
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse("game.ini", []byte("a=1"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		file string
		src  string
	}{
		{"yaml_unclosed", "game.yaml", "enemy: [unclosed"},
		{"lua_unclosed", "game.lua", "enemy = {"},
		{"tengo_self_map", "game.tengo", "enemy := {health: 5}\nenemy.self = enemy"},
		{"tengo_self_array", "game.tengo", "pattern := [0, 1]\npattern[1] = pattern"},
		{"lua_self_table", "game.lua", "enemy = { health = 5 }\nenemy.self = enemy"},
		{"lua_nested_loop", "game.lua", "a = { b = {} }\na.b.back = a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.file, []byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestParseSharedTableIsNotCyclic(t *testing.T) {
	src := "shared = { speed = 2 }\nplayer = { bullet = shared }\nenemy = { bullet = shared }"
	v, err := Parse("game.lua", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float("player.bullet.speed", 0))
	assert.Equal(t, 2.0, v.Float("enemy.bullet.speed", 0))
}

func TestValuesDefaults(t *testing.T) {
	v := Values{
		"a.num":     "12.5",
		"a.neg":     -3,
		"a.word":    "hello",
		"a.bad":     "nope",
		"a.list":    []any{1, "x"},
		"a.zero":    0,
		"a.integer": int64(7),
		"a.huge":    1e13,
	}

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"string_number_parses", v.Float("a.num", 1), 12.5},
		{"missing_float", v.Float("a.missing", 3), 3.0},
		{"unparseable_float", v.Float("a.bad", 3), 3.0},
		{"negative_uint", v.Uint("a.neg", 9), uint32(9)},
		{"int64_int", v.Int("a.integer", 0), 7},
		{"int_out_of_range", v.Int("a.huge", 4), 4},
		{"zero_not_positive", v.Positive("a.zero", 0.5), 0.5},
		{"mixed_list", v.Floats("a.list", []float64{1}), []float64{1}},
		{"string", v.String("a.word", "x"), "hello"},
		{"missing_string", v.String("a.none", "x"), "x"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.got)
		})
	}
}

func TestDefaultsMatchEmbeddedFile(t *testing.T) {
	v := Defaults()
	assert.True(t, v.Has("player"))
	assert.True(t, v.Has("enemy"))
	assert.Equal(t, uint32(200), v.Uint("enemy.health", 0))
	assert.Equal(t, 0.1, v.Float("player.bullet.delay", 0))
	assert.Len(t, v.List("story"), 2)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[enemy]\nhealth = 3\n"), 0o644))

	v, err := LoadValues(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), v.Uint("enemy.health", 0))

	_, ok := ModTime(path)
	assert.True(t, ok)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	v, err := LoadValues(filepath.Join(t.TempDir(), DefaultName))
	require.NoError(t, err)
	assert.True(t, v.Has("enemy"))

	_, err = LoadValues(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
