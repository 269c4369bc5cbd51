package toml

const currentSchemaVersion = 1

type reportSchema struct {
	Version int          `toml:"version"`
	Mode    string       `toml:"mode"`
	AsOf    string       `toml:"as_of,omitempty"`
	Users   []userSchema `toml:"users"`
	Total   *totalSchema `toml:"total,omitempty"`
}

type userSchema struct {
	Username string `toml:"username"`
	Seconds  int64  `toml:"seconds"`
	Duration string `toml:"duration"`
	Known    bool   `toml:"known"`
}

type totalSchema struct {
	Seconds  int64  `toml:"seconds"`
	Duration string `toml:"duration"`
}
