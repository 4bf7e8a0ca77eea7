package shell

import (
	"strconv"
	"strings"
)

// Command is one of the six menu operations
type Command int

const (
	Add Command = iota + 1
	Remove
	Search
	List
	Statistics
	Exit
)

var commandNames = map[Command]string{
	Add:        "add",
	Remove:     "remove",
	Search:     "search",
	List:       "list",
	Statistics: "statistics",
	Exit:       "exit",
}

// String returns the operation name
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand accepts a menu number ("1".."6") or an operation name
func ParseCommand(s string) (Command, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Add; c <= Exit; c++ {
		if s == commandNames[c] || s == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return 0, false
}
