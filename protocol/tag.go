package protocol

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type structTag struct {
	MinVersion int16
	MaxVersion int16
	Nullable   bool
}

func forEachStructTag(tag string, do func(structTag) bool) {
	if tag == "-" {
		return
	}
	forEach(tag, '|', func(s string) bool {
		t := structTag{MinVersion: -1, MaxVersion: -1}
		var err error
		forEach(s, ',', func(s string) bool {
			switch {
			case strings.HasPrefix(s, "min="):
				t.MinVersion, err = parseVersion(s[4:])
			case strings.HasPrefix(s, "max="):
				t.MaxVersion, err = parseVersion(s[4:])
			case s == "nullable":
				t.Nullable = true
			case s == "":
			default:
				err = fmt.Errorf("unrecognized option: %q", s)
			}
			return err == nil
		})
		if err != nil {
			panic(fmt.Errorf("malformed struct tag: %w", err))
		}
		if t.MinVersion < 0 {
			t.MinVersion = 0
		}
		if t.MaxVersion < 0 {
			t.MaxVersion = 1<<15 - 1
		}
		return do(t)
	})
}

func forEach(s string, sep byte, do func(string) bool) bool {
	for len(s) != 0 {
		p := ""
		i := strings.IndexByte(s, sep)
		if i < 0 {
			p, s = s, ""
		} else {
			p, s = s[:i], s[i+1:]
		}
		if !do(p) {
			return false
		}
	}
	return true
}

func forEachStructField(t reflect.Type, do func(reflect.Type, int, string)) {
	for i, n := 0, t.NumField(); i < n; i++ {
		f := t.Field(i)
		if f.PkgPath != "" && f.Name != "_" {
			continue
		}
		tag, ok := f.Tag.Lookup("kafka")
		if !ok {
			tag = ""
		}
		do(f.Type, i, tag)
	}
}

func parseVersion(s string) (int16, error) {
	if !strings.HasPrefix(s, "v") {
		return 0, fmt.Errorf("invalid version number: %q", s)
	}
	i, err := strconv.ParseInt(s[1:], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid version number: %q: %w", s, err)
	}
	return int16(i), nil
}
